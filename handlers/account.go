package handlers

import (
	"net/http"

	"mediflow/models"
	"mediflow/services/account"

	"github.com/gin-gonic/gin"
)

// AccountHandler exposes registration, login and profile endpoints. The same
// handler serves all three roles; the role is bound per route.
type AccountHandler struct {
	Service account.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc account.AccountService) *AccountHandler {
	return &AccountHandler{Service: svc}
}

// RegisterHandler returns the registration handler for the given role.
func (h *AccountHandler) RegisterHandler(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		resp, err := h.Service.Register(role, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// LoginHandler returns the login handler for the given role.
func (h *AccountHandler) LoginHandler(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		resp, err := h.Service.Login(role, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// LogoutHandler revokes the caller's token.
func (h *AccountHandler) LogoutHandler(c *gin.Context) {
	if err := h.Service.Logout(c.GetString("accountID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// MeHandler returns the caller's own account.
func (h *AccountHandler) MeHandler(c *gin.Context) {
	acct, err := h.Service.GetByID(c.GetString("accountID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, acct)
}

// ListDoctorsHandler returns the public doctor directory.
func (h *AccountHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.Service.GetByRole(models.RoleDoctor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// ListAccountsHandler returns all accounts of the requested role (admin).
func (h *AccountHandler) ListAccountsHandler(c *gin.Context) {
	role := c.Param("role")
	accounts, err := h.Service.GetByRole(role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}
