package account

import (
	accountRepo "mediflow/database/repository/account"
	"mediflow/models"
)

// AccountService is the single identity abstraction shared by all three
// roles. The role is a parameter of every flow rather than a separate
// implementation per role.
type AccountService interface {
	// Register creates an account with the given role and signs it in.
	Register(role string, req models.RegisterRequest) (*models.AuthResponse, error)
	// Login authenticates an account; the role must match the route's role.
	Login(role string, req models.LoginRequest) (*models.AuthResponse, error)
	// Logout revokes the account's current token.
	Logout(accountID string) error
	// GetByID retrieves an account, or a NotFoundError.
	GetByID(id string) (*models.Account, error)
	// GetByRole lists accounts by role (doctor directory, admin listings).
	GetByRole(role string) ([]models.Account, error)
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo accountRepo.AccountRepository
}
