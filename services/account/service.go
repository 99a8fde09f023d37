package account

import (
	"context"
	"fmt"
	"time"

	"mediflow/models"
	"mediflow/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const tokenTTL = 72 * time.Hour

func validRole(role string) bool {
	switch role {
	case models.RolePatient, models.RoleDoctor, models.RoleAdmin:
		return true
	}
	return false
}

func (s *DefaultAccountService) Register(role string, req models.RegisterRequest) (*models.AuthResponse, error) {
	if !validRole(role) {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ConflictError{Reason: fmt.Sprintf("an account with email %s already exists", req.Email)}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	acct := &models.Account{
		ID:             uuid.New().String(),
		Role:           role,
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   hash,
		PhoneNumber:    req.PhoneNumber,
		Specialization: req.Specialization,
		Department:     req.Department,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(acct); err != nil {
		return nil, err
	}

	return s.issueToken(acct)
}

func (s *DefaultAccountService) Login(role string, req models.LoginRequest) (*models.AuthResponse, error) {
	acct, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if acct == nil || acct.Role != role {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPassword(acct.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	if req.FCMToken != "" && req.FCMToken != acct.FCMToken {
		acct.FCMToken = req.FCMToken
		update := bson.M{"$set": bson.M{"fcmToken": req.FCMToken, "updatedAt": time.Now()}}
		if err := s.Repo.UpdateWithDocument(acct.ID, update); err != nil {
			utils.GetLogger().Warn("Login: failed to store FCM token", zap.Error(err))
		}
	}

	return s.issueToken(acct)
}

func (s *DefaultAccountService) Logout(accountID string) error {
	update := bson.M{"$set": bson.M{"tokenHash": "", "updatedAt": time.Now()}}
	if err := s.Repo.UpdateWithDocument(accountID, update); err != nil {
		return err
	}

	ctx := context.Background()
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+accountID).Err(); err != nil {
		utils.GetLogger().Warn("Logout: failed to clear auth cache", zap.Error(err))
	}
	return nil
}

func (s *DefaultAccountService) GetByID(id string) (*models.Account, error) {
	acct, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, NotFoundError{Reason: fmt.Sprintf("account %s not found", id)}
	}
	return acct, nil
}

func (s *DefaultAccountService) GetByRole(role string) ([]models.Account, error) {
	if !validRole(role) {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	return s.Repo.GetByRole(role)
}

// issueToken generates a fresh JWT, persists its hash and primes the auth
// cache.
func (s *DefaultAccountService) issueToken(acct *models.Account) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(acct.ID, acct.Role, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	update := bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}}
	if err := s.Repo.UpdateWithDocument(acct.ID, update); err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	ctx := context.Background()
	if err := utils.GetAuthCacheClient().Set(ctx, utils.AuthCachePrefix+acct.ID, tokenHash, time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to prime auth cache", zap.Error(err))
	}

	return &models.AuthResponse{
		ID:    acct.ID,
		Role:  acct.Role,
		Name:  acct.Name,
		Email: acct.Email,
		Token: token,
	}, nil
}
