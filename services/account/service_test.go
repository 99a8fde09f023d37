package account

import (
	"os"
	"testing"

	"mediflow/config"
	"mediflow/models"
	"mediflow/utils"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMain(m *testing.M) {
	config.AppConfig.JWTSecret = "test-secret"
	// Cache writes degrade to warnings when Redis is unreachable, so a dead
	// client keeps the flows testable without a running instance.
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	os.Exit(m.Run())
}

type fakeAccountRepo struct {
	accounts map[string]*models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*models.Account{}}
}

func (f *fakeAccountRepo) Create(a *models.Account) error {
	cp := *a
	f.accounts[a.ID] = &cp
	return nil
}

func (f *fakeAccountRepo) GetByID(id string) (*models.Account, error) {
	if a, ok := f.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAccountRepo) GetByEmail(email string) (*models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) GetByRole(role string) ([]models.Account, error) {
	var out []models.Account
	for _, a := range f.accounts {
		if a.Role == role {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) UpdateWithDocument(id string, update bson.M) error {
	a, ok := f.accounts[id]
	if !ok {
		return nil
	}
	if set, ok := update["$set"].(bson.M); ok {
		if v, ok := set["tokenHash"].(string); ok {
			a.TokenHash = v
		}
		if v, ok := set["fcmToken"].(string); ok {
			a.FCMToken = v
		}
	}
	return nil
}

func (f *fakeAccountRepo) Delete(id string) error {
	delete(f.accounts, id)
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := &DefaultAccountService{Repo: newFakeAccountRepo()}

	resp, err := svc.Register(models.RolePatient, models.RegisterRequest{
		Name: "Amina", Email: "amina@example.com", Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, resp.Role)
	assert.NotEmpty(t, resp.Token)

	// Duplicate email is a conflict.
	_, err = svc.Register(models.RolePatient, models.RegisterRequest{
		Name: "Other", Email: "amina@example.com", Password: "whatever123",
	})
	assert.IsType(t, ConflictError{}, err)

	login, err := svc.Login(models.RolePatient, models.LoginRequest{
		Email: "amina@example.com", Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.ID, login.ID)
	assert.NotEmpty(t, login.Token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := &DefaultAccountService{Repo: newFakeAccountRepo()}

	_, err := svc.Register(models.RoleDoctor, models.RegisterRequest{
		Name: "Dr. Okafor", Email: "okafor@example.com", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(models.RoleDoctor, models.LoginRequest{
		Email: "okafor@example.com", Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(models.RoleDoctor, models.LoginRequest{
		Email: "nobody@example.com", Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// The role must match the route the login came in on.
	_, err = svc.Login(models.RolePatient, models.LoginRequest{
		Email: "okafor@example.com", Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := &DefaultAccountService{Repo: newFakeAccountRepo()}

	_, err := svc.Register("superuser", models.RegisterRequest{
		Name: "X", Email: "x@example.com", Password: "s3cret-pass",
	})
	assert.Error(t, err)
}

func TestLoginStoresFCMToken(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := &DefaultAccountService{Repo: repo}

	resp, err := svc.Register(models.RolePatient, models.RegisterRequest{
		Name: "Amina", Email: "amina@example.com", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(models.RolePatient, models.LoginRequest{
		Email: "amina@example.com", Password: "s3cret-pass", FCMToken: "device-token-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "device-token-1", repo.accounts[resp.ID].FCMToken)
}

func TestLogoutClearsTokenHash(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := &DefaultAccountService{Repo: repo}

	resp, err := svc.Register(models.RolePatient, models.RegisterRequest{
		Name: "Amina", Email: "amina@example.com", Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, repo.accounts[resp.ID].TokenHash)

	require.NoError(t, svc.Logout(resp.ID))
	assert.Empty(t, repo.accounts[resp.ID].TokenHash)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := &DefaultAccountService{Repo: newFakeAccountRepo()}

	_, err := svc.GetByID("missing")
	assert.IsType(t, NotFoundError{}, err)
}
