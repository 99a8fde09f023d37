package accountRepo

import (
	"mediflow/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AccountRepository defines methods for account data access. Lookups return
// (nil, nil) when no matching account exists.
type AccountRepository interface {
	// Create inserts a new account record.
	Create(account *models.Account) error
	// GetByID retrieves an account by its unique ID.
	GetByID(id string) (*models.Account, error)
	// GetByEmail retrieves an account by its email address.
	GetByEmail(email string) (*models.Account, error)
	// GetByRole retrieves all accounts with the given role.
	GetByRole(role string) ([]models.Account, error)
	// UpdateWithDocument applies a raw update document to an account.
	UpdateWithDocument(id string, update bson.M) error
	// Delete removes an account record by its ID.
	Delete(id string) error
}
