package accountRepo

import (
	"context"
	"fmt"
	"time"

	"mediflow/database"
	"mediflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAccountRepo implements AccountRepository using MongoDB.
type MongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo constructs a new instance of MongoAccountRepo.
func NewMongoAccountRepo() AccountRepository {
	repo := &MongoAccountRepo{
		coll: database.DB().Collection("accounts"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("warning: failed to ensure account indexes: %v\n", err)
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoAccountRepo) Create(account *models.Account) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, account); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("account with email %s already exists", account.Email)
		}
		return fmt.Errorf("error creating account: %w", err)
	}
	return nil
}

func (r *MongoAccountRepo) GetByID(id string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var account models.Account
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&account); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching account with id %s: %w", id, err)
	}
	return &account, nil
}

func (r *MongoAccountRepo) GetByEmail(email string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var account models.Account
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&account); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching account with email %s: %w", email, err)
	}
	return &account, nil
}

func (r *MongoAccountRepo) GetByRole(role string) ([]models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, fmt.Errorf("error fetching accounts with role %s: %w", role, err)
	}
	defer cursor.Close(ctx)

	var accounts []models.Account
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, fmt.Errorf("error decoding accounts: %w", err)
	}
	return accounts, nil
}

func (r *MongoAccountRepo) UpdateWithDocument(id string, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating account %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("account with id %s not found", id)
	}
	return nil
}

func (r *MongoAccountRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting account %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("account with id %s not found", id)
	}
	return nil
}
