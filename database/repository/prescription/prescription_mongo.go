package prescriptionRepo

import (
	"context"
	"fmt"
	"time"

	"mediflow/database"
	"mediflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPrescriptionRepo implements PrescriptionRepository using MongoDB.
type MongoPrescriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoPrescriptionRepo constructs a new instance of MongoPrescriptionRepo.
func NewMongoPrescriptionRepo() PrescriptionRepository {
	repo := &MongoPrescriptionRepo{
		coll: database.DB().Collection("prescriptions"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("warning: failed to ensure prescription indexes: %v\n", err)
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoPrescriptionRepo) Create(prescription *models.Prescription) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, prescription); err != nil {
		return fmt.Errorf("error creating prescription: %w", err)
	}
	return nil
}

func (r *MongoPrescriptionRepo) GetByID(id string) (*models.Prescription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var prescription models.Prescription
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&prescription); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching prescription %s: %w", id, err)
	}
	return &prescription, nil
}

func (r *MongoPrescriptionRepo) GetByPatient(patientID string) ([]models.Prescription, error) {
	return r.find(bson.M{"patientId": patientID})
}

func (r *MongoPrescriptionRepo) GetByDoctor(doctorID string) ([]models.Prescription, error) {
	return r.find(bson.M{"doctorId": doctorID})
}

func (r *MongoPrescriptionRepo) GetByAppointment(appointmentID string) ([]models.Prescription, error) {
	return r.find(bson.M{"appointmentId": appointmentID})
}

func (r *MongoPrescriptionRepo) find(filter bson.M) ([]models.Prescription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching prescriptions: %w", err)
	}
	defer cursor.Close(ctx)

	var prescriptions []models.Prescription
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, fmt.Errorf("error decoding prescriptions: %w", err)
	}
	return prescriptions, nil
}
