package appointmentRepo

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

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &MongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("warning: failed to ensure appointment indexes: %v\n", err)
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoAppointmentRepo) Create(appointment *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, appointment); err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appointment models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appointment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching appointment %s: %w", id, err)
	}
	return &appointment, nil
}

func (r *MongoAppointmentRepo) GetByPatient(patientID string) ([]models.Appointment, error) {
	return r.find(bson.M{"patientId": patientID})
}

func (r *MongoAppointmentRepo) GetByDoctor(doctorID, status string) ([]models.Appointment, error) {
	filter := bson.M{"doctorId": doctorID}
	if status != "" {
		filter["status"] = status
	}
	return r.find(filter)
}

func (r *MongoAppointmentRepo) GetAll() ([]models.Appointment, error) {
	return r.find(bson.M{})
}

func (r *MongoAppointmentRepo) find(filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appointments, nil
}

func (r *MongoAppointmentRepo) GetApprovedTimes(doctorID, date string) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId":        doctorID,
		"appointmentDate": date,
		"status":          models.StatusApproved,
	}
	values, err := r.coll.Distinct(ctx, "appointmentTime", filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching approved times: %w", err)
	}

	times := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			times = append(times, s)
		}
	}
	return times, nil
}

// ConfirmSlot commits the pending -> approved transition. The partial unique
// index on (doctorId, appointmentDate, appointmentTime) for approved
// appointments turns a concurrent double-booking into a duplicate-key error.
func (r *MongoAppointmentRepo) ConfirmSlot(id, date, timeOfDay string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.StatusPending}
	update := bson.M{"$set": bson.M{
		"status":          models.StatusApproved,
		"appointmentDate": date,
		"appointmentTime": timeOfDay,
		"updatedAt":       time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("error confirming appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotPending
	}
	return nil
}

func (r *MongoAppointmentRepo) UpdateWithDocument(id string, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	return nil
}
