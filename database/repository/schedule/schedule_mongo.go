package scheduleRepo

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

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new instance of MongoScheduleRepo.
func NewMongoScheduleRepo() ScheduleRepository {
	repo := &MongoScheduleRepo{
		coll: database.DB().Collection("schedules"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("warning: failed to ensure schedule indexes: %v\n", err)
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoScheduleRepo) Create(interval *models.ScheduleInterval) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, interval); err != nil {
		return fmt.Errorf("error creating schedule interval: %w", err)
	}
	return nil
}

func (r *MongoScheduleRepo) GetByID(id string) (*models.ScheduleInterval, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var interval models.ScheduleInterval
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&interval); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching schedule interval %s: %w", id, err)
	}
	return &interval, nil
}

func (r *MongoScheduleRepo) GetByDoctor(doctorID string) ([]models.ScheduleInterval, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching schedules for doctor %s: %w", doctorID, err)
	}
	defer cursor.Close(ctx)

	var intervals []models.ScheduleInterval
	if err := cursor.All(ctx, &intervals); err != nil {
		return nil, fmt.Errorf("error decoding schedule intervals: %w", err)
	}
	return intervals, nil
}

func (r *MongoScheduleRepo) GetCovering(doctorID, date string) ([]models.ScheduleInterval, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	// ISO date strings compare correctly as plain strings, so range matching
	// is a lexical comparison at day granularity.
	filter := bson.M{
		"doctorId":  doctorID,
		"startDate": bson.M{"$lte": date},
		"endDate":   bson.M{"$gte": date},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching covering schedules for doctor %s: %w", doctorID, err)
	}
	defer cursor.Close(ctx)

	var intervals []models.ScheduleInterval
	if err := cursor.All(ctx, &intervals); err != nil {
		return nil, fmt.Errorf("error decoding schedule intervals: %w", err)
	}
	return intervals, nil
}

func (r *MongoScheduleRepo) Update(interval *models.ScheduleInterval) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": interval.ID}, bson.M{"$set": interval})
	if err != nil {
		return fmt.Errorf("error updating schedule interval %s: %w", interval.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("schedule interval with id %s not found", interval.ID)
	}
	return nil
}

func (r *MongoScheduleRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting schedule interval %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("schedule interval with id %s not found", id)
	}
	return nil
}
