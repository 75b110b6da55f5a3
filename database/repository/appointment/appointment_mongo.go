package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DigitariaWebs/cheminement-sub002/config"
	"github.com/DigitariaWebs/cheminement-sub002/database"
	"github.com/DigitariaWebs/cheminement-sub002/models"
	"github.com/DigitariaWebs/cheminement-sub002/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("appointments")
	return &MongoAppointmentRepo{coll: coll}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// InsertIfAbsent inserts the appointment. The partial unique index on
// (professionalId, date, time) where slotHeld is true makes the insert the
// decisive conflict check: of two concurrent inserts for the same slot,
// exactly one lands and the other surfaces ErrDuplicateSlot.
func (r *MongoAppointmentRepo) InsertIfAbsent(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, utils.DefaultRequestTimeout)
	defer cancel()

	appt.SlotHeld = models.OccupiesSlot(appt.Status)
	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}

func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, utils.DefaultRequestTimeout)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

// FindActiveByProfessionalAndDate returns all slot-holding appointments for the
// professional on the given date, ascending by time.
func (r *MongoAppointmentRepo) FindActiveByProfessionalAndDate(ctx context.Context, professionalID, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, utils.DefaultRequestTimeout)
	defer cancel()

	filter := bson.M{
		"professionalId": professionalID,
		"date":           date,
		"slotHeld":       true,
	}
	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments for professional %s on %s: %w", professionalID, date, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// UpdateStatus transitions the appointment and keeps slotHeld in sync so a
// cancellation immediately frees the slot for the unique index.
func (r *MongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, utils.DefaultRequestTimeout)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"status":    status,
		"slotHeld":  models.OccupiesSlot(status),
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt models.Appointment
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update status for appointment %s: %w", id, err)
	}
	return &appt, nil
}

func (r *MongoAppointmentRepo) ListByClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, utils.DefaultRequestTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "time", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"clientId": clientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments for client %s: %w", clientID, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}
