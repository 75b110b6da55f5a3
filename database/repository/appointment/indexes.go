package appointmentRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
// The partial unique slot index is the correctness backbone of the booking
// path: application-level pre-checks are advisory, this index is authoritative.
func (r *MongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// At most one slot-holding appointment per (professionalId, date, time).
		// Cancelled appointments drop slotHeld and leave the index, freeing the slot.
		{
			Keys: bson.D{
				{Key: "professionalId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "time", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_slot").
				SetPartialFilterExpression(bson.D{{Key: "slotHeld", Value: true}}),
		},
		// Primary read pattern: a professional's day schedule.
		{
			Keys: bson.D{
				{Key: "professionalId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "slotHeld", Value: 1},
			},
			Options: options.Index().SetName("professional_date_held_idx"),
		},
		{
			Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("client_date_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
