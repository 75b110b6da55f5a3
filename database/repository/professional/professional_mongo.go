package professionalRepo

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
)

// MongoProfessionalRepo implements ProfessionalRepository using MongoDB.
type MongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo creates a new instance of ProfessionalRepository using MongoDB.
func NewMongoProfessionalRepo() ProfessionalRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("professionals")
	return &MongoProfessionalRepo{coll: coll}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// Create inserts a new professional profile document.
func (r *MongoProfessionalRepo) Create(ctx context.Context, professional *models.Professional) error {
	ctx, cancel := context.WithTimeout(ctx, utils.DefaultRequestTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, professional); err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}
	return nil
}

func (r *MongoProfessionalRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, utils.DefaultRequestTimeout)
	defer cancel()

	var professional models.Professional
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&professional); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch professional with id %s: %w", id, err)
	}
	return &professional, nil
}

// UpdateAvailability replaces the stored weekly availability template.
func (r *MongoProfessionalRepo) UpdateAvailability(ctx context.Context, id string, tmpl *models.WeeklyAvailabilityTemplate) error {
	ctx, cancel := context.WithTimeout(ctx, utils.DefaultRequestTimeout)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"availability": tmpl,
		"updatedAt":    time.Now().UTC(),
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update availability for professional %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
