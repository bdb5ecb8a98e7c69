package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/mongo"
)

type relationRepository struct {
	db mongo.Database
}

func NewRelationRepository(db mongo.Database) domain.RelationRepository {
	return &relationRepository{db: db}
}

// Toggle flips targetID's membership in the owner's reference array and
// moves the target's counter with it. Membership is decided by which
// conditional update matches, not by a prior read, so two racing toggles on
// the same pair cannot both observe "absent": at most one $addToSet filter
// matches, and the counter decrement is guarded to never go below zero.
func (r *relationRepository) Toggle(ctx context.Context, rel domain.Relation, ownerID, targetID primitive.ObjectID) (*domain.ToggleResult, error) {
	targets := r.db.Collection(rel.TargetCollection)
	owners := r.db.Collection(rel.OwnerCollection)

	count, err := targets.CountDocuments(ctx, bson.M{"_id": targetID})
	if err != nil {
		return nil, fmt.Errorf("failed to check target: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: %s/%s", domain.ErrNotFound, rel.TargetCollection, targetID.Hex())
	}

	// Add if absent.
	res, err := owners.UpdateOne(ctx,
		bson.M{"_id": ownerID, rel.OwnerField: bson.M{"$ne": targetID}},
		bson.M{"$addToSet": bson.M{rel.OwnerField: targetID}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add membership: %w", err)
	}
	if res.MatchedCount > 0 {
		if _, err := targets.UpdateOne(ctx,
			bson.M{"_id": targetID},
			bson.M{"$inc": bson.M{rel.CounterField: 1}},
		); err != nil {
			return nil, fmt.Errorf("failed to increment counter: %w", err)
		}
		return &domain.ToggleResult{Status: domain.ToggleAdded}, nil
	}

	// Already present: remove.
	res, err = owners.UpdateOne(ctx,
		bson.M{"_id": ownerID, rel.OwnerField: targetID},
		bson.M{"$pull": bson.M{rel.OwnerField: targetID}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to remove membership: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("%w: %s/%s", domain.ErrNotFound, rel.OwnerCollection, ownerID.Hex())
	}

	// Floor at zero: the guard keeps a lost race from driving the counter
	// negative.
	if _, err := targets.UpdateOne(ctx,
		bson.M{"_id": targetID, rel.CounterField: bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{rel.CounterField: -1}},
	); err != nil {
		return nil, fmt.Errorf("failed to decrement counter: %w", err)
	}
	return &domain.ToggleResult{Status: domain.ToggleRemoved}, nil
}
