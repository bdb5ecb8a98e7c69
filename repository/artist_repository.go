package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/mongo"
)

type artistRepository struct {
	baseRepository[domain.Artist]
}

func NewArtistRepository(db mongo.Database, collection string) domain.ArtistRepository {
	return &artistRepository{baseRepository[domain.Artist]{db: db, collection: collection}}
}

func (r *artistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	return r.create(ctx, artist)
}

func (r *artistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Artist, error) {
	return r.getByID(ctx, id)
}

func (r *artistRepository) GetByName(ctx context.Context, name string) (*domain.Artist, error) {
	return r.getOne(ctx, bson.M{"name": name})
}

func (r *artistRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Artist, error) {
	if len(ids) == 0 {
		return []domain.Artist{}, nil
	}
	return r.fetch(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (r *artistRepository) Fetch(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Artist, error) {
	return r.fetch(ctx, filter, opts)
}

func (r *artistRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.count(ctx, filter)
}

func (r *artistRepository) Update(ctx context.Context, artist *domain.Artist) error {
	return r.update(ctx, artist)
}

func (r *artistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.delete(ctx, id)
}

func (r *artistRepository) Top(ctx context.Context, limit int64) ([]domain.Artist, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "followers", Value: -1}}).
		SetLimit(limit)
	return r.fetch(ctx, bson.M{}, opts)
}

func (r *artistRepository) PushAlbum(ctx context.Context, artistID, albumID primitive.ObjectID) error {
	return r.updateOne(ctx, bson.M{"_id": artistID}, bson.M{"$addToSet": bson.M{"albums": albumID}})
}

func (r *artistRepository) PullAlbum(ctx context.Context, artistID, albumID primitive.ObjectID) error {
	return r.updateOne(ctx, bson.M{"_id": artistID}, bson.M{"$pull": bson.M{"albums": albumID}})
}

func (r *artistRepository) PushSong(ctx context.Context, artistID, songID primitive.ObjectID) error {
	return r.updateOne(ctx, bson.M{"_id": artistID}, bson.M{"$addToSet": bson.M{"songs": songID}})
}

func (r *artistRepository) PullSong(ctx context.Context, artistID, songID primitive.ObjectID) error {
	return r.updateOne(ctx, bson.M{"_id": artistID}, bson.M{"$pull": bson.M{"songs": songID}})
}
