package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/mongo"
)

type songRepository struct {
	baseRepository[domain.Song]
}

func NewSongRepository(db mongo.Database, collection string) domain.SongRepository {
	return &songRepository{baseRepository[domain.Song]{db: db, collection: collection}}
}

func (r *songRepository) Create(ctx context.Context, song *domain.Song) error {
	return r.create(ctx, song)
}

func (r *songRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Song, error) {
	return r.getByID(ctx, id)
}

func (r *songRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Song, error) {
	if len(ids) == 0 {
		return []domain.Song{}, nil
	}
	return r.fetch(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (r *songRepository) GetByArtist(ctx context.Context, artistID primitive.ObjectID) ([]domain.Song, error) {
	return r.fetch(ctx, bson.M{"artist": artistID}, nil)
}

func (r *songRepository) Fetch(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Song, error) {
	return r.fetch(ctx, filter, opts)
}

func (r *songRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.count(ctx, filter)
}

func (r *songRepository) Update(ctx context.Context, song *domain.Song) error {
	return r.update(ctx, song)
}

func (r *songRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.delete(ctx, id)
}

func (r *songRepository) DeleteByArtist(ctx context.Context, artistID primitive.ObjectID) (int64, error) {
	return r.deleteMany(ctx, bson.M{"artist": artistID})
}

// DetachAlbum clears the album reference from all songs of a deleted album
// without deleting the songs themselves.
func (r *songRepository) DetachAlbum(ctx context.Context, albumID primitive.ObjectID) error {
	return r.updateMany(ctx, bson.M{"album": albumID}, bson.M{"$unset": bson.M{"album": 1}})
}

func (r *songRepository) IncrementPlays(ctx context.Context, id primitive.ObjectID) error {
	return r.updateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"plays": 1}})
}

func (r *songRepository) Top(ctx context.Context, limit int64) ([]domain.Song, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "plays", Value: -1}}).
		SetLimit(limit)
	return r.fetch(ctx, bson.M{}, opts)
}

func (r *songRepository) Newest(ctx context.Context, limit int64) ([]domain.Song, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	return r.fetch(ctx, bson.M{}, opts)
}

func (r *songRepository) TopByArtist(ctx context.Context, artistID primitive.ObjectID, limit int64) ([]domain.Song, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "plays", Value: -1}}).
		SetLimit(limit)
	return r.fetch(ctx, bson.M{"artist": artistID}, opts)
}
