package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/mongo"
)

type albumRepository struct {
	baseRepository[domain.Album]
}

func NewAlbumRepository(db mongo.Database, collection string) domain.AlbumRepository {
	return &albumRepository{baseRepository[domain.Album]{db: db, collection: collection}}
}

func (r *albumRepository) Create(ctx context.Context, album *domain.Album) error {
	return r.create(ctx, album)
}

func (r *albumRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Album, error) {
	return r.getByID(ctx, id)
}

func (r *albumRepository) GetByTitle(ctx context.Context, title string) (*domain.Album, error) {
	return r.getOne(ctx, bson.M{"title": title})
}

func (r *albumRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Album, error) {
	if len(ids) == 0 {
		return []domain.Album{}, nil
	}
	return r.fetch(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (r *albumRepository) Fetch(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Album, error) {
	return r.fetch(ctx, filter, opts)
}

func (r *albumRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.count(ctx, filter)
}

func (r *albumRepository) Update(ctx context.Context, album *domain.Album) error {
	return r.update(ctx, album)
}

func (r *albumRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.delete(ctx, id)
}

// DeleteByArtist removes every album owned by the artist and returns the
// removed documents so the caller can release their hosted covers.
func (r *albumRepository) DeleteByArtist(ctx context.Context, artistID primitive.ObjectID) ([]domain.Album, error) {
	albums, err := r.fetch(ctx, bson.M{"artist": artistID}, nil)
	if err != nil {
		return nil, err
	}
	if _, err := r.deleteMany(ctx, bson.M{"artist": artistID}); err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *albumRepository) PushSong(ctx context.Context, albumID, songID primitive.ObjectID) error {
	return r.updateOne(ctx, bson.M{"_id": albumID}, bson.M{"$addToSet": bson.M{"songs": songID}})
}

func (r *albumRepository) PullSong(ctx context.Context, albumID, songID primitive.ObjectID) error {
	return r.updateOne(ctx, bson.M{"_id": albumID}, bson.M{"$pull": bson.M{"songs": songID}})
}

func (r *albumRepository) Newest(ctx context.Context, limit int64) ([]domain.Album, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	return r.fetch(ctx, bson.M{}, opts)
}
