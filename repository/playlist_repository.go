package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/mongo"
)

type playlistRepository struct {
	baseRepository[domain.Playlist]
}

func NewPlaylistRepository(db mongo.Database, collection string) domain.PlaylistRepository {
	return &playlistRepository{baseRepository[domain.Playlist]{db: db, collection: collection}}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	return r.create(ctx, playlist)
}

func (r *playlistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error) {
	return r.getByID(ctx, id)
}

func (r *playlistRepository) GetByNameAndCreator(ctx context.Context, name string, creator primitive.ObjectID) (*domain.Playlist, error) {
	return r.getOne(ctx, bson.M{"name": name, "creator": creator})
}

func (r *playlistRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Playlist, error) {
	if len(ids) == 0 {
		return []domain.Playlist{}, nil
	}
	return r.fetch(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// GetByMember lists playlists the user created or collaborates on,
// newest first.
func (r *playlistRepository) GetByMember(ctx context.Context, userID primitive.ObjectID) ([]domain.Playlist, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"creator": userID},
		bson.M{"collaborators": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.fetch(ctx, filter, opts)
}

func (r *playlistRepository) Fetch(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Playlist, error) {
	return r.fetch(ctx, filter, opts)
}

func (r *playlistRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.count(ctx, filter)
}

func (r *playlistRepository) Update(ctx context.Context, playlist *domain.Playlist) error {
	return r.update(ctx, playlist)
}

func (r *playlistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.delete(ctx, id)
}

func (r *playlistRepository) AddSong(ctx context.Context, playlistID, songID primitive.ObjectID) error {
	return r.updateOne(ctx, bson.M{"_id": playlistID}, bson.M{"$addToSet": bson.M{"songs": songID}})
}

func (r *playlistRepository) RemoveSong(ctx context.Context, playlistID, songID primitive.ObjectID) error {
	return r.updateOne(ctx, bson.M{"_id": playlistID}, bson.M{"$pull": bson.M{"songs": songID}})
}

func (r *playlistRepository) AddCollaborator(ctx context.Context, playlistID, userID primitive.ObjectID) error {
	return r.updateOne(ctx, bson.M{"_id": playlistID}, bson.M{"$addToSet": bson.M{"collaborators": userID}})
}

func (r *playlistRepository) RemoveCollaborator(ctx context.Context, playlistID, userID primitive.ObjectID) error {
	return r.updateOne(ctx, bson.M{"_id": playlistID}, bson.M{"$pull": bson.M{"collaborators": userID}})
}

func (r *playlistRepository) Featured(ctx context.Context, limit int64) ([]domain.Playlist, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "followers", Value: -1}}).
		SetLimit(limit)
	return r.fetch(ctx, bson.M{"is_public": true}, opts)
}
