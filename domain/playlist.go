package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Playlist struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name          string               `bson:"name" json:"name"`
	Description   string               `bson:"description" json:"description,omitempty"`
	CoverImage    string               `bson:"cover_image" json:"coverImage,omitempty"`
	Creator       primitive.ObjectID   `bson:"creator" json:"creator"`
	Collaborators []primitive.ObjectID `bson:"collaborators" json:"collaborators"`
	Songs         []primitive.ObjectID `bson:"songs" json:"songs"`
	IsPublic      bool                 `bson:"is_public" json:"isPublic"`
	Followers     int64                `bson:"followers" json:"followers"`
	CreatedAt     primitive.DateTime   `bson:"created_at" json:"createdAt"`
	UpdatedAt     primitive.DateTime   `bson:"updated_at" json:"updatedAt"`
}

// IsCreator reports whether userID owns the playlist.
func (p *Playlist) IsCreator(userID primitive.ObjectID) bool {
	return p.Creator == userID
}

// IsCollaborator reports whether userID may edit the song list.
func (p *Playlist) IsCollaborator(userID primitive.ObjectID) bool {
	for _, c := range p.Collaborators {
		if c == userID {
			return true
		}
	}
	return false
}

type CreatePlaylistRequest struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	IsPublic    string `form:"isPublic"`
}

type UpdatePlaylistRequest struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	IsPublic    string `form:"isPublic"`
}

type AddSongsRequest struct {
	SongIDs []string `json:"songIds" binding:"required"`
}

type CollaboratorRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *Playlist) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Playlist, error)
	GetByNameAndCreator(ctx context.Context, name string, creator primitive.ObjectID) (*Playlist, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Playlist, error)
	GetByMember(ctx context.Context, userID primitive.ObjectID) ([]Playlist, error)
	Fetch(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Playlist, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Update(ctx context.Context, playlist *Playlist) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddSong(ctx context.Context, playlistID, songID primitive.ObjectID) error
	RemoveSong(ctx context.Context, playlistID, songID primitive.ObjectID) error
	AddCollaborator(ctx context.Context, playlistID, userID primitive.ObjectID) error
	RemoveCollaborator(ctx context.Context, playlistID, userID primitive.ObjectID) error
	Featured(ctx context.Context, limit int64) ([]Playlist, error)
}

type PlaylistUsecase interface {
	Create(ctx context.Context, creator primitive.ObjectID, req *CreatePlaylistRequest, coverPath string) (*Playlist, error)
	Fetch(ctx context.Context, params map[string]string) ([]Playlist, *Pagination, error)
	GetByID(ctx context.Context, id string, caller *primitive.ObjectID) (*Playlist, error)
	GetMine(ctx context.Context, userID primitive.ObjectID) ([]Playlist, error)
	Update(ctx context.Context, id string, caller primitive.ObjectID, req *UpdatePlaylistRequest, coverPath string) (*Playlist, error)
	Delete(ctx context.Context, id string, caller primitive.ObjectID) error
	AddSongs(ctx context.Context, id string, caller primitive.ObjectID, songIDs []string) (*Playlist, error)
	RemoveSong(ctx context.Context, id, songID string, caller primitive.ObjectID) (*Playlist, error)
	AddCollaborator(ctx context.Context, id string, caller primitive.ObjectID, userID string) (*Playlist, error)
	RemoveCollaborator(ctx context.Context, id string, caller primitive.ObjectID, userID string) (*Playlist, error)
	Featured(ctx context.Context, limit int64) ([]Playlist, error)
}
