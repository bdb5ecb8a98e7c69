package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Artist struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name       string               `bson:"name" json:"name"`
	Bio        string               `bson:"bio" json:"bio,omitempty"`
	Image      string               `bson:"image" json:"image,omitempty"`
	Genres     []string             `bson:"genres" json:"genres"`
	Followers  int64                `bson:"followers" json:"followers"`
	Albums     []primitive.ObjectID `bson:"albums" json:"albums"`
	Songs      []primitive.ObjectID `bson:"songs" json:"songs"`
	IsVerified bool                 `bson:"is_verified" json:"isVerified"`
	CreatedAt  primitive.DateTime   `bson:"created_at" json:"createdAt"`
	UpdatedAt  primitive.DateTime   `bson:"updated_at" json:"updatedAt"`
}

type CreateArtistRequest struct {
	Name   string   `form:"name" binding:"required"`
	Bio    string   `form:"bio"`
	Genres []string `form:"genres"`
}

type UpdateArtistRequest struct {
	Name       string   `form:"name"`
	Bio        string   `form:"bio"`
	Genres     []string `form:"genres"`
	IsVerified *bool    `form:"isVerified"`
}

type ArtistRepository interface {
	Create(ctx context.Context, artist *Artist) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Artist, error)
	GetByName(ctx context.Context, name string) (*Artist, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Artist, error)
	Fetch(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Artist, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Update(ctx context.Context, artist *Artist) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Top(ctx context.Context, limit int64) ([]Artist, error)
	PushAlbum(ctx context.Context, artistID, albumID primitive.ObjectID) error
	PullAlbum(ctx context.Context, artistID, albumID primitive.ObjectID) error
	PushSong(ctx context.Context, artistID, songID primitive.ObjectID) error
	PullSong(ctx context.Context, artistID, songID primitive.ObjectID) error
}

type ArtistUsecase interface {
	Create(ctx context.Context, req *CreateArtistRequest, imagePath string) (*Artist, error)
	Fetch(ctx context.Context, params map[string]string) ([]Artist, *Pagination, error)
	GetByID(ctx context.Context, id string) (*Artist, error)
	Update(ctx context.Context, id string, req *UpdateArtistRequest, imagePath string) (*Artist, error)
	Delete(ctx context.Context, id string) error
	Top(ctx context.Context, limit int64) ([]Artist, error)
	TopSongs(ctx context.Context, id string, limit int64) ([]Song, error)
}
