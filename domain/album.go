package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Album struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Artist      primitive.ObjectID   `bson:"artist" json:"artist"`
	ReleaseDate time.Time            `bson:"release_date" json:"releaseDate"`
	CoverImage  string               `bson:"cover_image" json:"coverImage,omitempty"`
	Songs       []primitive.ObjectID `bson:"songs" json:"songs"`
	Genre       string               `bson:"genre" json:"genre,omitempty"`
	Likes       int64                `bson:"likes" json:"likes"`
	Description string               `bson:"description" json:"description,omitempty"`
	IsExplicit  bool                 `bson:"is_explicit" json:"isExplicit"`
	CreatedAt   primitive.DateTime   `bson:"created_at" json:"createdAt"`
	UpdatedAt   primitive.DateTime   `bson:"updated_at" json:"updatedAt"`
}

type CreateAlbumRequest struct {
	Title       string `form:"title" binding:"required"`
	ArtistID    string `form:"artistId" binding:"required"`
	ReleaseDate string `form:"releaseDate"`
	Genre       string `form:"genre"`
	Description string `form:"description"`
	IsExplicit  string `form:"isExplicit"`
}

type UpdateAlbumRequest struct {
	Title       string `form:"title"`
	ReleaseDate string `form:"releaseDate"`
	Genre       string `form:"genre"`
	Description string `form:"description"`
	IsExplicit  string `form:"isExplicit"`
}

type AlbumRepository interface {
	Create(ctx context.Context, album *Album) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Album, error)
	GetByTitle(ctx context.Context, title string) (*Album, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Album, error)
	Fetch(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Album, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Update(ctx context.Context, album *Album) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByArtist(ctx context.Context, artistID primitive.ObjectID) ([]Album, error)
	PushSong(ctx context.Context, albumID, songID primitive.ObjectID) error
	PullSong(ctx context.Context, albumID, songID primitive.ObjectID) error
	Newest(ctx context.Context, limit int64) ([]Album, error)
}

type AlbumUsecase interface {
	Create(ctx context.Context, req *CreateAlbumRequest, coverPath string) (*Album, error)
	Fetch(ctx context.Context, params map[string]string) ([]Album, *Pagination, error)
	GetByID(ctx context.Context, id string) (*Album, error)
	Update(ctx context.Context, id string, req *UpdateAlbumRequest, coverPath string) (*Album, error)
	Delete(ctx context.Context, id string) error
	Newest(ctx context.Context, limit int64) ([]Album, error)
}
