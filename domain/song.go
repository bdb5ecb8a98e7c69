package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Song struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title           string               `bson:"title" json:"title"`
	Artist          primitive.ObjectID   `bson:"artist" json:"artist"`
	Album           *primitive.ObjectID  `bson:"album,omitempty" json:"album,omitempty"`
	Duration        int64                `bson:"duration" json:"duration"`
	AudioURL        string               `bson:"audio_url" json:"audioUrl"`
	CoverImage      string               `bson:"cover_image" json:"coverImage,omitempty"`
	Genre           string               `bson:"genre" json:"genre,omitempty"`
	Lyrics          string               `bson:"lyrics" json:"lyrics,omitempty"`
	Plays           int64                `bson:"plays" json:"plays"`
	Likes           int64                `bson:"likes" json:"likes"`
	IsExplicit      bool                 `bson:"is_explicit" json:"isExplicit"`
	FeaturedArtists []primitive.ObjectID `bson:"featured_artists" json:"featuredArtists"`
	CreatedAt       primitive.DateTime   `bson:"created_at" json:"createdAt"`
	UpdatedAt       primitive.DateTime   `bson:"updated_at" json:"updatedAt"`
}

type CreateSongRequest struct {
	Title           string   `form:"title"`
	ArtistID        string   `form:"artistId" binding:"required"`
	AlbumID         string   `form:"albumId"`
	Duration        int64    `form:"duration"`
	Genre           string   `form:"genre"`
	Lyrics          string   `form:"lyrics"`
	IsExplicit      string   `form:"isExplicit"`
	FeaturedArtists []string `form:"featuredArtists"`
}

type UpdateSongRequest struct {
	Title           string   `form:"title"`
	ArtistID        string   `form:"artistId"`
	AlbumID         string   `form:"albumId"`
	Duration        int64    `form:"duration"`
	Genre           string   `form:"genre"`
	Lyrics          string   `form:"lyrics"`
	IsExplicit      string   `form:"isExplicit"`
	FeaturedArtists []string `form:"featuredArtists"`
}

type SongRepository interface {
	Create(ctx context.Context, song *Song) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Song, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Song, error)
	GetByArtist(ctx context.Context, artistID primitive.ObjectID) ([]Song, error)
	Fetch(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Song, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Update(ctx context.Context, song *Song) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByArtist(ctx context.Context, artistID primitive.ObjectID) (int64, error)
	DetachAlbum(ctx context.Context, albumID primitive.ObjectID) error
	IncrementPlays(ctx context.Context, id primitive.ObjectID) error
	Top(ctx context.Context, limit int64) ([]Song, error)
	Newest(ctx context.Context, limit int64) ([]Song, error)
	TopByArtist(ctx context.Context, artistID primitive.ObjectID, limit int64) ([]Song, error)
}

type SongUsecase interface {
	Create(ctx context.Context, req *CreateSongRequest, audioPath, coverPath string) (*Song, error)
	Fetch(ctx context.Context, params map[string]string) ([]Song, *Pagination, error)
	GetByID(ctx context.Context, id string) (*Song, error)
	Update(ctx context.Context, id string, req *UpdateSongRequest, audioPath, coverPath string) (*Song, error)
	Delete(ctx context.Context, id string) error
	Top(ctx context.Context, limit int64) ([]Song, error)
	Newest(ctx context.Context, limit int64) ([]Song, error)
}
