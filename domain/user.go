package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name              string               `bson:"name" json:"name"`
	Email             string               `bson:"email" json:"email"`
	Password          string               `bson:"password" json:"-"`
	ProfilePicture    string               `bson:"profile_picture" json:"profilePicture,omitempty"`
	IsAdmin           bool                 `bson:"is_admin" json:"isAdmin"`
	LikedSongs        []primitive.ObjectID `bson:"liked_songs" json:"likedSongs"`
	LikedAlbums       []primitive.ObjectID `bson:"liked_albums" json:"likedAlbums"`
	FollowedArtists   []primitive.ObjectID `bson:"followed_artists" json:"followedArtists"`
	FollowedPlaylists []primitive.ObjectID `bson:"followed_playlists" json:"followedPlaylists"`
	CreatedAt         primitive.DateTime   `bson:"created_at" json:"createdAt"`
	UpdatedAt         primitive.DateTime   `bson:"updated_at" json:"updatedAt"`
}

// Profile is the expanded view of a user's library, with references
// resolved into the documents they point at.
type Profile struct {
	ID                primitive.ObjectID `json:"id"`
	Name              string             `json:"name"`
	Email             string             `json:"email"`
	ProfilePicture    string             `json:"profilePicture,omitempty"`
	LikedSongs        []Song             `json:"likedSongs"`
	LikedAlbums       []Album            `json:"likedAlbums"`
	FollowedArtists   []Artist           `json:"followedArtists"`
	FollowedPlaylists []Playlist         `json:"followedPlaylists"`
}

type UpdateProfileRequest struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	Update(ctx context.Context, user *User) error
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*Profile, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *UpdateProfileRequest, picturePath string) (*User, error)
	ToggleLikeSong(ctx context.Context, userID primitive.ObjectID, songID string) (*ToggleResult, []primitive.ObjectID, error)
	ToggleLikeAlbum(ctx context.Context, userID primitive.ObjectID, albumID string) (*ToggleResult, []primitive.ObjectID, error)
	ToggleFollowArtist(ctx context.Context, userID primitive.ObjectID, artistID string) (*ToggleResult, []primitive.ObjectID, error)
	ToggleFollowPlaylist(ctx context.Context, userID primitive.ObjectID, playlistID string) (*ToggleResult, []primitive.ObjectID, error)
}
