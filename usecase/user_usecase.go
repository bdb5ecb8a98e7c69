package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/harmonia-app/harmonia/domain"
)

const userMediaFolder = "media/users"

type userUsecase struct {
	userRepository     domain.UserRepository
	songRepository     domain.SongRepository
	albumRepository    domain.AlbumRepository
	artistRepository   domain.ArtistRepository
	playlistRepository domain.PlaylistRepository
	relationRepository domain.RelationRepository
	storage            domain.MediaStorage
	timeout            time.Duration
}

func NewUserUsecase(
	userRepository domain.UserRepository,
	songRepository domain.SongRepository,
	albumRepository domain.AlbumRepository,
	artistRepository domain.ArtistRepository,
	playlistRepository domain.PlaylistRepository,
	relationRepository domain.RelationRepository,
	storage domain.MediaStorage,
	timeout time.Duration,
) domain.UserUsecase {
	return &userUsecase{
		userRepository:     userRepository,
		songRepository:     songRepository,
		albumRepository:    albumRepository,
		artistRepository:   artistRepository,
		playlistRepository: playlistRepository,
		relationRepository: relationRepository,
		storage:            storage,
		timeout:            timeout,
	}
}

// GetProfile resolves the user's reference collections into the documents
// they point at.
func (uc *userUsecase) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	user, err := uc.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	songs, err := uc.songRepository.GetByIDs(ctx, user.LikedSongs)
	if err != nil {
		return nil, err
	}
	albums, err := uc.albumRepository.GetByIDs(ctx, user.LikedAlbums)
	if err != nil {
		return nil, err
	}
	artists, err := uc.artistRepository.GetByIDs(ctx, user.FollowedArtists)
	if err != nil {
		return nil, err
	}
	playlists, err := uc.playlistRepository.GetByIDs(ctx, user.FollowedPlaylists)
	if err != nil {
		return nil, err
	}

	return &domain.Profile{
		ID:                user.ID,
		Name:              user.Name,
		Email:             user.Email,
		ProfilePicture:    user.ProfilePicture,
		LikedSongs:        songs,
		LikedAlbums:       albums,
		FollowedArtists:   artists,
		FollowedPlaylists: playlists,
	}, nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *domain.UpdateProfileRequest, picturePath string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	user, err := uc.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}

	// Upload before persisting so a storage failure leaves the record
	// untouched.
	if picturePath != "" {
		url, err := uc.storage.Upload(ctx, picturePath, userMediaFolder)
		if err != nil {
			return nil, err
		}
		user.ProfilePicture = url
	}

	if err := uc.userRepository.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUsecase) ToggleLikeSong(ctx context.Context, userID primitive.ObjectID, songID string) (*domain.ToggleResult, []primitive.ObjectID, error) {
	return uc.toggle(ctx, domain.RelationLikedSongs, userID, songID)
}

func (uc *userUsecase) ToggleLikeAlbum(ctx context.Context, userID primitive.ObjectID, albumID string) (*domain.ToggleResult, []primitive.ObjectID, error) {
	return uc.toggle(ctx, domain.RelationLikedAlbums, userID, albumID)
}

func (uc *userUsecase) ToggleFollowArtist(ctx context.Context, userID primitive.ObjectID, artistID string) (*domain.ToggleResult, []primitive.ObjectID, error) {
	return uc.toggle(ctx, domain.RelationFollowedArtists, userID, artistID)
}

func (uc *userUsecase) ToggleFollowPlaylist(ctx context.Context, userID primitive.ObjectID, playlistID string) (*domain.ToggleResult, []primitive.ObjectID, error) {
	return uc.toggle(ctx, domain.RelationFollowedPlaylists, userID, playlistID)
}

// toggle flips the membership and returns the owner's refreshed reference
// array so callers can echo the updated collection.
func (uc *userUsecase) toggle(ctx context.Context, rel domain.Relation, userID primitive.ObjectID, targetHex string) (*domain.ToggleResult, []primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	targetID, err := primitive.ObjectIDFromHex(targetHex)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid id", domain.ErrValidation)
	}

	result, err := uc.relationRepository.Toggle(ctx, rel, userID, targetID)
	if err != nil {
		return nil, nil, err
	}

	user, err := uc.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var members []primitive.ObjectID
	switch rel.OwnerField {
	case "liked_songs":
		members = user.LikedSongs
	case "liked_albums":
		members = user.LikedAlbums
	case "followed_artists":
		members = user.FollowedArtists
	case "followed_playlists":
		members = user.FollowedPlaylists
	}
	return result, members, nil
}
