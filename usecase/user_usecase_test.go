package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/domain/mocks"
	"github.com/harmonia-app/harmonia/usecase"
)

func newUserUsecaseForTest(
	userRepo *mocks.UserRepository,
	relationRepo *mocks.RelationRepository,
) domain.UserUsecase {
	return usecase.NewUserUsecase(
		userRepo,
		&mocks.SongRepository{},
		&mocks.AlbumRepository{},
		&mocks.ArtistRepository{},
		&mocks.PlaylistRepository{},
		relationRepo,
		&mocks.MediaStorage{},
		2*time.Second,
	)
}

func TestToggleLikeSong(t *testing.T) {
	userID := primitive.NewObjectID()
	songID := primitive.NewObjectID()

	t.Run("added", func(t *testing.T) {
		mockUserRepository := &mocks.UserRepository{}
		mockRelationRepository := &mocks.RelationRepository{}

		mockRelationRepository.On("Toggle", mock.Anything, domain.RelationLikedSongs, userID, songID).
			Return(&domain.ToggleResult{Status: domain.ToggleAdded}, nil)
		mockUserRepository.On("GetByID", mock.Anything, userID).
			Return(&domain.User{ID: userID, LikedSongs: []primitive.ObjectID{songID}}, nil)

		uc := newUserUsecaseForTest(mockUserRepository, mockRelationRepository)
		result, members, err := uc.ToggleLikeSong(context.Background(), userID, songID.Hex())

		require.NoError(t, err)
		assert.Equal(t, domain.ToggleAdded, result.Status)
		assert.Equal(t, []primitive.ObjectID{songID}, members)
		mockRelationRepository.AssertExpectations(t)
	})

	t.Run("removed on second toggle", func(t *testing.T) {
		mockUserRepository := &mocks.UserRepository{}
		mockRelationRepository := &mocks.RelationRepository{}

		mockRelationRepository.On("Toggle", mock.Anything, domain.RelationLikedSongs, userID, songID).
			Return(&domain.ToggleResult{Status: domain.ToggleRemoved}, nil)
		mockUserRepository.On("GetByID", mock.Anything, userID).
			Return(&domain.User{ID: userID, LikedSongs: []primitive.ObjectID{}}, nil)

		uc := newUserUsecaseForTest(mockUserRepository, mockRelationRepository)
		result, members, err := uc.ToggleLikeSong(context.Background(), userID, songID.Hex())

		require.NoError(t, err)
		assert.Equal(t, domain.ToggleRemoved, result.Status)
		assert.Empty(t, members)
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := newUserUsecaseForTest(&mocks.UserRepository{}, &mocks.RelationRepository{})
		_, _, err := uc.ToggleLikeSong(context.Background(), userID, "not-a-hex-id")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("missing target", func(t *testing.T) {
		mockRelationRepository := &mocks.RelationRepository{}
		mockRelationRepository.On("Toggle", mock.Anything, domain.RelationLikedSongs, userID, songID).
			Return(nil, domain.ErrNotFound)

		uc := newUserUsecaseForTest(&mocks.UserRepository{}, mockRelationRepository)
		_, _, err := uc.ToggleLikeSong(context.Background(), userID, songID.Hex())

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestToggleFollowPlaylist(t *testing.T) {
	userID := primitive.NewObjectID()
	playlistID := primitive.NewObjectID()

	mockUserRepository := &mocks.UserRepository{}
	mockRelationRepository := &mocks.RelationRepository{}

	mockRelationRepository.On("Toggle", mock.Anything, domain.RelationFollowedPlaylists, userID, playlistID).
		Return(&domain.ToggleResult{Status: domain.ToggleAdded}, nil)
	mockUserRepository.On("GetByID", mock.Anything, userID).
		Return(&domain.User{ID: userID, FollowedPlaylists: []primitive.ObjectID{playlistID}}, nil)

	uc := newUserUsecaseForTest(mockUserRepository, mockRelationRepository)
	result, members, err := uc.ToggleFollowPlaylist(context.Background(), userID, playlistID.Hex())

	require.NoError(t, err)
	assert.Equal(t, domain.ToggleAdded, result.Status)
	assert.Equal(t, []primitive.ObjectID{playlistID}, members)
}

func TestGetProfile(t *testing.T) {
	userID := primitive.NewObjectID()
	songID := primitive.NewObjectID()

	mockUserRepository := &mocks.UserRepository{}
	mockSongRepository := &mocks.SongRepository{}
	mockAlbumRepository := &mocks.AlbumRepository{}
	mockArtistRepository := &mocks.ArtistRepository{}
	mockPlaylistRepository := &mocks.PlaylistRepository{}

	user := &domain.User{
		ID:                userID,
		Name:              "Listener",
		Email:             "listener@example.com",
		LikedSongs:        []primitive.ObjectID{songID},
		LikedAlbums:       []primitive.ObjectID{},
		FollowedArtists:   []primitive.ObjectID{},
		FollowedPlaylists: []primitive.ObjectID{},
	}
	mockUserRepository.On("GetByID", mock.Anything, userID).Return(user, nil)
	mockSongRepository.On("GetByIDs", mock.Anything, user.LikedSongs).
		Return([]domain.Song{{ID: songID, Title: "Track"}}, nil)
	mockAlbumRepository.On("GetByIDs", mock.Anything, user.LikedAlbums).Return([]domain.Album{}, nil)
	mockArtistRepository.On("GetByIDs", mock.Anything, user.FollowedArtists).Return([]domain.Artist{}, nil)
	mockPlaylistRepository.On("GetByIDs", mock.Anything, user.FollowedPlaylists).Return([]domain.Playlist{}, nil)

	uc := usecase.NewUserUsecase(
		mockUserRepository,
		mockSongRepository,
		mockAlbumRepository,
		mockArtistRepository,
		mockPlaylistRepository,
		&mocks.RelationRepository{},
		&mocks.MediaStorage{},
		2*time.Second,
	)
	profile, err := uc.GetProfile(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "Listener", profile.Name)
	require.Len(t, profile.LikedSongs, 1)
	assert.Equal(t, "Track", profile.LikedSongs[0].Title)
}
