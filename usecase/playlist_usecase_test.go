package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harmonia-app/harmonia/cache"
	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/domain/mocks"
	"github.com/harmonia-app/harmonia/usecase"
)

func newPlaylistUsecaseForTest(
	playlistRepo *mocks.PlaylistRepository,
	songRepo *mocks.SongRepository,
	userRepo *mocks.UserRepository,
) domain.PlaylistUsecase {
	return usecase.NewPlaylistUsecase(
		playlistRepo,
		songRepo,
		userRepo,
		&mocks.MediaStorage{},
		cache.NewNoop(),
		2*time.Second,
	)
}

func TestPlaylistAuthorization(t *testing.T) {
	creator := primitive.NewObjectID()
	collaborator := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	playlist := &domain.Playlist{
		ID:            primitive.NewObjectID(),
		Name:          "Late Night",
		Creator:       creator,
		Collaborators: []primitive.ObjectID{collaborator},
		Songs:         []primitive.ObjectID{},
		IsPublic:      false,
	}

	newRepo := func() *mocks.PlaylistRepository {
		repo := &mocks.PlaylistRepository{}
		repo.On("GetByID", mock.Anything, playlist.ID).Return(playlist, nil)
		return repo
	}

	t.Run("stranger cannot update", func(t *testing.T) {
		uc := newPlaylistUsecaseForTest(newRepo(), &mocks.SongRepository{}, &mocks.UserRepository{})
		_, err := uc.Update(context.Background(), playlist.ID.Hex(), stranger, &domain.UpdatePlaylistRequest{Name: "Hijacked"}, "")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("collaborator cannot change visibility", func(t *testing.T) {
		uc := newPlaylistUsecaseForTest(newRepo(), &mocks.SongRepository{}, &mocks.UserRepository{})
		_, err := uc.Update(context.Background(), playlist.ID.Hex(), collaborator, &domain.UpdatePlaylistRequest{IsPublic: "true"}, "")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("collaborator cannot delete", func(t *testing.T) {
		uc := newPlaylistUsecaseForTest(newRepo(), &mocks.SongRepository{}, &mocks.UserRepository{})
		err := uc.Delete(context.Background(), playlist.ID.Hex(), collaborator)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("collaborator cannot manage collaborators", func(t *testing.T) {
		uc := newPlaylistUsecaseForTest(newRepo(), &mocks.SongRepository{}, &mocks.UserRepository{})
		_, err := uc.AddCollaborator(context.Background(), playlist.ID.Hex(), collaborator, stranger.Hex())

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("private playlist hidden from strangers", func(t *testing.T) {
		uc := newPlaylistUsecaseForTest(newRepo(), &mocks.SongRepository{}, &mocks.UserRepository{})

		_, err := uc.GetByID(context.Background(), playlist.ID.Hex(), nil)
		assert.ErrorIs(t, err, domain.ErrForbidden)

		_, err = uc.GetByID(context.Background(), playlist.ID.Hex(), &stranger)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("private playlist visible to members", func(t *testing.T) {
		uc := newPlaylistUsecaseForTest(newRepo(), &mocks.SongRepository{}, &mocks.UserRepository{})

		got, err := uc.GetByID(context.Background(), playlist.ID.Hex(), &collaborator)
		require.NoError(t, err)
		assert.Equal(t, playlist.Name, got.Name)
	})
}

func TestPlaylistCreate(t *testing.T) {
	creator := primitive.NewObjectID()

	t.Run("duplicate name for same creator", func(t *testing.T) {
		repo := &mocks.PlaylistRepository{}
		repo.On("GetByNameAndCreator", mock.Anything, "Late Night", creator).
			Return(&domain.Playlist{Name: "Late Night", Creator: creator}, nil)

		uc := newPlaylistUsecaseForTest(repo, &mocks.SongRepository{}, &mocks.UserRepository{})
		_, err := uc.Create(context.Background(), creator, &domain.CreatePlaylistRequest{Name: "Late Night"}, "")

		assert.ErrorIs(t, err, domain.ErrConflict)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("defaults to public", func(t *testing.T) {
		repo := &mocks.PlaylistRepository{}
		repo.On("GetByNameAndCreator", mock.Anything, "Gym", creator).Return(nil, nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Playlist")).Return(nil)

		uc := newPlaylistUsecaseForTest(repo, &mocks.SongRepository{}, &mocks.UserRepository{})
		playlist, err := uc.Create(context.Background(), creator, &domain.CreatePlaylistRequest{Name: "Gym"}, "")

		require.NoError(t, err)
		assert.True(t, playlist.IsPublic)
		assert.Equal(t, creator, playlist.Creator)
	})
}

func TestPlaylistAddSongs(t *testing.T) {
	creator := primitive.NewObjectID()
	existingSong := primitive.NewObjectID()
	newSong := primitive.NewObjectID()
	missingSong := primitive.NewObjectID()
	playlist := &domain.Playlist{
		ID:            primitive.NewObjectID(),
		Name:          "Mix",
		Creator:       creator,
		Collaborators: []primitive.ObjectID{},
		Songs:         []primitive.ObjectID{existingSong},
		IsPublic:      true,
	}

	repo := &mocks.PlaylistRepository{}
	repo.On("GetByID", mock.Anything, playlist.ID).Return(playlist, nil)
	// Only the resolvable new song gets appended; the duplicate and the
	// unknown id are skipped silently.
	repo.On("AddSong", mock.Anything, playlist.ID, newSong).Return(nil).Once()

	songRepo := &mocks.SongRepository{}
	songRepo.On("GetByID", mock.Anything, newSong).Return(&domain.Song{ID: newSong}, nil)
	songRepo.On("GetByID", mock.Anything, missingSong).Return(nil, domain.ErrNotFound)

	uc := newPlaylistUsecaseForTest(repo, songRepo, &mocks.UserRepository{})
	_, err := uc.AddSongs(context.Background(), playlist.ID.Hex(), creator, []string{
		existingSong.Hex(), newSong.Hex(), missingSong.Hex(),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "AddSong", 1)
}

func TestPlaylistRemoveSong(t *testing.T) {
	creator := primitive.NewObjectID()
	inPlaylist := primitive.NewObjectID()
	notInPlaylist := primitive.NewObjectID()
	playlist := &domain.Playlist{
		ID:      primitive.NewObjectID(),
		Creator: creator,
		Songs:   []primitive.ObjectID{inPlaylist},
	}

	repo := &mocks.PlaylistRepository{}
	repo.On("GetByID", mock.Anything, playlist.ID).Return(playlist, nil)
	repo.On("RemoveSong", mock.Anything, playlist.ID, inPlaylist).Return(nil)

	uc := newPlaylistUsecaseForTest(repo, &mocks.SongRepository{}, &mocks.UserRepository{})

	_, err := uc.RemoveSong(context.Background(), playlist.ID.Hex(), notInPlaylist.Hex(), creator)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.RemoveSong(context.Background(), playlist.ID.Hex(), inPlaylist.Hex(), creator)
	assert.NoError(t, err)
}
