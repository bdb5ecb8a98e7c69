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

func newSongUsecaseForTest(
	songRepo *mocks.SongRepository,
	artistRepo *mocks.ArtistRepository,
	albumRepo *mocks.AlbumRepository,
	store *mocks.MediaStorage,
) domain.SongUsecase {
	return usecase.NewSongUsecase(songRepo, artistRepo, albumRepo, store, cache.NewNoop(), 2*time.Second)
}

func TestSongCreate(t *testing.T) {
	artistID := primitive.NewObjectID()

	t.Run("audio is required", func(t *testing.T) {
		uc := newSongUsecaseForTest(&mocks.SongRepository{}, &mocks.ArtistRepository{}, &mocks.AlbumRepository{}, &mocks.MediaStorage{})
		_, err := uc.Create(context.Background(), &domain.CreateSongRequest{
			Title:    "No Audio",
			ArtistID: artistID.Hex(),
		}, "", "")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown artist", func(t *testing.T) {
		artistRepo := &mocks.ArtistRepository{}
		artistRepo.On("GetByID", mock.Anything, artistID).Return(nil, domain.ErrNotFound)

		uc := newSongUsecaseForTest(&mocks.SongRepository{}, artistRepo, &mocks.AlbumRepository{}, &mocks.MediaStorage{})
		_, err := uc.Create(context.Background(), &domain.CreateSongRequest{
			Title:    "Orphan",
			ArtistID: artistID.Hex(),
		}, "/tmp/audio.mp3", "")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("success pushes into artist", func(t *testing.T) {
		artistRepo := &mocks.ArtistRepository{}
		artistRepo.On("GetByID", mock.Anything, artistID).Return(&domain.Artist{ID: artistID}, nil)
		artistRepo.On("PushSong", mock.Anything, artistID, mock.AnythingOfType("primitive.ObjectID")).Return(nil)

		songRepo := &mocks.SongRepository{}
		songRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Song")).
			Run(func(args mock.Arguments) {
				song := args.Get(1).(*domain.Song)
				song.ID = primitive.NewObjectID()
			}).Return(nil)

		store := &mocks.MediaStorage{}
		store.On("Upload", mock.Anything, "/tmp/audio.mp3", "media/songs").
			Return("gridfs://media/songs/abc", nil)

		uc := newSongUsecaseForTest(songRepo, artistRepo, &mocks.AlbumRepository{}, store)
		song, err := uc.Create(context.Background(), &domain.CreateSongRequest{
			Title:    "Fresh Track",
			ArtistID: artistID.Hex(),
		}, "/tmp/audio.mp3", "")

		require.NoError(t, err)
		assert.Equal(t, "gridfs://media/songs/abc", song.AudioURL)
		assert.Equal(t, artistID, song.Artist)
		artistRepo.AssertExpectations(t)
		songRepo.AssertExpectations(t)
	})
}

func TestSongGetByIDCountsPlay(t *testing.T) {
	songID := primitive.NewObjectID()

	songRepo := &mocks.SongRepository{}
	songRepo.On("GetByID", mock.Anything, songID).Return(&domain.Song{ID: songID, Plays: 7}, nil)
	songRepo.On("IncrementPlays", mock.Anything, songID).Return(nil)

	uc := newSongUsecaseForTest(songRepo, &mocks.ArtistRepository{}, &mocks.AlbumRepository{}, &mocks.MediaStorage{})
	song, err := uc.GetByID(context.Background(), songID.Hex())

	require.NoError(t, err)
	assert.Equal(t, int64(8), song.Plays)
	songRepo.AssertCalled(t, "IncrementPlays", mock.Anything, songID)
}

func TestSongDelete(t *testing.T) {
	songID := primitive.NewObjectID()
	artistID := primitive.NewObjectID()
	albumID := primitive.NewObjectID()
	song := &domain.Song{
		ID:         songID,
		Artist:     artistID,
		Album:      &albumID,
		AudioURL:   "gridfs://media/songs/audio",
		CoverImage: "gridfs://media/songs/cover",
	}

	songRepo := &mocks.SongRepository{}
	artistRepo := &mocks.ArtistRepository{}
	albumRepo := &mocks.AlbumRepository{}
	store := &mocks.MediaStorage{}

	songRepo.On("GetByID", mock.Anything, songID).Return(song, nil)
	artistRepo.On("PullSong", mock.Anything, artistID, songID).Return(nil)
	albumRepo.On("PullSong", mock.Anything, albumID, songID).Return(nil)
	songRepo.On("Delete", mock.Anything, songID).Return(nil)
	store.On("Remove", mock.Anything, song.AudioURL).Return(nil)
	store.On("Remove", mock.Anything, song.CoverImage).Return(nil)

	uc := newSongUsecaseForTest(songRepo, artistRepo, albumRepo, store)
	err := uc.Delete(context.Background(), songID.Hex())

	require.NoError(t, err)
	artistRepo.AssertExpectations(t)
	albumRepo.AssertExpectations(t)
	store.AssertExpectations(t)
}
