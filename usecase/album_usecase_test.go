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

func newAlbumUsecaseForTest(
	albumRepo *mocks.AlbumRepository,
	artistRepo *mocks.ArtistRepository,
	songRepo *mocks.SongRepository,
	store *mocks.MediaStorage,
) domain.AlbumUsecase {
	return usecase.NewAlbumUsecase(albumRepo, artistRepo, songRepo, store, cache.NewNoop(), 2*time.Second)
}

func TestAlbumCreate(t *testing.T) {
	artistID := primitive.NewObjectID()

	t.Run("title conflict", func(t *testing.T) {
		albumRepo := &mocks.AlbumRepository{}
		albumRepo.On("GetByTitle", mock.Anything, "Taken").Return(&domain.Album{Title: "Taken"}, nil)

		uc := newAlbumUsecaseForTest(albumRepo, &mocks.ArtistRepository{}, &mocks.SongRepository{}, &mocks.MediaStorage{})
		_, err := uc.Create(context.Background(), &domain.CreateAlbumRequest{
			Title:    "Taken",
			ArtistID: artistID.Hex(),
		}, "")

		assert.ErrorIs(t, err, domain.ErrConflict)
		albumRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown artist", func(t *testing.T) {
		albumRepo := &mocks.AlbumRepository{}
		albumRepo.On("GetByTitle", mock.Anything, "Debut").Return(nil, nil)
		artistRepo := &mocks.ArtistRepository{}
		artistRepo.On("GetByID", mock.Anything, artistID).Return(nil, domain.ErrNotFound)

		uc := newAlbumUsecaseForTest(albumRepo, artistRepo, &mocks.SongRepository{}, &mocks.MediaStorage{})
		_, err := uc.Create(context.Background(), &domain.CreateAlbumRequest{
			Title:    "Debut",
			ArtistID: artistID.Hex(),
		}, "")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("bad release date", func(t *testing.T) {
		albumRepo := &mocks.AlbumRepository{}
		albumRepo.On("GetByTitle", mock.Anything, "Debut").Return(nil, nil)
		artistRepo := &mocks.ArtistRepository{}
		artistRepo.On("GetByID", mock.Anything, artistID).Return(&domain.Artist{ID: artistID}, nil)

		uc := newAlbumUsecaseForTest(albumRepo, artistRepo, &mocks.SongRepository{}, &mocks.MediaStorage{})
		_, err := uc.Create(context.Background(), &domain.CreateAlbumRequest{
			Title:       "Debut",
			ArtistID:    artistID.Hex(),
			ReleaseDate: "not a date",
		}, "")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("success pushes into artist", func(t *testing.T) {
		albumRepo := &mocks.AlbumRepository{}
		albumRepo.On("GetByTitle", mock.Anything, "Debut").Return(nil, nil)
		albumRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Album")).
			Run(func(args mock.Arguments) {
				album := args.Get(1).(*domain.Album)
				album.ID = primitive.NewObjectID()
			}).Return(nil)

		artistRepo := &mocks.ArtistRepository{}
		artistRepo.On("GetByID", mock.Anything, artistID).Return(&domain.Artist{ID: artistID}, nil)
		artistRepo.On("PushAlbum", mock.Anything, artistID, mock.AnythingOfType("primitive.ObjectID")).Return(nil)

		uc := newAlbumUsecaseForTest(albumRepo, artistRepo, &mocks.SongRepository{}, &mocks.MediaStorage{})
		album, err := uc.Create(context.Background(), &domain.CreateAlbumRequest{
			Title:       "Debut",
			ArtistID:    artistID.Hex(),
			ReleaseDate: "2024-06-01",
		}, "")

		require.NoError(t, err)
		assert.Equal(t, artistID, album.Artist)
		assert.Equal(t, 2024, album.ReleaseDate.Year())
		artistRepo.AssertExpectations(t)
	})
}

func TestAlbumDeleteDetachesSongs(t *testing.T) {
	albumID := primitive.NewObjectID()
	artistID := primitive.NewObjectID()
	album := &domain.Album{
		ID:         albumID,
		Artist:     artistID,
		CoverImage: "gridfs://media/albums/cover",
	}

	albumRepo := &mocks.AlbumRepository{}
	artistRepo := &mocks.ArtistRepository{}
	songRepo := &mocks.SongRepository{}
	store := &mocks.MediaStorage{}

	albumRepo.On("GetByID", mock.Anything, albumID).Return(album, nil)
	artistRepo.On("PullAlbum", mock.Anything, artistID, albumID).Return(nil)
	songRepo.On("DetachAlbum", mock.Anything, albumID).Return(nil)
	albumRepo.On("Delete", mock.Anything, albumID).Return(nil)
	store.On("Remove", mock.Anything, album.CoverImage).Return(nil)

	uc := newAlbumUsecaseForTest(albumRepo, artistRepo, songRepo, store)
	err := uc.Delete(context.Background(), albumID.Hex())

	require.NoError(t, err)
	// Songs survive the album: they are detached, never deleted.
	songRepo.AssertNotCalled(t, "DeleteByArtist", mock.Anything, mock.Anything)
	songRepo.AssertCalled(t, "DetachAlbum", mock.Anything, albumID)
	store.AssertExpectations(t)
}
