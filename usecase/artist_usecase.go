package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/internal/apifeature"
)

const artistMediaFolder = "media/artists"

type artistUsecase struct {
	artistRepository domain.ArtistRepository
	albumRepository  domain.AlbumRepository
	songRepository   domain.SongRepository
	storage          domain.MediaStorage
	timeout          time.Duration
}

func NewArtistUsecase(
	artistRepository domain.ArtistRepository,
	albumRepository domain.AlbumRepository,
	songRepository domain.SongRepository,
	storage domain.MediaStorage,
	timeout time.Duration,
) domain.ArtistUsecase {
	return &artistUsecase{
		artistRepository: artistRepository,
		albumRepository:  albumRepository,
		songRepository:   songRepository,
		storage:          storage,
		timeout:          timeout,
	}
}

func (uc *artistUsecase) Create(ctx context.Context, req *domain.CreateArtistRequest, imagePath string) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	existing, err := uc.artistRepository.GetByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: artist name already taken", domain.ErrConflict)
	}

	var imageURL string
	if imagePath != "" {
		// Upload first: a hosting failure must not leave an orphaned record.
		if imageURL, err = uc.storage.Upload(ctx, imagePath, artistMediaFolder); err != nil {
			return nil, err
		}
	}

	artist := &domain.Artist{
		Name:       req.Name,
		Bio:        req.Bio,
		Image:      imageURL,
		Genres:     req.Genres,
		IsVerified: true,
		Albums:     []primitive.ObjectID{},
		Songs:      []primitive.ObjectID{},
	}
	if artist.Genres == nil {
		artist.Genres = []string{}
	}
	if err := uc.artistRepository.Create(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (uc *artistUsecase) Fetch(ctx context.Context, params map[string]string) ([]domain.Artist, *domain.Pagination, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	feature := apifeature.New(nil, params).Filter().Sort().Search("artist")
	filter, _ := feature.Query()

	total, err := uc.artistRepository.Count(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	feature.Paginate(total)

	filter, opts := feature.Query()
	artists, err := uc.artistRepository.Fetch(ctx, filter, opts)
	if err != nil {
		return nil, nil, err
	}
	return artists, feature.Metadata(), nil
}

func (uc *artistUsecase) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid artist id", domain.ErrValidation)
	}
	return uc.artistRepository.GetByID(ctx, oid)
}

func (uc *artistUsecase) Update(ctx context.Context, id string, req *domain.UpdateArtistRequest, imagePath string) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid artist id", domain.ErrValidation)
	}
	artist, err := uc.artistRepository.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		artist.Name = req.Name
	}
	if req.Bio != "" {
		artist.Bio = req.Bio
	}
	if len(req.Genres) > 0 {
		artist.Genres = req.Genres
	}
	if req.IsVerified != nil {
		artist.IsVerified = *req.IsVerified
	}
	if imagePath != "" {
		url, err := uc.storage.Upload(ctx, imagePath, artistMediaFolder)
		if err != nil {
			return nil, err
		}
		artist.Image = url
	}

	if err := uc.artistRepository.Update(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// Delete cascades: every song and album owned by the artist goes with it,
// and the hosted media of all three is released afterwards. A failed blob
// removal is logged and swallowed; the records are already gone.
func (uc *artistUsecase) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid artist id", domain.ErrValidation)
	}
	artist, err := uc.artistRepository.GetByID(ctx, oid)
	if err != nil {
		return err
	}

	songs, err := uc.songRepository.GetByArtist(ctx, oid)
	if err != nil {
		return err
	}
	if _, err := uc.songRepository.DeleteByArtist(ctx, oid); err != nil {
		return err
	}
	albums, err := uc.albumRepository.DeleteByArtist(ctx, oid)
	if err != nil {
		return err
	}
	if err := uc.artistRepository.Delete(ctx, oid); err != nil {
		return err
	}

	urls := []string{artist.Image}
	for _, s := range songs {
		urls = append(urls, s.AudioURL, s.CoverImage)
	}
	for _, a := range albums {
		urls = append(urls, a.CoverImage)
	}
	releaseMedia(ctx, uc.storage, urls...)
	return nil
}

func (uc *artistUsecase) Top(ctx context.Context, limit int64) ([]domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if limit <= 0 {
		limit = 10
	}
	return uc.artistRepository.Top(ctx, limit)
}

func (uc *artistUsecase) TopSongs(ctx context.Context, id string, limit int64) ([]domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid artist id", domain.ErrValidation)
	}
	if limit <= 0 {
		limit = 5
	}
	songs, err := uc.songRepository.TopByArtist(ctx, oid, limit)
	if err != nil {
		return nil, err
	}
	if len(songs) == 0 {
		return nil, fmt.Errorf("%w: no songs for this artist", domain.ErrNotFound)
	}
	return songs, nil
}
