package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harmonia-app/harmonia/cache"
	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/internal/apifeature"
)

const (
	albumMediaFolder     = "media/albums"
	newAlbumsCacheKey    = "albums:new-releases"
	hotListCacheDuration = time.Minute
)

type albumUsecase struct {
	albumRepository  domain.AlbumRepository
	artistRepository domain.ArtistRepository
	songRepository   domain.SongRepository
	storage          domain.MediaStorage
	listCache        cache.ListCache
	timeout          time.Duration
}

func NewAlbumUsecase(
	albumRepository domain.AlbumRepository,
	artistRepository domain.ArtistRepository,
	songRepository domain.SongRepository,
	storage domain.MediaStorage,
	listCache cache.ListCache,
	timeout time.Duration,
) domain.AlbumUsecase {
	return &albumUsecase{
		albumRepository:  albumRepository,
		artistRepository: artistRepository,
		songRepository:   songRepository,
		storage:          storage,
		listCache:        listCache,
		timeout:          timeout,
	}
}

func (uc *albumUsecase) Create(ctx context.Context, req *domain.CreateAlbumRequest, coverPath string) (*domain.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	existing, err := uc.albumRepository.GetByTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: album title already taken", domain.ErrConflict)
	}

	artistID, err := primitive.ObjectIDFromHex(req.ArtistID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid artist id", domain.ErrValidation)
	}
	if _, err := uc.artistRepository.GetByID(ctx, artistID); err != nil {
		return nil, err
	}

	releaseDate := time.Now()
	if req.ReleaseDate != "" {
		releaseDate, err = parseDate(req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid release date", domain.ErrValidation)
		}
	}

	var coverURL string
	if coverPath != "" {
		if coverURL, err = uc.storage.Upload(ctx, coverPath, albumMediaFolder); err != nil {
			return nil, err
		}
	}

	album := &domain.Album{
		Title:       req.Title,
		Artist:      artistID,
		ReleaseDate: releaseDate,
		CoverImage:  coverURL,
		Songs:       []primitive.ObjectID{},
		Genre:       req.Genre,
		Description: req.Description,
		IsExplicit:  req.IsExplicit == "true",
	}
	if err := uc.albumRepository.Create(ctx, album); err != nil {
		return nil, err
	}
	if err := uc.artistRepository.PushAlbum(ctx, artistID, album.ID); err != nil {
		return nil, err
	}
	return album, nil
}

func (uc *albumUsecase) Fetch(ctx context.Context, params map[string]string) ([]domain.Album, *domain.Pagination, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	feature := apifeature.New(nil, params).Filter().Sort().Search("album")
	filter, _ := feature.Query()

	total, err := uc.albumRepository.Count(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	feature.Paginate(total)

	filter, opts := feature.Query()
	albums, err := uc.albumRepository.Fetch(ctx, filter, opts)
	if err != nil {
		return nil, nil, err
	}
	return albums, feature.Metadata(), nil
}

func (uc *albumUsecase) GetByID(ctx context.Context, id string) (*domain.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid album id", domain.ErrValidation)
	}
	return uc.albumRepository.GetByID(ctx, oid)
}

func (uc *albumUsecase) Update(ctx context.Context, id string, req *domain.UpdateAlbumRequest, coverPath string) (*domain.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid album id", domain.ErrValidation)
	}
	album, err := uc.albumRepository.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		album.Title = req.Title
	}
	if req.ReleaseDate != "" {
		releaseDate, err := parseDate(req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid release date", domain.ErrValidation)
		}
		album.ReleaseDate = releaseDate
	}
	if req.Genre != "" {
		album.Genre = req.Genre
	}
	if req.Description != "" {
		album.Description = req.Description
	}
	if req.IsExplicit != "" {
		album.IsExplicit = req.IsExplicit == "true"
	}
	if coverPath != "" {
		url, err := uc.storage.Upload(ctx, coverPath, albumMediaFolder)
		if err != nil {
			return nil, err
		}
		album.CoverImage = url
	}

	if err := uc.albumRepository.Update(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

// Delete detaches the album's songs rather than deleting them, pulls the
// album out of the owning artist, and releases the hosted cover.
func (uc *albumUsecase) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid album id", domain.ErrValidation)
	}
	album, err := uc.albumRepository.GetByID(ctx, oid)
	if err != nil {
		return err
	}

	if err := uc.artistRepository.PullAlbum(ctx, album.Artist, oid); err != nil {
		return err
	}
	if err := uc.songRepository.DetachAlbum(ctx, oid); err != nil {
		return err
	}
	if err := uc.albumRepository.Delete(ctx, oid); err != nil {
		return err
	}

	releaseMedia(ctx, uc.storage, album.CoverImage)
	return nil
}

func (uc *albumUsecase) Newest(ctx context.Context, limit int64) ([]domain.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if limit <= 0 {
		limit = 10
	}
	key := fmt.Sprintf("%s:%d", newAlbumsCacheKey, limit)

	var albums []domain.Album
	if uc.listCache.Get(ctx, key, &albums) {
		return albums, nil
	}
	albums, err := uc.albumRepository.Newest(ctx, limit)
	if err != nil {
		return nil, err
	}
	uc.listCache.Set(ctx, key, albums, hotListCacheDuration)
	return albums, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", raw)
}
