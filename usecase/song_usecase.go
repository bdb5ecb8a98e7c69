package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harmonia-app/harmonia/cache"
	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/internal/apifeature"
	"github.com/harmonia-app/harmonia/internal/audiometa"
)

const (
	songMediaFolder   = "media/songs"
	topSongsCacheKey  = "songs:top"
	newSongsCacheKey  = "songs:new-releases"
	defaultChartLimit = 10
)

type songUsecase struct {
	songRepository   domain.SongRepository
	artistRepository domain.ArtistRepository
	albumRepository  domain.AlbumRepository
	storage          domain.MediaStorage
	listCache        cache.ListCache
	timeout          time.Duration
}

func NewSongUsecase(
	songRepository domain.SongRepository,
	artistRepository domain.ArtistRepository,
	albumRepository domain.AlbumRepository,
	storage domain.MediaStorage,
	listCache cache.ListCache,
	timeout time.Duration,
) domain.SongUsecase {
	return &songUsecase{
		songRepository:   songRepository,
		artistRepository: artistRepository,
		albumRepository:  albumRepository,
		storage:          storage,
		listCache:        listCache,
		timeout:          timeout,
	}
}

func (uc *songUsecase) Create(ctx context.Context, req *domain.CreateSongRequest, audioPath, coverPath string) (*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if audioPath == "" {
		return nil, fmt.Errorf("%w: audio file is required", domain.ErrValidation)
	}

	artistID, err := primitive.ObjectIDFromHex(req.ArtistID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid artist id", domain.ErrValidation)
	}
	if _, err := uc.artistRepository.GetByID(ctx, artistID); err != nil {
		return nil, err
	}

	var albumID *primitive.ObjectID
	if req.AlbumID != "" {
		oid, err := primitive.ObjectIDFromHex(req.AlbumID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid album id", domain.ErrValidation)
		}
		if _, err := uc.albumRepository.GetByID(ctx, oid); err != nil {
			return nil, err
		}
		albumID = &oid
	}

	featured, err := parseObjectIDs(req.FeaturedArtists)
	if err != nil {
		return nil, err
	}

	// Embedded tags fill in whatever the client left blank. A file with no
	// readable tags is still accepted.
	title, genre := req.Title, req.Genre
	if meta, err := audiometa.Probe(audioPath); err == nil {
		if title == "" {
			title = meta.Title
		}
		if genre == "" {
			genre = meta.Genre
		}
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	audioURL, err := uc.storage.Upload(ctx, audioPath, songMediaFolder)
	if err != nil {
		return nil, err
	}
	var coverURL string
	if coverPath != "" {
		if coverURL, err = uc.storage.Upload(ctx, coverPath, songMediaFolder); err != nil {
			return nil, err
		}
	}

	song := &domain.Song{
		Title:           title,
		Artist:          artistID,
		Album:           albumID,
		Duration:        req.Duration,
		AudioURL:        audioURL,
		CoverImage:      coverURL,
		Genre:           genre,
		Lyrics:          req.Lyrics,
		IsExplicit:      req.IsExplicit == "true",
		FeaturedArtists: featured,
	}
	if err := uc.songRepository.Create(ctx, song); err != nil {
		return nil, err
	}
	if err := uc.artistRepository.PushSong(ctx, artistID, song.ID); err != nil {
		return nil, err
	}
	if albumID != nil {
		if err := uc.albumRepository.PushSong(ctx, *albumID, song.ID); err != nil {
			return nil, err
		}
	}
	return song, nil
}

func (uc *songUsecase) Fetch(ctx context.Context, params map[string]string) ([]domain.Song, *domain.Pagination, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	feature := apifeature.New(nil, params).Filter().Sort().Search("song")
	filter, _ := feature.Query()

	total, err := uc.songRepository.Count(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	feature.Paginate(total)

	filter, opts := feature.Query()
	songs, err := uc.songRepository.Fetch(ctx, filter, opts)
	if err != nil {
		return nil, nil, err
	}
	return songs, feature.Metadata(), nil
}

// GetByID counts a play on every fetch. The increment is fired after the
// read; a lost increment is acceptable, a failed read is not.
func (uc *songUsecase) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid song id", domain.ErrValidation)
	}
	song, err := uc.songRepository.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if err := uc.songRepository.IncrementPlays(ctx, oid); err == nil {
		song.Plays++
	}
	return song, nil
}

func (uc *songUsecase) Update(ctx context.Context, id string, req *domain.UpdateSongRequest, audioPath, coverPath string) (*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid song id", domain.ErrValidation)
	}
	song, err := uc.songRepository.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		song.Title = req.Title
	}
	if req.Duration > 0 {
		song.Duration = req.Duration
	}
	if req.Genre != "" {
		song.Genre = req.Genre
	}
	if req.Lyrics != "" {
		song.Lyrics = req.Lyrics
	}
	if req.IsExplicit != "" {
		song.IsExplicit = req.IsExplicit == "true"
	}
	if len(req.FeaturedArtists) > 0 {
		featured, err := parseObjectIDs(req.FeaturedArtists)
		if err != nil {
			return nil, err
		}
		song.FeaturedArtists = featured
	}
	if req.AlbumID != "" {
		albumID, err := primitive.ObjectIDFromHex(req.AlbumID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid album id", domain.ErrValidation)
		}
		if _, err := uc.albumRepository.GetByID(ctx, albumID); err != nil {
			return nil, err
		}
		if song.Album != nil && *song.Album != albumID {
			if err := uc.albumRepository.PullSong(ctx, *song.Album, oid); err != nil {
				return nil, err
			}
		}
		if song.Album == nil || *song.Album != albumID {
			if err := uc.albumRepository.PushSong(ctx, albumID, oid); err != nil {
				return nil, err
			}
		}
		song.Album = &albumID
	}
	if audioPath != "" {
		url, err := uc.storage.Upload(ctx, audioPath, songMediaFolder)
		if err != nil {
			return nil, err
		}
		song.AudioURL = url
	}
	if coverPath != "" {
		url, err := uc.storage.Upload(ctx, coverPath, songMediaFolder)
		if err != nil {
			return nil, err
		}
		song.CoverImage = url
	}

	if err := uc.songRepository.Update(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

// Delete pulls the song out of its artist and album before removing the
// record, then releases the hosted audio and cover.
func (uc *songUsecase) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid song id", domain.ErrValidation)
	}
	song, err := uc.songRepository.GetByID(ctx, oid)
	if err != nil {
		return err
	}

	if err := uc.artistRepository.PullSong(ctx, song.Artist, oid); err != nil {
		return err
	}
	if song.Album != nil {
		if err := uc.albumRepository.PullSong(ctx, *song.Album, oid); err != nil {
			return err
		}
	}
	if err := uc.songRepository.Delete(ctx, oid); err != nil {
		return err
	}

	releaseMedia(ctx, uc.storage, song.AudioURL, song.CoverImage)
	return nil
}

func (uc *songUsecase) Top(ctx context.Context, limit int64) ([]domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if limit <= 0 {
		limit = defaultChartLimit
	}
	key := fmt.Sprintf("%s:%d", topSongsCacheKey, limit)

	var songs []domain.Song
	if uc.listCache.Get(ctx, key, &songs) {
		return songs, nil
	}
	songs, err := uc.songRepository.Top(ctx, limit)
	if err != nil {
		return nil, err
	}
	uc.listCache.Set(ctx, key, songs, hotListCacheDuration)
	return songs, nil
}

func (uc *songUsecase) Newest(ctx context.Context, limit int64) ([]domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if limit <= 0 {
		limit = defaultChartLimit
	}
	key := fmt.Sprintf("%s:%d", newSongsCacheKey, limit)

	var songs []domain.Song
	if uc.listCache.Get(ctx, key, &songs) {
		return songs, nil
	}
	songs, err := uc.songRepository.Newest(ctx, limit)
	if err != nil {
		return nil, err
	}
	uc.listCache.Set(ctx, key, songs, hotListCacheDuration)
	return songs, nil
}

func parseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		oid, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid id %q", domain.ErrValidation, h)
		}
		ids = append(ids, oid)
	}
	return ids, nil
}
