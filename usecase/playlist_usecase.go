package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harmonia-app/harmonia/cache"
	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/internal/apifeature"
)

const (
	playlistMediaFolder      = "media/playlists"
	featuredPlaylistCacheKey = "playlists:featured"
)

type playlistUsecase struct {
	playlistRepository domain.PlaylistRepository
	songRepository     domain.SongRepository
	userRepository     domain.UserRepository
	storage            domain.MediaStorage
	listCache          cache.ListCache
	timeout            time.Duration
}

func NewPlaylistUsecase(
	playlistRepository domain.PlaylistRepository,
	songRepository domain.SongRepository,
	userRepository domain.UserRepository,
	storage domain.MediaStorage,
	listCache cache.ListCache,
	timeout time.Duration,
) domain.PlaylistUsecase {
	return &playlistUsecase{
		playlistRepository: playlistRepository,
		songRepository:     songRepository,
		userRepository:     userRepository,
		storage:            storage,
		listCache:          listCache,
		timeout:            timeout,
	}
}

func (uc *playlistUsecase) Create(ctx context.Context, creator primitive.ObjectID, req *domain.CreatePlaylistRequest, coverPath string) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	// Names are unique per creator, not globally.
	existing, err := uc.playlistRepository.GetByNameAndCreator(ctx, req.Name, creator)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: you already have a playlist with this name", domain.ErrConflict)
	}

	var coverURL string
	if coverPath != "" {
		if coverURL, err = uc.storage.Upload(ctx, coverPath, playlistMediaFolder); err != nil {
			return nil, err
		}
	}

	playlist := &domain.Playlist{
		Name:          req.Name,
		Description:   req.Description,
		CoverImage:    coverURL,
		Creator:       creator,
		Collaborators: []primitive.ObjectID{},
		Songs:         []primitive.ObjectID{},
		IsPublic:      req.IsPublic != "false",
	}
	if err := uc.playlistRepository.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// Fetch lists public playlists only; private ones never appear in browse
// results regardless of the caller.
func (uc *playlistUsecase) Fetch(ctx context.Context, params map[string]string) ([]domain.Playlist, *domain.Pagination, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	feature := apifeature.New(bson.M{"is_public": true}, params).
		Filter().Sort().Search("playlist")
	filter, _ := feature.Query()

	total, err := uc.playlistRepository.Count(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	feature.Paginate(total)

	filter, opts := feature.Query()
	playlists, err := uc.playlistRepository.Fetch(ctx, filter, opts)
	if err != nil {
		return nil, nil, err
	}
	return playlists, feature.Metadata(), nil
}

func (uc *playlistUsecase) GetByID(ctx context.Context, id string, caller *primitive.ObjectID) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	playlist, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !playlist.IsPublic {
		if caller == nil || (!playlist.IsCreator(*caller) && !playlist.IsCollaborator(*caller)) {
			return nil, fmt.Errorf("%w: playlist is private", domain.ErrForbidden)
		}
	}
	return playlist, nil
}

func (uc *playlistUsecase) GetMine(ctx context.Context, userID primitive.ObjectID) ([]domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.playlistRepository.GetByMember(ctx, userID)
}

func (uc *playlistUsecase) Update(ctx context.Context, id string, caller primitive.ObjectID, req *domain.UpdatePlaylistRequest, coverPath string) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	playlist, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !playlist.IsCreator(caller) && !playlist.IsCollaborator(caller) {
		return nil, fmt.Errorf("%w: not a creator or collaborator of this playlist", domain.ErrForbidden)
	}

	if req.Name != "" && req.Name != playlist.Name {
		existing, err := uc.playlistRepository.GetByNameAndCreator(ctx, req.Name, playlist.Creator)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: you already have a playlist with this name", domain.ErrConflict)
		}
		playlist.Name = req.Name
	}
	if req.Description != "" {
		playlist.Description = req.Description
	}
	if req.IsPublic != "" {
		// Visibility is the creator's call alone.
		if !playlist.IsCreator(caller) {
			return nil, fmt.Errorf("%w: only the creator can change visibility", domain.ErrForbidden)
		}
		playlist.IsPublic = req.IsPublic != "false"
	}
	if coverPath != "" {
		url, err := uc.storage.Upload(ctx, coverPath, playlistMediaFolder)
		if err != nil {
			return nil, err
		}
		playlist.CoverImage = url
	}

	if err := uc.playlistRepository.Update(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (uc *playlistUsecase) Delete(ctx context.Context, id string, caller primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	playlist, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	if !playlist.IsCreator(caller) {
		return fmt.Errorf("%w: only the creator can delete a playlist", domain.ErrForbidden)
	}

	if err := uc.playlistRepository.Delete(ctx, playlist.ID); err != nil {
		return err
	}
	releaseMedia(ctx, uc.storage, playlist.CoverImage)
	return nil
}

// AddSongs appends each resolvable song, skipping ids that do not exist and
// ids already present. An entirely unresolvable batch is not an error; the
// playlist is simply returned unchanged.
func (uc *playlistUsecase) AddSongs(ctx context.Context, id string, caller primitive.ObjectID, songIDs []string) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	playlist, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !playlist.IsCreator(caller) && !playlist.IsCollaborator(caller) {
		return nil, fmt.Errorf("%w: not a creator or collaborator of this playlist", domain.ErrForbidden)
	}

	ids, err := parseObjectIDs(songIDs)
	if err != nil {
		return nil, err
	}
	present := make(map[primitive.ObjectID]bool, len(playlist.Songs))
	for _, s := range playlist.Songs {
		present[s] = true
	}
	for _, songID := range ids {
		if present[songID] {
			continue
		}
		song, err := uc.songRepository.GetByID(ctx, songID)
		if err != nil || song == nil {
			continue
		}
		if err := uc.playlistRepository.AddSong(ctx, playlist.ID, songID); err != nil {
			return nil, err
		}
		present[songID] = true
	}
	return uc.playlistRepository.GetByID(ctx, playlist.ID)
}

func (uc *playlistUsecase) RemoveSong(ctx context.Context, id, songID string, caller primitive.ObjectID) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	playlist, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !playlist.IsCreator(caller) && !playlist.IsCollaborator(caller) {
		return nil, fmt.Errorf("%w: not a creator or collaborator of this playlist", domain.ErrForbidden)
	}

	sid, err := primitive.ObjectIDFromHex(songID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid song id", domain.ErrValidation)
	}
	found := false
	for _, s := range playlist.Songs {
		if s == sid {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: song is not in this playlist", domain.ErrValidation)
	}

	if err := uc.playlistRepository.RemoveSong(ctx, playlist.ID, sid); err != nil {
		return nil, err
	}
	return uc.playlistRepository.GetByID(ctx, playlist.ID)
}

func (uc *playlistUsecase) AddCollaborator(ctx context.Context, id string, caller primitive.ObjectID, userID string) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	playlist, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !playlist.IsCreator(caller) {
		return nil, fmt.Errorf("%w: only the creator can manage collaborators", domain.ErrForbidden)
	}

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", domain.ErrValidation)
	}
	if uid == playlist.Creator {
		return nil, fmt.Errorf("%w: the creator is already a member", domain.ErrValidation)
	}
	if _, err := uc.userRepository.GetByID(ctx, uid); err != nil {
		return nil, err
	}

	if err := uc.playlistRepository.AddCollaborator(ctx, playlist.ID, uid); err != nil {
		return nil, err
	}
	return uc.playlistRepository.GetByID(ctx, playlist.ID)
}

func (uc *playlistUsecase) RemoveCollaborator(ctx context.Context, id string, caller primitive.ObjectID, userID string) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	playlist, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !playlist.IsCreator(caller) {
		return nil, fmt.Errorf("%w: only the creator can manage collaborators", domain.ErrForbidden)
	}

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", domain.ErrValidation)
	}
	if !playlist.IsCollaborator(uid) {
		return nil, fmt.Errorf("%w: user is not a collaborator", domain.ErrValidation)
	}

	if err := uc.playlistRepository.RemoveCollaborator(ctx, playlist.ID, uid); err != nil {
		return nil, err
	}
	return uc.playlistRepository.GetByID(ctx, playlist.ID)
}

func (uc *playlistUsecase) Featured(ctx context.Context, limit int64) ([]domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if limit <= 0 {
		limit = defaultChartLimit
	}
	key := fmt.Sprintf("%s:%d", featuredPlaylistCacheKey, limit)

	var playlists []domain.Playlist
	if uc.listCache.Get(ctx, key, &playlists) {
		return playlists, nil
	}
	playlists, err := uc.playlistRepository.Featured(ctx, limit)
	if err != nil {
		return nil, err
	}
	uc.listCache.Set(ctx, key, playlists, hotListCacheDuration)
	return playlists, nil
}

func (uc *playlistUsecase) load(ctx context.Context, id string) (*domain.Playlist, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid playlist id", domain.ErrValidation)
	}
	return uc.playlistRepository.GetByID(ctx, oid)
}
