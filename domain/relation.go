package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ToggleAdded   = "added"
	ToggleRemoved = "removed"
)

// Relation describes one side of a two-sided membership: the owner document
// holds a reference array, the target document holds the paired counter.
type Relation struct {
	OwnerCollection  string
	OwnerField       string
	TargetCollection string
	CounterField     string
}

// The membership relations driven through the toggle operation.
var (
	RelationLikedSongs        = Relation{CollectionUser, "liked_songs", CollectionSong, "likes"}
	RelationLikedAlbums       = Relation{CollectionUser, "liked_albums", CollectionAlbum, "likes"}
	RelationFollowedArtists   = Relation{CollectionUser, "followed_artists", CollectionArtist, "followers"}
	RelationFollowedPlaylists = Relation{CollectionUser, "followed_playlists", CollectionPlaylist, "followers"}
)

type ToggleResult struct {
	Status string `json:"status"`
}

// RelationRepository flips membership of targetID inside the owner's
// reference array and moves the target's counter in lock-step. The flip and
// the membership test are one conditional update, so concurrent toggles on
// the same owner-target pair cannot duplicate a reference or drive the
// counter below its true value.
type RelationRepository interface {
	Toggle(ctx context.Context, rel Relation, ownerID, targetID primitive.ObjectID) (*ToggleResult, error)
}
