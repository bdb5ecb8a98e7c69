package domain

const (
	CollectionArtist = "artists"
)
const (
	CollectionAlbum = "albums"
)
const (
	CollectionSong = "songs"
)
const (
	CollectionPlaylist = "playlists"
)
const (
	CollectionUser = "users"
)
