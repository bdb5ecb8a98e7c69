// Package audiometa reads embedded tags out of uploaded audio files so song
// creation can default missing request fields from the file itself.
package audiometa

import (
	"os"

	"github.com/dhowden/tag"
)

type Meta struct {
	Title  string
	Artist string
	Album  string
	Genre  string
}

// Probe is best effort: an unreadable or untagged file yields an error and
// the caller keeps whatever the request supplied.
func Probe(path string) (*Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}
	return &Meta{
		Title:  m.Title(),
		Artist: m.Artist(),
		Album:  m.Album(),
		Genre:  m.Genre(),
	}, nil
}
