package apifeature

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFilterExcludesReservedParams(t *testing.T) {
	f := New(nil, map[string]string{
		"page":   "2",
		"limit":  "10",
		"fields": "title",
		"sort":   "-plays",
		"search": "dark",
		"artist": "662f1b2c9d1e8a0012345678",
	}).Filter()

	filter, _ := f.Query()
	assert.Equal(t, bson.M{"artist": "662f1b2c9d1e8a0012345678"}, filter)
}

func TestFilterGenreBecomesSetMembership(t *testing.T) {
	f := New(nil, map[string]string{"genre": "rock,pop"}).Filter()
	filter, _ := f.Query()
	assert.Equal(t, bson.M{"genre": bson.M{"$in": []string{"rock", "pop"}}}, filter)

	f = New(nil, map[string]string{"genres": "jazz"}).Filter()
	filter, _ = f.Query()
	assert.Equal(t, bson.M{"genres": bson.M{"$in": []string{"jazz"}}}, filter)
}

func TestFilterCommaValueBecomesSetMembership(t *testing.T) {
	f := New(nil, map[string]string{"year": "1994,1995"}).Filter()
	filter, _ := f.Query()
	assert.Equal(t, bson.M{"year": bson.M{"$in": []string{"1994", "1995"}}}, filter)
}

func TestFilterKeepsBaseConstraints(t *testing.T) {
	f := New(bson.M{"is_public": true}, map[string]string{"genre": "rock"}).Filter()
	filter, _ := f.Query()
	assert.Equal(t, true, filter["is_public"])
	assert.Equal(t, bson.M{"$in": []string{"rock"}}, filter["genre"])
}

func TestSortParameterAppliedVerbatim(t *testing.T) {
	f := New(nil, map[string]string{"sort": "-plays,title"}).Sort()
	_, opts := f.Query()
	require.NotNil(t, opts.Sort)
	assert.Equal(t, bson.D{{Key: "plays", Value: -1}, {Key: "title", Value: 1}}, opts.Sort)
}

func TestSortDefaults(t *testing.T) {
	f := New(nil, map[string]string{}).Sort()
	_, opts := f.Query()
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, opts.Sort)

	f = New(nil, map[string]string{}).Sort("-release_date")
	_, opts = f.Query()
	assert.Equal(t, bson.D{{Key: "release_date", Value: -1}}, opts.Sort)
}

func TestSearchBuildsCaseInsensitiveOr(t *testing.T) {
	f := New(nil, map[string]string{"search": "pink"}).Search("artist")
	filter, _ := f.Query()

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"name": bson.M{"$regex": "pink", "$options": "i"}}, or[0])
	assert.Equal(t, bson.M{"bio": bson.M{"$regex": "pink", "$options": "i"}}, or[1])
}

func TestSearchAbsentOrEmptyLeavesQueryUnchanged(t *testing.T) {
	f := New(nil, map[string]string{}).Search("song")
	filter, _ := f.Query()
	assert.Empty(t, filter)

	f = New(nil, map[string]string{"search": ""}).Search("song")
	filter, _ = f.Query()
	assert.Empty(t, filter)
}

func TestSearchUnknownKindLeavesQueryUnchanged(t *testing.T) {
	f := New(nil, map[string]string{"search": "x"}).Search("genre-cloud")
	filter, _ := f.Query()
	assert.Empty(t, filter)
}

func TestPaginateFirstPage(t *testing.T) {
	f := New(nil, map[string]string{"page": "1", "limit": "40"}).Paginate(95)
	meta := f.Metadata()
	require.NotNil(t, meta)

	assert.EqualValues(t, 1, meta.CurrentPage)
	assert.EqualValues(t, 40, meta.Limit)
	assert.EqualValues(t, 3, meta.TotalPages)
	assert.EqualValues(t, 2, meta.Next)
	assert.Zero(t, meta.Prev)

	_, opts := f.Query()
	assert.EqualValues(t, 0, *opts.Skip)
	assert.EqualValues(t, 40, *opts.Limit)
}

func TestPaginateLastPage(t *testing.T) {
	f := New(nil, map[string]string{"page": "3", "limit": "40"}).Paginate(95)
	meta := f.Metadata()

	assert.EqualValues(t, 3, meta.TotalPages)
	assert.Zero(t, meta.Next)
	assert.EqualValues(t, 2, meta.Prev)

	_, opts := f.Query()
	assert.EqualValues(t, 80, *opts.Skip)
}

func TestPaginateCoercesBadInput(t *testing.T) {
	for _, params := range []map[string]string{
		{"page": "abc", "limit": "xyz"},
		{"page": "-3", "limit": "0"},
		{},
	} {
		meta := New(nil, params).Paginate(10).Metadata()
		assert.EqualValues(t, DefaultPage, meta.CurrentPage)
		assert.EqualValues(t, DefaultLimit, meta.Limit)
	}
}

func TestFullPipeline(t *testing.T) {
	params := map[string]string{
		"genre":  "rock",
		"search": "comfort",
		"sort":   "-plays",
		"page":   "2",
		"limit":  "5",
	}
	f := New(nil, params).Filter().Sort().Search("song").Paginate(12)

	filter, opts := f.Query()
	assert.Equal(t, bson.M{"$in": []string{"rock"}}, filter["genre"])
	assert.Contains(t, filter, "$or")
	assert.Equal(t, bson.D{{Key: "plays", Value: -1}}, opts.Sort)
	assert.EqualValues(t, 5, *opts.Skip)

	meta := f.Metadata()
	assert.EqualValues(t, 3, meta.TotalPages)
	assert.EqualValues(t, 3, meta.Next)
	assert.EqualValues(t, 1, meta.Prev)
}

func TestFromQueryTakesFirstValue(t *testing.T) {
	values := url.Values{"genre": {"rock", "pop"}, "page": {"2"}}
	params := FromQuery(values)
	assert.Equal(t, map[string]string{"genre": "rock", "page": "2"}, params)
}
