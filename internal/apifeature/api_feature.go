// Package apifeature composes filter, sort, search and pagination clauses
// from decoded query-string parameters into a deferred MongoDB query. The
// builder never executes anything: callers receive a filter document plus
// find options and run them when ready, keeping projection and relationship
// expansion on their side.
package apifeature

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harmonia-app/harmonia/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 40
)

// Parameter names that shape the query instead of filtering it.
var reservedParams = map[string]bool{
	"page":   true,
	"limit":  true,
	"fields": true,
	"sort":   true,
	"search": true,
}

// Text fields searched per entity kind.
var searchFields = map[string][]string{
	"artist":   {"name", "bio"},
	"album":    {"title", "genre", "description"},
	"song":     {"title", "genre"},
	"playlist": {"name", "description"},
}

type Feature struct {
	params map[string]string
	filter bson.M
	sort   bson.D
	skip   int64
	limit  int64
	meta   *domain.Pagination
}

// New starts a pipeline over base constraints (may be nil) and raw request
// parameters. Stages are meant to run in order: Filter, Sort, Search,
// Paginate.
func New(base bson.M, params map[string]string) *Feature {
	filter := bson.M{}
	for k, v := range base {
		filter[k] = v
	}
	if params == nil {
		params = map[string]string{}
	}
	return &Feature{params: params, filter: filter}
}

// FromQuery flattens decoded query values to the single-value map the
// builder consumes. Repeated parameters keep their first value.
func FromQuery(values url.Values) map[string]string {
	params := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}

// Filter turns every non-reserved parameter into a constraint. Comma-joined
// values and the genre/genres keys become set-membership checks; everything
// else is a literal equality match. Unknown names pass through untouched --
// the caller is trusted, and values are plain strings so no operator
// document can ride in.
func (f *Feature) Filter() *Feature {
	for key, value := range f.params {
		if reservedParams[key] {
			continue
		}
		if key == "genre" || key == "genres" || strings.Contains(value, ",") {
			members := strings.Split(value, ",")
			f.filter[key] = bson.M{"$in": members}
			continue
		}
		f.filter[key] = value
	}
	return f
}

// Sort applies the request's sort parameter verbatim (comma-separated,
// leading '-' for descending, field order is priority order). Without one it
// falls back to defaultSort if given, else newest-first.
func (f *Feature) Sort(defaultSort ...string) *Feature {
	expr := f.params["sort"]
	if expr == "" {
		expr = "-created_at"
		if len(defaultSort) > 0 && defaultSort[0] != "" {
			expr = defaultSort[0]
		}
	}
	f.sort = parseSortExpr(expr)
	return f
}

// Search OR-combines case-insensitive substring matches over the entity
// kind's text fields. An absent or empty search parameter, or an unknown
// kind, leaves the query untouched.
func (f *Feature) Search(kind string) *Feature {
	term := f.params["search"]
	if term == "" {
		return f
	}
	fields, ok := searchFields[kind]
	if !ok {
		return f
	}
	clauses := make(bson.A, 0, len(fields))
	for _, field := range fields {
		clauses = append(clauses, bson.M{field: bson.M{"$regex": term, "$options": "i"}})
	}
	f.filter["$or"] = clauses
	return f
}

// Paginate computes skip/limit from the page and limit parameters and
// derives the metadata block from the caller-supplied total match count.
func (f *Feature) Paginate(total int64) *Feature {
	page := positiveInt(f.params["page"], DefaultPage)
	limit := positiveInt(f.params["limit"], DefaultLimit)
	skip := (page - 1) * limit

	meta := &domain.Pagination{
		CurrentPage: page,
		Limit:       limit,
		TotalPages:  int64(math.Ceil(float64(total) / float64(limit))),
	}
	if page*limit < total {
		meta.Next = page + 1
	}
	if skip > 0 {
		meta.Prev = page - 1
	}

	f.skip = skip
	f.limit = limit
	f.meta = meta
	return f
}

// Query returns the deferred query: the narrowed filter and the find options
// carrying sort and pagination. Neither has been executed.
func (f *Feature) Query() (bson.M, *options.FindOptions) {
	opts := options.Find()
	if len(f.sort) > 0 {
		opts.SetSort(f.sort)
	}
	if f.meta != nil {
		opts.SetSkip(f.skip).SetLimit(f.limit)
	}
	return f.filter, opts
}

// Metadata is nil until Paginate has run.
func (f *Feature) Metadata() *domain.Pagination {
	return f.meta
}

func parseSortExpr(expr string) bson.D {
	var sort bson.D
	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		order := 1
		if strings.HasPrefix(token, "-") {
			order = -1
			token = token[1:]
		}
		if token == "" {
			continue
		}
		sort = append(sort, bson.E{Key: token, Value: order})
	}
	return sort
}

func positiveInt(raw string, fallback int64) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
