package domain

// Pagination is the metadata block returned next to every paginated list.
// Next and Prev are omitted when there is no further page in that direction.
type Pagination struct {
	CurrentPage int64 `json:"currentPage"`
	Limit       int64 `json:"limit"`
	TotalPages  int64 `json:"totalPages"`
	Next        int64 `json:"next,omitempty"`
	Prev        int64 `json:"prev,omitempty"`
}
