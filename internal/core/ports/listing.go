package ports

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListParams carries sanitised pagination and filter values for list
// endpoints. Construct with NewListParams so page and limit are always
// positive.
type ListParams struct {
	Page     int64
	Limit    int64
	Search   string
	Category string
	Tag      string
}

// NewListParams clamps page and limit to positive values, falling back to
// the defaults.
func NewListParams(page, limit int64) ListParams {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return ListParams{Page: page, Limit: limit}
}

// Skip returns the number of documents to discard for the current page.
func (p ListParams) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(total/limit). A non-positive limit yields 0 rather
// than dividing by zero.
func TotalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
