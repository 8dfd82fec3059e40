package domain

// Pagination is the metadata attached to every paginated list response.
// Total comes back from the store; the remaining fields are computed per
// request and never persisted.
type Pagination struct {
	Total     int `bson:"total" json:"total"`
	TotalPage int `bson:"-" json:"totalPage"`
	Page      int `bson:"-" json:"page"`
	Limit     int `bson:"-" json:"limit"`
}

// Page is one window of a filtered, sorted result set.
type Page[T any] struct {
	Collection []T        `bson:"collection" json:"collection"`
	Pagination Pagination `bson:"pagination" json:"pagination"`
}

// Finalize fills in the derived pagination fields for a 0-based offset.
// TotalPage is ceil(Total/limit); Page is reported 1-based.
func (p *Page[T]) Finalize(offset, limit int) {
	p.Pagination.TotalPage = (p.Pagination.Total + limit - 1) / limit
	p.Pagination.Page = offset + 1
	p.Pagination.Limit = limit
	if p.Collection == nil {
		p.Collection = []T{}
	}
}
