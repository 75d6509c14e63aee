package domain

const (
	DefaultPage    = 1
	DefaultPerPage = 10

	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListQuery 统一分页/排序入参
type ListQuery struct {
	Page      int
	PerPage   int
	SortBy    string
	SortValue string
}

// Normalize page/perPage 兜底到默认值
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	if q.SortValue != SortDesc {
		q.SortValue = SortAsc
	}
	return q
}

func (q ListQuery) Offset() int { return (q.Page - 1) * q.PerPage }

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int64 `json:"totalPages"`
}

// NewPagination totalPages = ceil(totalItems/perPage)
func NewPagination(q ListQuery, totalItems int64) Pagination {
	perPage := int64(q.PerPage)
	totalPages := (totalItems + perPage - 1) / perPage
	return Pagination{
		Page:       q.Page,
		PerPage:    q.PerPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

type ListResult[T any] struct {
	Entities   []T        `json:"entities"`
	Pagination Pagination `json:"pagination"`
}
