package repository

import (
	"math"
	"strings"

	"gorm.io/gorm"
)

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	MaxPage         = math.MaxInt32
)

// ListParams are the query parameters shared by list endpoints
type ListParams struct {
	Page     int
	PageSize int
	Search   string
	Status   string
}

// Normalize applies defaults and clamps Page to MaxPage and PageSize to maxPageSize
func (p ListParams) Normalize(maxPageSize int) ListParams {
	if maxPageSize <= 0 {
		maxPageSize = MaxPageSize
	}
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p
}

// Offset is the number of rows skipped before the page
func (p ListParams) Offset() int64 {
	return int64(p.Page-1) * int64(p.PageSize)
}

// Page is one page of results plus totals
type Page[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// TotalPages computes ceil(total/pageSize)
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// paginate counts query and loads the requested page in the given order.
// Scopes apply to the page load only.
func paginate[T any](query *gorm.DB, params ListParams, order string, scopes ...func(*gorm.DB) *gorm.DB) (*Page[T], error) {
	query = query.Session(&gorm.Session{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	items := make([]T, 0, params.PageSize)
	// pages past the end skip the load
	if offset := params.Offset(); offset < total {
		if err := query.Scopes(scopes...).Order(order).Offset(int(offset)).Limit(params.PageSize).Find(&items).Error; err != nil {
			return nil, err
		}
	}
	return &Page[T]{
		Data:       items,
		Page:       params.Page,
		PageSize:   params.PageSize,
		Total:      total,
		TotalPages: TotalPages(total, params.PageSize),
	}, nil
}

// likeEscape is the LIKE escape character, quoted the same on every supported driver
const likeEscape = "!"

var likeReplacer = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// likePattern builds a case-insensitive substring pattern that matches % and _ literally
func likePattern(search string) string {
	return "%" + likeReplacer.Replace(toLower(search)) + "%"
}

// searchClause matches one pattern against the lowercased columns, e.g.
// (LOWER(name) LIKE ? ESCAPE '!' OR LOWER(location) LIKE ? ESCAPE '!')
func searchClause(columns ...string) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = "LOWER(" + col + ") LIKE ? ESCAPE '" + likeEscape + "'"
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}
