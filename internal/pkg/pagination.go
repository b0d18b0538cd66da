package pkg

import (
	"strconv"

	"gorm.io/gorm"
)

type PaginationParams struct {
	Page  int
	Limit int
}

func (p *PaginationParams) Offset() int {
	if p == nil {
		return 0
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return (p.Page - 1) * p.Limit
}

func (p *PaginationParams) Normalize() {
	if p == nil {
		return
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// ParsePagination returns nil when neither page nor limit is given, which
// callers treat as "return everything".
func ParsePagination(page, limit string) *PaginationParams {
	if page == "" && limit == "" {
		return nil
	}
	p := &PaginationParams{}
	if n, err := strconv.Atoi(page); err == nil {
		p.Page = n
	}
	if n, err := strconv.Atoi(limit); err == nil {
		p.Limit = n
	}
	p.Normalize()
	return p
}

// Paginate counts the filtered query, then fetches the requested page (or
// every row when pagination is nil) and converts each row.
func Paginate[T any, D any](
	query *gorm.DB,
	pagination *PaginationParams,
	orderBy string,
	converter func(*D) (*T, error),
) ([]*T, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := query.Order(orderBy)
	if pagination != nil {
		pagination.Normalize()
		q = q.Offset(pagination.Offset()).Limit(pagination.Limit)
	}

	var rows []D
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*T, 0, len(rows))
	for i := range rows {
		item, err := converter(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, item)
	}

	return out, total, nil
}
