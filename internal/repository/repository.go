// Package repository implements typed CRUD for every fleet entity on an
// injected *gorm.DB. Each repository shares the same contract: equality
// filters AND-combined, 1-indexed pagination with a count query built
// from the same predicate as the row query, typed partial updates that
// always refresh updated_at, and hard deletes.
package repository

import (
	"math"

	"gorm.io/gorm"

	"fleetflow/internal/apperr"
)

// Page is the caller-supplied pagination request.
type Page struct {
	Number int
	Limit  int
}

// Pagination is the slice of the result set the response reports.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

func (p Page) normalized() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	return p
}

func (p Page) offset() int {
	n := p.normalized()
	return (n.Number - 1) * n.Limit
}

func paginate(total int64, p Page) Pagination {
	n := p.normalized()
	return Pagination{
		Total: total,
		Page:  n.Number,
		Limit: n.Limit,
		Pages: int(math.Ceil(float64(total) / float64(n.Limit))),
	}
}

// finishWrite turns a completed update/delete into the taxonomy: storage
// errors are classified and zero affected rows means the id had no row.
func finishWrite(res *gorm.DB) error {
	if res.Error != nil {
		return apperr.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
