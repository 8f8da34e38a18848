package models

import (
	"fmt"
	"time"
)

type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Pagination describes one page of a listing
type Pagination struct {
	Page     int
	PageSize int
	Total    int64
}

// NewPagination creates a pagination descriptor for a listing page
func NewPagination(page, pageSize int, total int64) Pagination {
	return Pagination{Page: page, PageSize: pageSize, Total: total}
}

func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

func (p Pagination) HasNext() bool {
	return int64(p.Page)*int64(p.PageSize) < p.Total
}

// PrevURL returns the link to the previous page, or "" on the first page
func (p Pagination) PrevURL(path string) string {
	if !p.HasPrev() {
		return ""
	}
	return fmt.Sprintf("%s?page=%d", path, p.Page-1)
}

// NextURL returns the link to the next page, or "" on the last page
func (p Pagination) NextURL(path string) string {
	if !p.HasNext() {
		return ""
	}
	return fmt.Sprintf("%s?page=%d", path, p.Page+1)
}
