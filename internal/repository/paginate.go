package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// DefaultPerPage 列表默认每页条数
const DefaultPerPage = 10

// PageMeta 分页信息
type PageMeta struct {
	Total       int64 `json:"total"`
	LastPage    int   `json:"lastPage"`
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
	Prev        *int  `json:"prev"`
	Next        *int  `json:"next"`
}

// Page 分页结果
type Page[T any] struct {
	Data []T     `json:"data"`
	Meta PageMeta `json:"meta"`
}

// NewPageMeta 计算分页信息，page < 1 视为第 1 页
func NewPageMeta(total int64, page, perPage int) PageMeta {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	meta := PageMeta{
		Total:       total,
		LastPage:    lastPage,
		CurrentPage: page,
		PerPage:     perPage,
	}
	if page > 1 {
		prev := page - 1
		meta.Prev = &prev
	}
	if page < lastPage {
		next := page + 1
		meta.Next = &next
	}
	return meta
}

// Paginate 先 Count 再按 Offset/Limit 查询
func Paginate[T any](countQ, findQ *gorm.DB, order, defaultOrder string, page, perPage int) (*Page[T], error) {
	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("paginate count: %w", err)
	}

	meta := NewPageMeta(total, page, perPage)
	if order == "" {
		order = defaultOrder
	}

	list := make([]T, 0, meta.PerPage)
	offset := (meta.CurrentPage - 1) * meta.PerPage
	err := findQ.
		Order(order).
		Limit(meta.PerPage).
		Offset(offset).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("paginate find: %w", err)
	}

	return &Page[T]{Data: list, Meta: meta}, nil
}
