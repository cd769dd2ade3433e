package dto

import (
	"encoding/json"
	"time"
)

type ProductRequest struct {
	ID          uint            `json:"id"`
	CategoryID  *uint           `json:"categoryId"`
	Name        string          `json:"name" binding:"required"`
	Slug        string          `json:"slug"`
	Price       int             `json:"price"`
	SalePrice   *int            `json:"salePrice"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	Img         json.RawMessage `json:"img"`
	Status      int             `json:"status"`
}

type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Price       int             `json:"price"`
	SalePrice   *int            `json:"salePrice,omitempty"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	Img         json.RawMessage `json:"img"`
	Status      int             `json:"status"`
	Category    *CategoryShort  `json:"category,omitempty"`
	Rating      float64         `json:"rating"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type CategoryShort struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CategoryRequest struct {
	ID        uint   `json:"id"`
	Name      string `json:"name" binding:"required"`
	Slug      string `json:"slug"`
	SortOrder int    `json:"sortOrder"`
}

// ProductSearchResult là kết quả tìm kiếm mờ theo tên sản phẩm
type ProductSearchResult struct {
	Products    []ProductResponse `json:"products"`
	Suggestions []string          `json:"suggestions,omitempty"`
}
