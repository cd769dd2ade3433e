package dto

import "builder/response"

// PaginatedResponse là struct chung cho các response có phân trang
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// SearchFilters lưu bộ lọc tìm kiếm gần nhất của một session
type SearchFilters struct {
	Keyword    string `json:"keyword,omitempty"`
	CategoryID *uint  `json:"categoryId,omitempty"`
	MaxPrice   *int   `json:"maxPrice,omitempty"`
	MinPrice   *int   `json:"minPrice,omitempty"`
	Status     *int   `json:"status,omitempty"`
}
