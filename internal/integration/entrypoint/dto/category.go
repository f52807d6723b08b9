// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CategoryResponse represents a single catalog category in API responses.
type CategoryResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Classification string `json:"classification"`
	Color          string `json:"color"`
}

// CategoryListResponse represents the response for listing catalog categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category to a CategoryResponse DTO.
func ToCategoryResponse(c entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:             c.ID,
		Name:           c.Name,
		Classification: string(c.Classification),
		Color:          c.Color,
	}
}

// ToCategoryListResponse converts catalog categories to a CategoryListResponse.
func ToCategoryListResponse(categories []entity.Category) CategoryListResponse {
	items := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = ToCategoryResponse(c)
	}
	return CategoryListResponse{Categories: items}
}
