// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/domain/entity"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

// CategoryController serves the fixed category catalog. The catalog requires
// no authentication; it is the same for every user.
type CategoryController struct {
	catalog *entity.Catalog
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(catalog *entity.Catalog) *CategoryController {
	return &CategoryController{catalog: catalog}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(c.catalog.All()))
}
