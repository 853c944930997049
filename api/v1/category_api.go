package v1

import (
	"net/http"

	"bloghub/api/v1/request"
	"bloghub/middleware"
	"bloghub/service"

	"github.com/gin-gonic/gin"
)

// CategoryAPI 聚合分类相关的 HTTP Handler。
type CategoryAPI struct {
	categories *service.CategoryService
}

// NewCategoryAPI wires the category service into the HTTP handlers.
func NewCategoryAPI(categories *service.CategoryService) *CategoryAPI {
	return &CategoryAPI{categories: categories}
}

// Create stores a new category. Admin only (enforced by the route).
func (a *CategoryAPI) Create(c *gin.Context) {
	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := a.categories.Create(c.GetUint64(middleware.CtxUserID), req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// List returns all categories. Public.
func (a *CategoryAPI) List(c *gin.Context) {
	categories, err := a.categories.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Delete removes one category. Admin only.
func (a *CategoryAPI) Delete(c *gin.Context) {
	category, err := a.categories.Delete(middleware.PathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category has been deleted successfully", "category_id": category.ID})
}
