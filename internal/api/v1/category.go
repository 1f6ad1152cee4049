package v1

import (
	"net/http"

	"github.com/Kal1-linux/CouponCo/internal/api/dto"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/logger"
	"github.com/Kal1-linux/CouponCo/internal/service"
	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *logger.Logger
}

func NewCategoryHandler(categoryService service.CategoryService, logger *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// @Summary Create a category
// @Description Adds a category to the curated list
// @Tags Categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category request"
// @Success 201 {object} dto.ListCategoriesResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /admin/categories [post]
// @Security BearerAuth
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.categoryService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary List categories
// @Description Lists all categories
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.ListCategoriesResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	response, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
