package v1

import (
	"io"
	"net/http"

	"github.com/Kal1-linux/CouponCo/internal/api/dto"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/logger"
	"github.com/Kal1-linux/CouponCo/internal/service"
	"github.com/Kal1-linux/CouponCo/internal/types"
	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	storeService service.StoreService
	mediaService service.MediaService
	logger       *logger.Logger
}

func NewStoreHandler(storeService service.StoreService, mediaService service.MediaService, logger *logger.Logger) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
		mediaService: mediaService,
		logger:       logger,
	}
}

// @Summary Create a new store
// @Description Registers a store on the site
// @Tags Stores
// @Accept json
// @Produce json
// @Param store body dto.CreateStoreRequest true "Store request"
// @Success 201 {object} dto.StoreResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /admin/stores [post]
// @Security BearerAuth
func (h *StoreHandler) CreateStore(c *gin.Context) {
	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.storeService.CreateStore(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary Get a store by ID
// @Description Retrieves a store with its derived average rating
// @Tags Stores
// @Produce json
// @Param id path string true "Store ID"
// @Success 200 {object} dto.StoreResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /stores/{id} [get]
func (h *StoreHandler) GetStore(c *gin.Context) {
	id := c.Param("id")

	response, err := h.storeService.GetStore(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List stores
// @Description Lists stores, optionally filtered by category
// @Tags Stores
// @Produce json
// @Success 200 {object} dto.ListStoresResponse
// @Router /stores [get]
func (h *StoreHandler) ListStores(c *gin.Context) {
	var filter types.StoreFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.storeService.ListStores(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update a store
// @Description Partially updates store fields
// @Tags Stores
// @Accept json
// @Produce json
// @Param id path string true "Store ID"
// @Param store body dto.UpdateStoreRequest true "Update request"
// @Success 200 {object} dto.StoreResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /admin/stores/{id} [put]
// @Security BearerAuth
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.storeService.UpdateStore(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Replace store FAQs
// @Description Replaces the store's FAQ list
// @Tags Stores
// @Accept json
// @Param id path string true "Store ID"
// @Param faq body dto.UpdateStoreFAQRequest true "FAQ request"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /admin/stores/{id}/faqs [put]
// @Security BearerAuth
func (h *StoreHandler) UpdateStoreFAQ(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateStoreFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.storeService.UpdateStoreFAQ(c.Request.Context(), id, &req); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Rate a store
// @Description Records the authenticated user's rating of the store
// @Tags Stores
// @Accept json
// @Param id path string true "Store ID"
// @Param rating body dto.AddRatingRequest true "Rating request"
// @Success 201
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /stores/{id}/ratings [post]
// @Security BearerAuth
func (h *StoreHandler) AddRating(c *gin.Context) {
	id := c.Param("id")
	userID := types.GetUserID(c.Request.Context())

	var req dto.AddRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.storeService.AddRating(c.Request.Context(), id, userID, &req); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusCreated)
}

// @Summary Upload a store logo
// @Description Proxies the image to the configured host and returns its URL
// @Tags Stores
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Logo image"
// @Success 201 {object} map[string]string
// @Router /admin/media [post]
// @Security BearerAuth
func (h *StoreHandler) UploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please attach an image file").
			Mark(ierr.ErrValidation))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Could not read the uploaded file").
			Mark(ierr.ErrValidation))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Could not read the uploaded file").
			Mark(ierr.ErrValidation))
		return
	}

	url, err := h.mediaService.UploadLogo(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
