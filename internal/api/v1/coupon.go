package v1

import (
	"net/http"

	"github.com/Kal1-linux/CouponCo/internal/api/dto"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/logger"
	"github.com/Kal1-linux/CouponCo/internal/service"
	"github.com/Kal1-linux/CouponCo/internal/types"
	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponService service.CouponService
	logger        *logger.Logger
}

func NewCouponHandler(couponService service.CouponService, logger *logger.Logger) *CouponHandler {
	return &CouponHandler{
		couponService: couponService,
		logger:        logger,
	}
}

// @Summary Create a new coupon
// @Description Creates a coupon under a store and bumps the store's stock
// @Tags Coupons
// @Accept json
// @Produce json
// @Param id path string true "Store ID"
// @Param coupon body dto.CreateCouponRequest true "Coupon request"
// @Success 201 {object} dto.CouponResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /admin/stores/{id}/coupons [post]
// @Security BearerAuth
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var req dto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	// The owning store comes from the path
	req.StoreID = c.Param("id")

	response, err := h.couponService.AddCoupon(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary Get a coupon by ID
// @Description Retrieves a coupon by ID
// @Tags Coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} dto.CouponResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /coupons/{id} [get]
func (h *CouponHandler) GetCoupon(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("coupon ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.couponService.GetCoupon(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List coupons
// @Description Lists coupons, optionally filtered by store, kind or category
// @Tags Coupons
// @Produce json
// @Success 200 {object} dto.ListCouponsResponse
// @Router /coupons [get]
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	var filter types.CouponFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.couponService.ListCoupons(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List a store's coupons
// @Description Lists the coupons belonging to a store
// @Tags Coupons
// @Produce json
// @Param id path string true "Store ID"
// @Success 200 {object} dto.ListCouponsResponse
// @Router /stores/{id}/coupons [get]
func (h *CouponHandler) ListStoreCoupons(c *gin.Context) {
	var filter types.CouponFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}
	filter.StoreID = c.Param("id")

	response, err := h.couponService.ListCoupons(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Delete a coupon
// @Description Deletes a coupon and decrements the owning store's stock
// @Tags Coupons
// @Param id path string true "Coupon ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /admin/coupons/{id} [delete]
// @Security BearerAuth
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("coupon ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.couponService.RemoveCoupon(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Redeem a coupon
// @Description Claims the coupon for the authenticated user
// @Tags Coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 201 {object} dto.RedeemCouponResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 410 {object} ierr.ErrorResponse
// @Router /coupons/{id}/redeem [post]
// @Security BearerAuth
func (h *CouponHandler) RedeemCoupon(c *gin.Context) {
	id := c.Param("id")
	userID := types.GetUserID(c.Request.Context())

	response, err := h.couponService.Redeem(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary Check a redemption
// @Description Reports whether the authenticated user has redeemed the coupon
// @Tags Coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} map[string]bool
// @Router /coupons/{id}/redeemed [get]
// @Security BearerAuth
func (h *CouponHandler) HasRedeemed(c *gin.Context) {
	id := c.Param("id")
	userID := types.GetUserID(c.Request.Context())

	redeemed, err := h.couponService.HasRedeemed(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"redeemed": redeemed})
}

// @Summary List my redemptions
// @Description Lists the authenticated user's redeemed coupons
// @Tags Coupons
// @Produce json
// @Success 200 {object} dto.ListRedemptionsResponse
// @Router /redemptions [get]
// @Security BearerAuth
func (h *CouponHandler) ListRedemptions(c *gin.Context) {
	userID := types.GetUserID(c.Request.Context())

	response, err := h.couponService.ListRedemptions(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
