package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fincontrol/fincontrol_app/internal/apperrors"
	portssvc "github.com/fincontrol/fincontrol_app/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_app/internal/dto"
	"github.com/fincontrol/fincontrol_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseHandler handles HTTP requests related to installment purchases.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

// newPurchaseHandler creates a new purchaseHandler.
func newPurchaseHandler(ps portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{
		purchaseService: ps,
	}
}

// registerPurchaseRoutes registers routes related to installment purchases.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:purchaseID", h.getPurchaseByID)
		purchases.DELETE("/:purchaseID", h.deletePurchase)
	}
}

// createPurchase godoc
// @Summary Create an installment purchase
// @Description Splits the total into monthly parcels whose cent amounts sum exactly to the total
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create purchase"
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	purchase, parcels, err := h.purchaseService.CreatePurchase(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create purchase in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create purchase"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase, parcels))
}

// listPurchases godoc
// @Summary List installment purchases
// @Tags purchases
// @Produce  json
// @Success 200 {array} dto.PurchaseResponse
// @Failure 500 {object} map[string]string "Failed to list purchases"
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	purchases, err := h.purchaseService.ListPurchases(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list purchases", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list purchases"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPurchaseResponse(purchases))
}

// getPurchaseByID godoc
// @Summary Get a purchase with its parcels
// @Tags purchases
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to get purchase"
// @Router /purchases/{purchaseID} [get]
func (h *purchaseHandler) getPurchaseByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	purchase, parcels, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), purchaseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		} else {
			logger.Error("Failed to get purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get purchase"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase, parcels))
}

// deletePurchase godoc
// @Summary Delete a purchase
// @Description Removes the purchase and all of its parcels
// @Tags purchases
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to delete purchase"
// @Router /purchases/{purchaseID} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), purchaseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		} else {
			logger.Error("Failed to delete purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete purchase"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
