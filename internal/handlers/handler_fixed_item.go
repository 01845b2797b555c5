package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fincontrol/fincontrol_app/internal/apperrors"
	portssvc "github.com/fincontrol/fincontrol_app/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_app/internal/dto"
	"github.com/fincontrol/fincontrol_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fixedItemHandler handles HTTP requests related to fixed items and their
// monthly variations, which live as a nested resource under the item.
type fixedItemHandler struct {
	fixedItemService portssvc.FixedItemSvcFacade
	variationService portssvc.VariationSvcFacade
}

// newFixedItemHandler creates a new fixedItemHandler.
func newFixedItemHandler(fs portssvc.FixedItemSvcFacade, vs portssvc.VariationSvcFacade) *fixedItemHandler {
	return &fixedItemHandler{
		fixedItemService: fs,
		variationService: vs,
	}
}

// registerFixedItemRoutes registers routes related to fixed items.
func registerFixedItemRoutes(rg *gin.RouterGroup, fixedItemService portssvc.FixedItemSvcFacade, variationService portssvc.VariationSvcFacade) {
	h := newFixedItemHandler(fixedItemService, variationService)

	items := rg.Group("/fixed-items")
	{
		items.POST("", h.createFixedItem)
		items.GET("", h.listFixedItems)
		items.GET("/:fixedItemID", h.getFixedItemByID)
		items.PUT("/:fixedItemID", h.updateFixedItem)
		items.DELETE("/:fixedItemID", h.deleteFixedItem)
		items.POST("/:fixedItemID/close", h.closeFixedItem)
		items.GET("/:fixedItemID/variations", h.listVariations)
		items.PUT("/:fixedItemID/variations", h.upsertVariation)
		items.DELETE("/:fixedItemID/variations/:variationID", h.deleteVariation)
	}
}

// createFixedItem godoc
// @Summary Create a new fixed item
// @Description Adds a recurring income or expense with a day-of-month and active period
// @Tags fixed-items
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateFixedItemRequest true "Fixed item details"
// @Success 201 {object} dto.FixedItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create fixed item"
// @Router /fixed-items [post]
func (h *fixedItemHandler) createFixedItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFixedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFixedItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.fixedItemService.CreateFixedItem(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create fixed item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create fixed item"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToFixedItemResponse(item))
}

// listFixedItems godoc
// @Summary List fixed items
// @Tags fixed-items
// @Produce  json
// @Param   kind query string false "Filter by kind (INCOME or EXPENSE)"
// @Success 200 {array} dto.FixedItemResponse
// @Failure 400 {object} map[string]string "Invalid kind"
// @Failure 500 {object} map[string]string "Failed to list fixed items"
// @Router /fixed-items [get]
func (h *fixedItemHandler) listFixedItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind, ok := kindFilterFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be INCOME or EXPENSE"})
		return
	}

	items, err := h.fixedItemService.ListFixedItems(c.Request.Context(), kind)
	if err != nil {
		logger.Error("Failed to list fixed items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list fixed items"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListFixedItemResponse(items))
}

// getFixedItemByID godoc
// @Summary Get a fixed item by ID
// @Tags fixed-items
// @Produce  json
// @Param   fixedItemID path string true "Fixed item ID"
// @Success 200 {object} dto.FixedItemResponse
// @Failure 404 {object} map[string]string "Fixed item not found"
// @Failure 500 {object} map[string]string "Failed to get fixed item"
// @Router /fixed-items/{fixedItemID} [get]
func (h *fixedItemHandler) getFixedItemByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fixedItemID := c.Param("fixedItemID")

	item, err := h.fixedItemService.GetFixedItemByID(c.Request.Context(), fixedItemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fixed item not found"})
		} else {
			logger.Error("Failed to get fixed item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get fixed item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFixedItemResponse(item))
}

// updateFixedItem godoc
// @Summary Update a fixed item
// @Tags fixed-items
// @Accept  json
// @Produce  json
// @Param   fixedItemID path string true "Fixed item ID"
// @Param   item body dto.UpdateFixedItemRequest true "Fields to update"
// @Success 200 {object} dto.FixedItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Fixed item not found"
// @Failure 500 {object} map[string]string "Failed to update fixed item"
// @Router /fixed-items/{fixedItemID} [put]
func (h *fixedItemHandler) updateFixedItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fixedItemID := c.Param("fixedItemID")

	var req dto.UpdateFixedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateFixedItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.fixedItemService.UpdateFixedItem(c.Request.Context(), fixedItemID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fixed item not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update fixed item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update fixed item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFixedItemResponse(item))
}

// closeFixedItem godoc
// @Summary Close a fixed item
// @Description Soft-closes the item by setting its end date to today, preserving past occurrences
// @Tags fixed-items
// @Produce  json
// @Param   fixedItemID path string true "Fixed item ID"
// @Success 200 {object} dto.FixedItemResponse
// @Failure 400 {object} map[string]string "Item cannot be closed"
// @Failure 404 {object} map[string]string "Fixed item not found"
// @Failure 500 {object} map[string]string "Failed to close fixed item"
// @Router /fixed-items/{fixedItemID}/close [post]
func (h *fixedItemHandler) closeFixedItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fixedItemID := c.Param("fixedItemID")

	item, err := h.fixedItemService.CloseFixedItem(c.Request.Context(), fixedItemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fixed item not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to close fixed item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close fixed item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFixedItemResponse(item))
}

// deleteFixedItem godoc
// @Summary Delete a fixed item
// @Description Removes the item and its variations; prefer closing to keep history
// @Tags fixed-items
// @Produce  json
// @Param   fixedItemID path string true "Fixed item ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Fixed item not found"
// @Failure 500 {object} map[string]string "Failed to delete fixed item"
// @Router /fixed-items/{fixedItemID} [delete]
func (h *fixedItemHandler) deleteFixedItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fixedItemID := c.Param("fixedItemID")

	if err := h.fixedItemService.DeleteFixedItem(c.Request.Context(), fixedItemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fixed item not found"})
		} else {
			logger.Error("Failed to delete fixed item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete fixed item"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// listVariations godoc
// @Summary List the monthly variations of a fixed item
// @Tags fixed-items
// @Produce  json
// @Param   fixedItemID path string true "Fixed item ID"
// @Param   year query int false "Restrict to one year"
// @Success 200 {array} dto.VariationResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 500 {object} map[string]string "Failed to list variations"
// @Router /fixed-items/{fixedItemID}/variations [get]
func (h *fixedItemHandler) listVariations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fixedItemID := c.Param("fixedItemID")

	year := 0
	if raw, present := c.GetQuery("year"); present {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
			return
		}
		year = parsed
	}

	variations, err := h.variationService.ListVariations(c.Request.Context(), &fixedItemID)
	if err != nil {
		logger.Error("Failed to list variations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list variations"})
		return
	}

	if year != 0 {
		filtered := variations[:0]
		for _, v := range variations {
			if v.Year == year {
				filtered = append(filtered, v)
			}
		}
		variations = filtered
	}

	c.JSON(http.StatusOK, dto.ToListVariationResponse(variations))
}

// upsertVariation godoc
// @Summary Set or clear a month's amount override
// @Description Replaces any existing override for the (item, kind, year, month) tuple; an amount equal to the item's default removes the override
// @Tags fixed-items
// @Accept  json
// @Produce  json
// @Param   fixedItemID path string true "Fixed item ID"
// @Param   variation body dto.UpsertVariationRequest true "Override details"
// @Success 200 {object} dto.UpsertVariationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Fixed item not found"
// @Failure 500 {object} map[string]string "Failed to upsert variation"
// @Router /fixed-items/{fixedItemID}/variations [put]
func (h *fixedItemHandler) upsertVariation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fixedItemID := c.Param("fixedItemID")

	var req dto.UpsertVariationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertVariation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	variation, stored, err := h.variationService.UpsertVariation(c.Request.Context(), fixedItemID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fixed item not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to upsert variation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upsert variation"})
		}
		return
	}

	res := dto.UpsertVariationResponse{Stored: stored}
	if variation != nil {
		v := dto.ToVariationResponse(variation)
		res.Variation = &v
	}
	c.JSON(http.StatusOK, res)
}

// deleteVariation godoc
// @Summary Delete a monthly variation
// @Description Removes the override; the month falls back to the item's default amount
// @Tags fixed-items
// @Produce  json
// @Param   variationID path string true "Variation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Variation not found"
// @Failure 500 {object} map[string]string "Failed to delete variation"
// @Router /fixed-items/{fixedItemID}/variations/{variationID} [delete]
func (h *fixedItemHandler) deleteVariation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	variationID := c.Param("variationID")

	if err := h.variationService.DeleteVariation(c.Request.Context(), variationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Variation not found"})
		} else {
			logger.Error("Failed to delete variation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete variation"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
