package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fincontrol/fincontrol_app/internal/apperrors"
	portssvc "github.com/fincontrol/fincontrol_app/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_app/internal/core/schedule"
	"github.com/fincontrol/fincontrol_app/internal/dto"
	"github.com/fincontrol/fincontrol_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// defaultHistoryMonths is the balance-history window when ?months= is absent.
const defaultHistoryMonths = 12

// reportingHandler handles the read-only report endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/day", h.dayEvents)
		reports.GET("/week", h.weekEvents)
		reports.GET("/month", h.monthSummary)
		reports.GET("/balance-history", h.balanceHistory)
	}
}

// yearMonthFromQuery parses the required ?year= and ?month= parameters.
func yearMonthFromQuery(c *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1970 || year > 9999 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer within 1970..9999"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer within 1..12"})
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// dayEvents godoc
// @Summary Events on a single day
// @Description Resolves fixed occurrences (with any variation applied) and transactions for one calendar day
// @Tags reports
// @Produce  json
// @Param   date query string true "Calendar day (YYYY-MM-DD)"
// @Success 200 {object} dto.DayEventsResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to compute day events"
// @Router /reports/day [get]
func (h *reportingHandler) dayEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Query("date")

	events, err := h.reportingService.DayEvents(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute day events", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute day events"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.DayEventsResponse{
		Date:   date,
		Events: dto.ToListEventResponse(events),
	})
}

// weekEvents godoc
// @Summary Events in the week of a day
// @Description Resolves all events in the Sunday-to-Saturday week containing the given day, with range totals
// @Tags reports
// @Produce  json
// @Param   date query string true "Any day of the week (YYYY-MM-DD)"
// @Success 200 {object} dto.WeekEventsResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to compute week events"
// @Router /reports/week [get]
func (h *reportingHandler) weekEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Query("date")

	start, end, events, totals, err := h.reportingService.WeekEvents(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute week events", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute week events"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.WeekEventsResponse{
		StartDate: schedule.FormatLocalDate(start),
		EndDate:   schedule.FormatLocalDate(end),
		Events:    dto.ToListEventResponse(events),
		Totals:    dto.ToRangeTotalsResponse(totals),
	})
}

// monthSummary godoc
// @Summary Month totals
// @Description Totals for one month, split into variable and fixed income/expense
// @Tags reports
// @Produce  json
// @Param   year query int true "Year"
// @Param   month query int true "Month (1-12)"
// @Success 200 {object} dto.MonthSummaryResponse
// @Failure 400 {object} map[string]string "Invalid year or month"
// @Failure 500 {object} map[string]string "Failed to compute month summary"
// @Router /reports/month [get]
func (h *reportingHandler) monthSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := yearMonthFromQuery(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.MonthSummary(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute month summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute month summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthSummaryResponse(summary))
}

// balanceHistory godoc
// @Summary Trailing balance history
// @Description Net balance per month for the N months ending at the given month, oldest first
// @Tags reports
// @Produce  json
// @Param   year query int true "Year of the final month"
// @Param   month query int true "Final month (1-12)"
// @Param   months query int false "Window length in months (default 12)"
// @Success 200 {object} dto.BalanceHistoryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute balance history"
// @Router /reports/balance-history [get]
func (h *reportingHandler) balanceHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := yearMonthFromQuery(c)
	if !ok {
		return
	}

	months := defaultHistoryMonths
	if raw, present := c.GetQuery("months"); present {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be a positive integer"})
			return
		}
		months = parsed
	}

	series, err := h.reportingService.BalanceHistory(c.Request.Context(), year, month, months)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute balance history", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance history"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceHistoryResponse(series))
}
