package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hmrc-rates/internal/apperrors"
	portssvc "hmrc-rates/internal/core/ports/services"
	"hmrc-rates/internal/dto"
	"hmrc-rates/internal/middleware"
)

// converterHandler handles HTTP requests related to currency conversion.
type converterHandler struct {
	converterService portssvc.ConverterSvcFacade
}

// newConverterHandler creates a new converterHandler.
func newConverterHandler(cs portssvc.ConverterSvcFacade) *converterHandler {
	return &converterHandler{
		converterService: cs,
	}
}

// registerConverterRoutes registers routes related to currency conversion.
func registerConverterRoutes(rg *gin.RouterGroup, converterService portssvc.ConverterSvcFacade) {
	h := newConverterHandler(converterService)

	rg.POST("/convert", h.convert)
	rg.GET("/rates/:currency", h.getRate)
	rg.GET("/periods", h.listPeriods)
}

// convert converts a foreign-currency amount into GBP at the rate in force
// on the requested date. The body carries either the combined textual form
// in "value" ("100.00 USD") or the split form in "amount" and "currency".
func (h *converterHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		logger.Warn("Invalid conversion date", slog.String("date", req.Date))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD: " + req.Date})
		return
	}

	logger = logger.With(slog.String("date", req.Date))

	result, currency, err := h.doConvert(c, req, date)
	if err != nil {
		h.renderConversionError(c, logger, err)
		return
	}

	logger.Info("Conversion succeeded",
		slog.String("currency", currency),
		slog.String("gbp", result.GBP),
	)
	c.JSON(http.StatusOK, result)
}

// doConvert dispatches to the combined or split call form.
func (h *converterHandler) doConvert(c *gin.Context, req dto.ConvertRequest, date time.Time) (dto.ConvertResponse, string, error) {
	ctx := c.Request.Context()

	if req.Value != "" {
		result, err := h.converterService.Convert(ctx, req.Value, date)
		if err != nil {
			return dto.ConvertResponse{}, "", err
		}
		// The second token is the currency; Convert validated the shape.
		currency := strings.ToUpper(strings.Fields(req.Value)[1])
		return dto.ToConvertResponse(result, currency, date), currency, nil
	}

	if req.Amount != nil && req.Currency != "" {
		currency := strings.ToUpper(req.Currency)
		result, err := h.converterService.ConvertAmount(ctx, *req.Amount, currency, date)
		if err != nil {
			return dto.ConvertResponse{}, "", err
		}
		return dto.ToConvertResponse(result, currency, date), currency, nil
	}

	return dto.ConvertResponse{}, "", fmt.Errorf("%w: request carries neither value nor amount and currency", apperrors.ErrInvalidInputFormat)
}

// getRate returns the exchange rate in force for a currency on a date. The
// date defaults to today when the query parameter is absent.
func (h *converterHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currency := strings.ToUpper(c.Param("currency"))

	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			logger.Warn("Invalid rate lookup date", slog.String("date", raw))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD: " + raw})
			return
		}
		date = parsed
	}

	logger = logger.With(slog.String("currency", currency), slog.String("date", date.Format(time.DateOnly)))

	rate, err := h.converterService.RateInForce(c.Request.Context(), currency, date)
	if err != nil {
		h.renderConversionError(c, logger, err)
		return
	}

	logger.Info("Rate lookup succeeded")
	c.JSON(http.StatusOK, dto.RateResponse{
		Currency: currency,
		Rate:     rate,
		Date:     date.Format(time.DateOnly),
	})
}

// listPeriods lists the start dates of all loaded rate periods.
func (h *converterHandler) listPeriods(c *gin.Context) {
	starts := h.converterService.Periods(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToPeriodsResponse(starts))
}

// renderConversionError maps converter errors onto HTTP responses. Input
// shape problems are the caller's fault; unknown currencies and dates before
// the table are absences. The error text carries the offending value, so it
// goes to the client verbatim.
func (h *converterHandler) renderConversionError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInputFormat), errors.Is(err, apperrors.ErrValueParse):
		logger.Warn("Invalid conversion input", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrCurrencyNotFound), errors.Is(err, apperrors.ErrDateOutOfRange):
		logger.Warn("No rate for conversion request", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("Conversion failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert amount"})
	}
}
