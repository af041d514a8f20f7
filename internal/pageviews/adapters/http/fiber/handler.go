package fiber

import (
	"context"
	"errors"
	"net/http"

	"page-view-analytics/internal/pageviews/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type RecordPageViewUseCase interface {
	RecordSingle(ctx context.Context, page, timestamp string) error
	RecordBatch(ctx context.Context, data map[string]map[string]int64) error
}

type PageViewHandler struct {
	recordUC RecordPageViewUseCase
}

func NewPageViewHandler(recordUC RecordPageViewUseCase) *PageViewHandler {
	return &PageViewHandler{recordUC: recordUC}
}

// RecordSingle godoc
// @Summary Record a single page view
// @Description Publishes one page view event to its partition queue
// @Tags PageViews
// @Accept json
// @Produce json
// @Param request body SinglePageViewRequest true "Page view payload"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /page-views/single [post]
func (h *PageViewHandler) RecordSingle(c *fiber.Ctx) error {
	var req SinglePageViewRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if err := h.recordUC.RecordSingle(c.UserContext(), req.Page, req.Timestamp); err != nil {
		return writeRecordError(c, err)
	}

	return c.Status(http.StatusOK).JSON(SuccessResponse{Success: true})
}

// RecordMulti godoc
// @Summary Record multiple page views
// @Description Publishes one event per (page, timestamp) pair; publishes run concurrently
// @Tags PageViews
// @Accept json
// @Produce json
// @Param request body MultiPageViewRequest true "Page -> timestamp -> views"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /page-views/multi [post]
func (h *PageViewHandler) RecordMulti(c *fiber.Ctx) error {
	var req MultiPageViewRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "page_views_required",
		})
	}

	if err := h.recordUC.RecordBatch(c.UserContext(), req); err != nil {
		return writeRecordError(c, err)
	}

	return c.Status(http.StatusOK).JSON(SuccessResponse{Success: true})
}

func writeRecordError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidPage),
		errors.Is(err, usecase.ErrInvalidTimestamp),
		errors.Is(err, usecase.ErrInvalidViews):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_page_view",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
