package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"page-view-analytics/internal/report/core/domain"
	"page-view-analytics/internal/report/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetReportUseCase interface {
	Execute(ctx context.Context, in usecase.GetReportInput) (*domain.Report, error)
}

type ReportHandler struct {
	uc GetReportUseCase
}

func NewReportHandler(uc GetReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GetReport godoc
// @Summary 24-hour page view report
// @Description Returns one point per hour for the 24 hours ending at the last fully elapsed hour, zero-filled
// @Tags Report
// @Accept json
// @Produce json
// @Param page query string true "Page identifier"
// @Param now query string false "Reference time (ISO-8601), defaults to current time"
// @Param order query string false "asc | desc"
// @Param take query int false "Truncate to the first N points after ordering"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /report [get]
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	page := c.Query("page", "")
	if page == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_report_query",
			Message: "page is required",
		})
	}

	in := usecase.GetReportInput{
		Page:  page,
		Order: c.Query("order", "asc"),
	}

	if nowStr := c.Query("now", ""); nowStr != "" {
		now, err := parseReferenceTime(nowStr)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_report_query",
				Message: "invalid 'now' parameter",
			})
		}
		in.Now = &now
	}

	if takeStr := c.Query("take", ""); takeStr != "" {
		take, err := strconv.Atoi(takeStr)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_report_query",
				Message: "invalid 'take' parameter",
			})
		}
		in.Take = &take
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidPage),
			errors.Is(err, usecase.ErrInvalidOrder),
			errors.Is(err, usecase.ErrInvalidTake):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_report_query",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	resp := ReportResponse{
		Page:  res.Page,
		Start: res.Start.Format(time.RFC3339),
		End:   res.End.Format(time.RFC3339),
		Data:  make([]ReportPointResponse, 0, len(res.Points)),
	}
	for _, p := range res.Points {
		resp.Data = append(resp.Data, ReportPointResponse{Hour: p.Hour, Views: p.Views})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// parseReferenceTime accepts the same formats ingestion does.
func parseReferenceTime(value string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts.UTC(), nil
	}
	ts, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		return time.Time{}, err
	}
	return ts.UTC(), nil
}
