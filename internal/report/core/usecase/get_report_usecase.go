package usecase

import (
	"context"
	"errors"
	"time"

	"page-view-analytics/internal/report/core/domain"
	"page-view-analytics/internal/report/core/ports"
)

var (
	ErrInvalidPage  = errors.New("page is required")
	ErrInvalidOrder = errors.New("order must be asc or desc")
	ErrInvalidTake  = errors.New("take must be positive")
)

const reportHours = 24

type GetReportInput struct {
	Page  string
	Now   *time.Time // defaults to the current time
	Order string     // "asc" (default) or "desc"
	Take  *int
}

type GetReportUseCase struct {
	reader ports.ReportReaderPort
	now    func() time.Time
}

func NewGetReportUseCase(reader ports.ReportReaderPort) *GetReportUseCase {
	return &GetReportUseCase{reader: reader, now: time.Now}
}

// Execute builds the 24-hour series ending at the last fully elapsed hour.
// Hours with no stored rows report zero views; ordering and truncation are
// applied after the series is built.
func (uc *GetReportUseCase) Execute(ctx context.Context, in GetReportInput) (*domain.Report, error) {
	if in.Page == "" {
		return nil, ErrInvalidPage
	}
	if in.Order != "" && in.Order != "asc" && in.Order != "desc" {
		return nil, ErrInvalidOrder
	}
	if in.Take != nil && *in.Take <= 0 {
		return nil, ErrInvalidTake
	}

	reference := uc.now()
	if in.Now != nil {
		reference = *in.Now
	}

	// The partially elapsed current hour is never part of the report.
	end := reference.UTC().Truncate(time.Hour).Add(-time.Hour)
	start := end.Add(-(reportHours - 1) * time.Hour)

	stored, err := uc.reader.HourlyViews(ctx, in.Page, start, end)
	if err != nil {
		return nil, err
	}

	points := make([]domain.ReportPoint, 0, reportHours)
	for bucket := start; !bucket.After(end); bucket = bucket.Add(time.Hour) {
		points = append(points, domain.ReportPoint{
			Hour:  bucket.Hour(),
			Views: stored[bucket.Unix()],
		})
	}

	if in.Order == "desc" {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}

	if in.Take != nil && *in.Take < len(points) {
		points = points[:*in.Take]
	}

	return &domain.Report{
		Page:   in.Page,
		Start:  start,
		End:    end,
		Points: points,
	}, nil
}
