package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"page-view-analytics/internal/report/core/ports"
	"page-view-analytics/internal/report/core/usecase"
)

// Fake reader implementing ReportReaderPort.
type fakeReportReader struct {
	HourlyViewsFn func(ctx context.Context, page string, start, end time.Time) (map[int64]int64, error)

	lastPage  string
	lastStart time.Time
	lastEnd   time.Time
	called    bool
}

func (f *fakeReportReader) HourlyViews(ctx context.Context, page string, start, end time.Time) (map[int64]int64, error) {
	f.called = true
	f.lastPage = page
	f.lastStart = start
	f.lastEnd = end
	if f.HourlyViewsFn != nil {
		return f.HourlyViewsFn(ctx, page, start, end)
	}
	return map[int64]int64{}, nil
}

var _ ports.ReportReaderPort = (*fakeReportReader)(nil)

func refTime(t *testing.T, value string) *time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad test timestamp: %v", err)
	}
	return &ts
}

// ------------------------------------------------------------
// EMPTY STORAGE: 24 ZERO-FILLED ASCENDING POINTS
// ------------------------------------------------------------
func TestGetReport_ZeroFilled(t *testing.T) {
	reader := &fakeReportReader{}
	uc := usecase.NewGetReportUseCase(reader)

	res, err := uc.Execute(context.Background(), usecase.GetReportInput{
		Page: "/unseen-page",
		Now:  refTime(t, "2025-01-02T10:30:00Z"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reader.called {
		t.Fatalf("expected reader to be called")
	}
	if len(res.Points) != 24 {
		t.Fatalf("expected 24 points, got %d", len(res.Points))
	}

	// Current hour (10:00) excluded: window is 09:00 previous day .. 09:00.
	wantEnd := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	wantStart := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	if !res.End.Equal(wantEnd) {
		t.Fatalf("expected end %v, got %v", wantEnd, res.End)
	}
	if !res.Start.Equal(wantStart) {
		t.Fatalf("expected start %v, got %v", wantStart, res.Start)
	}

	for i, p := range res.Points {
		if p.Views != 0 {
			t.Fatalf("expected zero views at index %d, got %d", i, p.Views)
		}
		wantHour := wantStart.Add(time.Duration(i) * time.Hour).Hour()
		if p.Hour != wantHour {
			t.Fatalf("expected hour %d at index %d, got %d", wantHour, i, p.Hour)
		}
	}
}

// ------------------------------------------------------------
// STORED HOURS LAND IN THE RIGHT BUCKETS
// ------------------------------------------------------------
func TestGetReport_StoredViews(t *testing.T) {
	noon := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)
	reader := &fakeReportReader{
		HourlyViewsFn: func(ctx context.Context, page string, start, end time.Time) (map[int64]int64, error) {
			return map[int64]int64{
				end.Unix():                    42, // 11:00
				end.Add(-time.Hour).Unix():    7,  // 10:00
				start.Unix():                  3,  // 12:00 previous day
			}, nil
		},
	}
	uc := usecase.NewGetReportUseCase(reader)

	res, err := uc.Execute(context.Background(), usecase.GetReportInput{
		Page: "/home",
		Now:  &noon,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Points[0].Views != 3 {
		t.Fatalf("expected first bucket views=3, got %d", res.Points[0].Views)
	}
	if res.Points[23].Views != 42 || res.Points[23].Hour != 11 {
		t.Fatalf("expected last bucket hour=11 views=42, got hour=%d views=%d",
			res.Points[23].Hour, res.Points[23].Views)
	}
	if res.Points[22].Views != 7 {
		t.Fatalf("expected views=7 at index 22, got %d", res.Points[22].Views)
	}
}

// ------------------------------------------------------------
// DESCENDING ORDER AND TAKE
// ------------------------------------------------------------
func TestGetReport_OrderAndTake(t *testing.T) {
	noon := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)
	reader := &fakeReportReader{
		HourlyViewsFn: func(ctx context.Context, page string, start, end time.Time) (map[int64]int64, error) {
			return map[int64]int64{end.Unix(): 9}, nil
		},
	}
	uc := usecase.NewGetReportUseCase(reader)

	take := 3
	res, err := uc.Execute(context.Background(), usecase.GetReportInput{
		Page:  "/home",
		Now:   &noon,
		Order: "desc",
		Take:  &take,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Points) != 3 {
		t.Fatalf("expected 3 points after take, got %d", len(res.Points))
	}
	// Descending: newest bucket (11:00, views=9) first.
	if res.Points[0].Hour != 11 || res.Points[0].Views != 9 {
		t.Fatalf("expected first point hour=11 views=9, got hour=%d views=%d",
			res.Points[0].Hour, res.Points[0].Views)
	}
	if res.Points[1].Hour != 10 {
		t.Fatalf("expected second point hour=10, got %d", res.Points[1].Hour)
	}
}

// ------------------------------------------------------------
// TAKE LARGER THAN SERIES
// ------------------------------------------------------------
func TestGetReport_TakeBeyondSeries(t *testing.T) {
	reader := &fakeReportReader{}
	uc := usecase.NewGetReportUseCase(reader)

	take := 100
	res, err := uc.Execute(context.Background(), usecase.GetReportInput{
		Page: "/home",
		Now:  refTime(t, "2025-01-02T12:00:00Z"),
		Take: &take,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Points) != 24 {
		t.Fatalf("expected 24 points, got %d", len(res.Points))
	}
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------
func TestGetReport_Validation(t *testing.T) {
	reader := &fakeReportReader{}
	uc := usecase.NewGetReportUseCase(reader)

	if _, err := uc.Execute(context.Background(), usecase.GetReportInput{}); !errors.Is(err, usecase.ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage, got %v", err)
	}

	if _, err := uc.Execute(context.Background(), usecase.GetReportInput{
		Page:  "/home",
		Order: "sideways",
	}); !errors.Is(err, usecase.ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}

	zero := 0
	if _, err := uc.Execute(context.Background(), usecase.GetReportInput{
		Page: "/home",
		Take: &zero,
	}); !errors.Is(err, usecase.ErrInvalidTake) {
		t.Fatalf("expected ErrInvalidTake, got %v", err)
	}

	if reader.called {
		t.Fatalf("reader must not be called on validation failure")
	}
}

// ------------------------------------------------------------
// READER ERROR
// ------------------------------------------------------------
func TestGetReport_ReaderError(t *testing.T) {
	reader := &fakeReportReader{
		HourlyViewsFn: func(ctx context.Context, page string, start, end time.Time) (map[int64]int64, error) {
			return nil, errors.New("db failure")
		},
	}
	uc := usecase.NewGetReportUseCase(reader)

	if _, err := uc.Execute(context.Background(), usecase.GetReportInput{
		Page: "/home",
		Now:  refTime(t, "2025-01-02T12:00:00Z"),
	}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
