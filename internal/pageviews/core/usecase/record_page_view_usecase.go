package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"page-view-analytics/internal/pageviews/core/domain"
	"page-view-analytics/internal/pageviews/core/ports"
)

var (
	ErrInvalidPage      = errors.New("page is required")
	ErrInvalidTimestamp = errors.New("invalid timestamp format")
	ErrInvalidViews     = errors.New("views must be at least 1")
)

type RecordPageViewUseCase struct {
	publisher     ports.PageViewPublisherPort
	numPartitions int
	numShards     int
}

func NewRecordPageViewUseCase(publisher ports.PageViewPublisherPort, numPartitions, numShards int) *RecordPageViewUseCase {
	return &RecordPageViewUseCase{
		publisher:     publisher,
		numPartitions: numPartitions,
		numShards:     numShards,
	}
}

// RecordSingle validates the timestamp and publishes a single-view event to
// the page's partition queue.
func (uc *RecordPageViewUseCase) RecordSingle(ctx context.Context, page, timestamp string) error {
	view, err := uc.buildPageView(page, timestamp, 1)
	if err != nil {
		return err
	}
	return uc.publisher.PublishPageView(ctx, view)
}

// RecordBatch publishes one event per (page, timestamp) pair. Timestamps may
// use an underscore in place of the date/time separator. All pairs are
// validated before any publish is issued; the publishes themselves run
// concurrently, and a publish failure fails the whole call without rolling
// back events that were already sent.
func (uc *RecordPageViewUseCase) RecordBatch(ctx context.Context, data map[string]map[string]int64) error {
	var views []domain.PageView

	for page, hourViews := range data {
		for timestamp, count := range hourViews {
			if count < 1 {
				return ErrInvalidViews
			}
			view, err := uc.buildPageView(page, normalizeTimestamp(timestamp), count)
			if err != nil {
				return err
			}
			views = append(views, view)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, view := range views {
		view := view
		g.Go(func() error {
			return uc.publisher.PublishPageView(ctx, view)
		})
	}
	return g.Wait()
}

func (uc *RecordPageViewUseCase) buildPageView(page, timestamp string, count int64) (domain.PageView, error) {
	if page == "" {
		return domain.PageView{}, ErrInvalidPage
	}

	ts, err := ParseTimestamp(timestamp)
	if err != nil {
		return domain.PageView{}, err
	}

	return domain.PageView{
		Page:      page,
		Timestamp: ts,
		Views:     count,
		Partition: domain.PartitionOf(page, uc.numPartitions),
		Shard:     domain.RandomShard(uc.numShards),
	}, nil
}

// ParseTimestamp accepts RFC 3339 as well as a zone-less
// "2006-01-02T15:04:05", which is treated as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts.UTC(), nil
	}
	if ts, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return ts.UTC(), nil
	}
	return time.Time{}, ErrInvalidTimestamp
}

// normalizeTimestamp turns "2025-01-01_12:00:00Z" into its ISO equivalent.
func normalizeTimestamp(value string) string {
	return strings.Replace(value, "_", "T", 1)
}
