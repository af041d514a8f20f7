package ports

import (
	"context"
	"time"
)

// ReportReaderPort returns the stored views for a page between start and
// end (inclusive), summed across shards, keyed by the bucket's unix time.
// Hours without rows are simply absent.
type ReportReaderPort interface {
	HourlyViews(ctx context.Context, page string, start, end time.Time) (map[int64]int64, error)
}
