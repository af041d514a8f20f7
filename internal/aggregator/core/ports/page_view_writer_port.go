package ports

import (
	"context"

	"page-view-analytics/internal/aggregator/core/domain"
)

// PageViewWriterPort persists merged rows in one atomic bulk upsert:
// existing (page, hour, shard) rows get the incoming views added, missing
// ones are inserted. All rows commit together or none do, so a failed
// batch can be retried wholesale via redelivery.
type PageViewWriterPort interface {
	UpsertPageViews(ctx context.Context, rows []domain.PageViewRow) error
}
