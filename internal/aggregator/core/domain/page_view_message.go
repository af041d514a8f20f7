package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// PageViewMessage is one decoded queue payload.
type PageViewMessage struct {
	Page      string
	Timestamp time.Time
	Views     int64
	Partition int
	Shard     int
}

// PageViewRow is one aggregated row as persisted, keyed by
// (page, view hour, shard).
type PageViewRow struct {
	Page      string
	ViewHour  time.Time
	Views     int64
	Partition int
	Shard     int
}

type wireMessage struct {
	Page      string `json:"page"`
	Timestamp string `json:"timestamp"`
	Views     int64  `json:"views"`
	Partition int    `json:"partition"`
	Shard     int    `json:"shard"`
}

// DecodePageViewMessage parses a queue payload. A failure here is terminal
// for the message: redelivery cannot fix a malformed payload.
func DecodePageViewMessage(body []byte) (PageViewMessage, error) {
	var wire wireMessage
	if err := json.Unmarshal(body, &wire); err != nil {
		return PageViewMessage{}, fmt.Errorf("decode page view message: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, wire.Timestamp)
	if err != nil {
		return PageViewMessage{}, fmt.Errorf("decode page view timestamp: %w", err)
	}

	return PageViewMessage{
		Page:      wire.Page,
		Timestamp: ts.UTC(),
		Views:     wire.Views,
		Partition: wire.Partition,
		Shard:     wire.Shard,
	}, nil
}

// HourBucket truncates an instant to the top of its hour, in UTC.
func HourBucket(t time.Time) time.Time {
	return t.UTC().Truncate(time.Hour)
}

// QueueName returns the durable queue for a partition.
func QueueName(partition int) string {
	return fmt.Sprintf("pageviews.p%d", partition)
}

type mergeKey struct {
	page      string
	hour      int64
	partition int
}

// MergePageViews collapses a flush batch by (page, hour bucket, partition),
// summing views. The shard is intentionally NOT part of the key: all events
// for a key collapse into one row carrying the shard of whichever event was
// grouped first. Row order follows first appearance in the batch.
func MergePageViews(messages []PageViewMessage) []PageViewRow {
	rows := make([]PageViewRow, 0, len(messages))
	index := make(map[mergeKey]int, len(messages))

	for _, msg := range messages {
		hour := HourBucket(msg.Timestamp)
		key := mergeKey{page: msg.Page, hour: hour.Unix(), partition: msg.Partition}

		if i, ok := index[key]; ok {
			rows[i].Views += msg.Views
			continue
		}

		index[key] = len(rows)
		rows = append(rows, PageViewRow{
			Page:      msg.Page,
			ViewHour:  hour,
			Views:     msg.Views,
			Partition: msg.Partition,
			Shard:     msg.Shard,
		})
	}

	return rows
}
