package domain

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
)

// PageView is one routed view event, ready to be published to its
// partition's queue.
type PageView struct {
	Page      string
	Timestamp time.Time
	Views     int64
	Partition int
	Shard     int
}

// PartitionOf maps a page to its partition. The hash is stable across
// process restarts, so a page always lands on the same queue and its
// events keep their publish order there.
func PartitionOf(page string, numPartitions int) int {
	return int(xxhash.Sum64String(page) % uint64(numPartitions))
}

// RandomShard picks a storage shard uniformly and independently per event.
// It is deliberately not derived from the page: spreading a hot page's
// writes over several rows is the whole point.
func RandomShard(numShards int) int {
	return rand.Intn(numShards)
}

// QueueName returns the durable queue for a partition.
func QueueName(partition int) string {
	return fmt.Sprintf("pageviews.p%d", partition)
}
