package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"page-view-analytics/internal/aggregator/core/domain"
	"page-view-analytics/internal/aggregator/core/ports"
)

var ErrConsumerClosed = errors.New("queue consumer closed")

// AggregatorService consumes one partition's queue, buffers decoded events
// and flushes them in merged batches. All buffer state is owned by the Run
// goroutine: intake, size checks and buffer extraction never race, which is
// what allows a new fill cycle to start while earlier flushes are still in
// flight. Persistence runs in spawned goroutines over disjoint snapshots.
type AggregatorService struct {
	partition     int
	batchSize     int
	flushInterval time.Duration
	consumer      ports.QueueConsumerPort
	writer        ports.PageViewWriterPort
	log           *logrus.Entry

	// owned by the Run loop
	buffer []bufferedMessage

	flushes sync.WaitGroup
}

type bufferedMessage struct {
	msg domain.PageViewMessage
	tag uint64
}

func NewAggregatorService(
	partition int,
	batchSize int,
	flushInterval time.Duration,
	consumer ports.QueueConsumerPort,
	writer ports.PageViewWriterPort,
	log *logrus.Entry,
) *AggregatorService {
	return &AggregatorService{
		partition:     partition,
		batchSize:     batchSize,
		flushInterval: flushInterval,
		consumer:      consumer,
		writer:        writer,
		log:           log.WithField("partition", partition),
	}
}

// Run consumes until the context is canceled or the delivery stream closes.
// In-flight flushes are waited for before returning.
func (s *AggregatorService) Run(ctx context.Context) error {
	queue := domain.QueueName(s.partition)

	deliveries, err := s.consumer.Consume(ctx, queue)
	if err != nil {
		return err
	}

	s.log.WithField("queue", queue).Info("aggregator started")
	defer s.flushes.Wait()

	var timer *time.Timer
	var timerC <-chan time.Time

	disarm := func() {
		if timer != nil {
			timer.Stop()
			timer = nil
			timerC = nil
		}
	}

	for {
		select {
		case <-ctx.Done():
			disarm()
			return ctx.Err()

		case d, ok := <-deliveries:
			if !ok {
				disarm()
				return ErrConsumerClosed
			}

			msg, err := domain.DecodePageViewMessage(d.Body)
			if err != nil {
				// Malformed payloads are dropped for good.
				s.log.WithError(err).Warn("dropping malformed message")
				if nackErr := s.consumer.Nack(d.Tag, false); nackErr != nil {
					s.log.WithError(nackErr).Warn("nack failed")
				}
				continue
			}

			s.buffer = append(s.buffer, bufferedMessage{msg: msg, tag: d.Tag})

			if len(s.buffer) >= s.batchSize {
				disarm()
				s.startFlush(ctx)
			} else if timerC == nil {
				timer = time.NewTimer(s.flushInterval)
				timerC = timer.C
			}

		case <-timerC:
			timer = nil
			timerC = nil
			s.startFlush(ctx)
		}
	}
}

// startFlush takes the whole buffer synchronously, then persists the
// snapshot on its own goroutine. Multiple flushes may be in flight at once.
func (s *AggregatorService) startFlush(ctx context.Context) {
	if len(s.buffer) == 0 {
		return
	}

	batch := s.buffer
	s.buffer = nil

	s.flushes.Add(1)
	go func() {
		defer s.flushes.Done()
		s.flush(ctx, batch)
	}()
}

func (s *AggregatorService) flush(ctx context.Context, batch []bufferedMessage) {
	messages := make([]domain.PageViewMessage, len(batch))
	for i, b := range batch {
		messages[i] = b.msg
	}

	rows := domain.MergePageViews(messages)

	if err := s.writer.UpsertPageViews(ctx, rows); err != nil {
		// Redelivery is the retry path; no in-process retry loop.
		s.log.WithError(err).WithField("batch", len(batch)).Error("batch flush failed, requeueing")
		for _, b := range batch {
			if nackErr := s.consumer.Nack(b.tag, true); nackErr != nil {
				s.log.WithError(nackErr).Warn("nack failed")
			}
		}
		return
	}

	for _, b := range batch {
		if ackErr := s.consumer.Ack(b.tag); ackErr != nil {
			s.log.WithError(ackErr).Warn("ack failed")
		}
	}

	s.log.WithFields(logrus.Fields{
		"event":    "batch_flushed",
		"messages": len(batch),
		"rows":     len(rows),
	}).Debug("batch flushed")
}
