package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/globook/globook-backend/globook/internal/errs"
	"github.com/globook/globook-backend/globook/model"
)

type reportCatch func(ctx context.Context, report model.CatchReport) (int, error)

// Consumer turns catch reports from the catch topic into catch rows.
type Consumer struct {
	reportCatchHandler reportCatch
	log                *zap.Logger
	ready              chan bool
	minBackoff         time.Duration
	maxBackoff         time.Duration
}

const (
	defaultMinBackoff = 500 * time.Millisecond
	defaultMaxBackoff = 30 * time.Second
)

func NewConsumer(reportCatch reportCatch, log *zap.Logger) *Consumer {
	return &Consumer{
		reportCatchHandler: reportCatch,
		log:                log.Named("consumer"),
		ready:              make(chan bool),
		minBackoff:         defaultMinBackoff,
		maxBackoff:         defaultMaxBackoff,
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// Ready is closed once the first session has been set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			if !consumer.processMessage(session.Context(), message) {
				// session is over, the offset stays uncommitted
				return nil
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// processMessage retries a message until it may be committed. It returns
// false only when ctx is done first.
func (consumer *Consumer) processMessage(ctx context.Context, message *sarama.ConsumerMessage) bool {
	backoff := consumer.minBackoff
	for {
		if consumer.handleMessage(ctx, message) {
			return true
		}
		consumer.log.Warn("retrying catch report",
			zap.Int64("offset", message.Offset),
			zap.Int32("partition", message.Partition),
			zap.Duration("backoff", backoff))

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
		if backoff *= 2; backoff > consumer.maxBackoff {
			backoff = consumer.maxBackoff
		}
	}
}

// handleMessage reports whether the message offset may be committed.
// Reports that can never succeed are dropped; store failures are not.
func (consumer *Consumer) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) bool {
	var report model.CatchReport
	if err := json.Unmarshal(message.Value, &report); err != nil {
		consumer.log.Error("json.Unmarshal", zap.Error(err), zap.ByteString("value", message.Value))
		return true
	}

	id, err := consumer.reportCatchHandler(ctx, report)
	switch {
	case err == nil:
		consumer.log.Debug("catch stored",
			zap.Int("id", id),
			zap.Time("timestamp", message.Timestamp),
			zap.String("topic", message.Topic))
		return true
	case errors.Is(err, errs.ErrInvalidCatch),
		errors.Is(err, errs.ErrCopyNotFound),
		errors.Is(err, errs.ErrWrongSecret):
		consumer.log.Warn("catch report rejected", zap.Error(err), zap.Int("copy_uid", report.CopyUID))
		return true
	default:
		consumer.log.Error("consumer.reportCatchHandler", zap.Error(err))
		return false
	}
}
