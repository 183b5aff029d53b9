// Package worker provides a NATS worker that normalizes text jobs.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/book-expert/events"
	"github.com/book-expert/logger"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/book-expert/text-normalizer/internal/core"
	"github.com/book-expert/text-normalizer/internal/normalizer"
)

const (
	handleMessageTimeout = 30 * time.Second
	normalizedKeySuffix  = ".txt"
)

var (
	// ErrTextKeyEmpty indicates that the incoming event carries no text key.
	ErrTextKeyEmpty = errors.New("text key cannot be empty")
	// ErrTextEmpty indicates that the downloaded text blob is empty.
	ErrTextEmpty = errors.New("text cannot be empty")
)

// NatsWorker listens for text jobs on a NATS subject, rewrites the text
// through the normalization pipeline, and replies with the key of the
// normalized blob.
type NatsWorker struct {
	natsConnection *nats.Conn
	subject        string
	store          core.ObjectStore
	pipeline       core.TextNormalizer
	opts           normalizer.Options
	log            *logger.Logger
}

// NewNatsWorker creates a new instance of a NATS worker.
func NewNatsWorker(
	natsConnection *nats.Conn,
	subject string,
	store core.ObjectStore,
	pipeline core.TextNormalizer,
	opts normalizer.Options,
	log *logger.Logger,
) (*NatsWorker, error) {
	return &NatsWorker{
		natsConnection: natsConnection,
		subject:        subject,
		store:          store,
		pipeline:       pipeline,
		opts:           opts,
		log:            log,
	}, nil
}

// Run starts the worker and begins listening for messages.
func (w *NatsWorker) Run(ctx context.Context) error {
	sub, err := w.natsConnection.Subscribe(w.subject, w.handleMessage)
	if err != nil {
		return fmt.Errorf("failed to subscribe to subject %s: %w", w.subject, err)
	}

	<-ctx.Done()

	drainErr := sub.Drain()
	if drainErr != nil {
		return fmt.Errorf("failed to drain subscription: %w", drainErr)
	}

	return nil
}

func (w *NatsWorker) handleMessage(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), handleMessageTimeout)
	defer cancel()

	event, err := w.parseAndValidateEvent(msg)
	if err != nil {
		w.log.Error("Failed to parse and validate event: %v", err)

		return
	}

	normalizedKey, processErr := w.processNormalizationJob(ctx, event)
	if processErr != nil {
		w.log.Error("Failed to normalize text for event %s: %v", event.Header.WorkflowID, processErr)

		return
	}

	replyEvent := &events.TextProcessedEvent{
		Header:            event.Header,
		TextKey:           normalizedKey,
		PNGKey:            event.PNGKey,
		PageNumber:        event.PageNumber,
		TotalPages:        event.TotalPages,
		Voice:             event.Voice,
		Seed:              event.Seed,
		NGL:               event.NGL,
		TopP:              event.TopP,
		RepetitionPenalty: event.RepetitionPenalty,
		Temperature:       event.Temperature,
	}

	err = w.publishReplyEvent(msg, replyEvent)
	if err != nil {
		w.log.Error("Failed to publish reply event for workflow %s: %v", event.Header.WorkflowID, err)
	}
}

// processNormalizationJob downloads the raw text, rewrites it through the
// pipeline, and uploads the normalized result under a fresh key.
func (w *NatsWorker) processNormalizationJob(
	ctx context.Context,
	event *events.TextProcessedEvent,
) (string, error) {
	rawText, err := w.store.Download(ctx, event.TextKey)
	if err != nil {
		return "", fmt.Errorf("failed to download text data for key '%s': %w", event.TextKey, err)
	}

	if len(rawText) == 0 {
		return "", ErrTextEmpty
	}

	normalizedText := w.pipeline.Normalize(string(rawText), w.opts)

	normalizedKey := uuid.NewString() + normalizedKeySuffix

	err = w.store.Upload(ctx, normalizedKey, []byte(normalizedText))
	if err != nil {
		return "", fmt.Errorf("failed to upload normalized text for key '%s': %w", normalizedKey, err)
	}

	return normalizedKey, nil
}

// publishReplyEvent marshals and responds with the normalized-text event.
func (w *NatsWorker) publishReplyEvent(msg *nats.Msg, replyEvent *events.TextProcessedEvent) error {
	replyData, err := json.Marshal(replyEvent)
	if err != nil {
		return fmt.Errorf("failed to marshal reply event: %w", err)
	}

	err = msg.Respond(replyData)
	if err != nil {
		return fmt.Errorf("failed to publish reply event: %w", err)
	}

	return nil
}

func (w *NatsWorker) parseAndValidateEvent(msg *nats.Msg) (*events.TextProcessedEvent, error) {
	var event events.TextProcessedEvent

	err := json.Unmarshal(msg.Data, &event)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.TextKey == "" {
		return nil, ErrTextKeyEmpty
	}

	return &event, nil
}
