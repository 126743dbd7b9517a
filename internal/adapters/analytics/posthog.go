// Package analytics forwards product analytics to PostHog. A client without an API key
// is a no-op, so callers never need to check whether analytics is configured.
package analytics

import (
	"context"
	"log/slog"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
	"github.com/posthog/posthog-go"
)

// enqueuer is the part of posthog.Client the wrapper uses.
type enqueuer interface {
	Enqueue(posthog.Message) error
	Close() error
}

// PosthogClient wraps the posthog client and handles the case where it is not initialized.
type PosthogClient struct {
	client enqueuer
	logger *slog.Logger
}

// NewPosthogClient creates a client sending to endpoint. An empty apiKey yields a disabled client.
func NewPosthogClient(apiKey, endpoint string, logger *slog.Logger) *PosthogClient {
	if logger == nil {
		logger = slog.Default()
	}
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, not initializing posthog client.")
		return &PosthogClient{logger: logger}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to initialize posthog client", slog.String("error", err.Error()))
		return &PosthogClient{logger: logger}
	}
	logger.Info("Posthog client initialized", slog.String("endpoint", endpoint))
	return &PosthogClient{client: client, logger: logger}
}

func (w *PosthogClient) IsInitialized() bool {
	return w != nil && w.client != nil
}

func (w *PosthogClient) Enqueue(distinctID string, event string, properties map[string]any) {
	if !w.IsInitialized() {
		return
	}
	w.logger.Debug("Enqueueing event", slog.String("distinct_id", distinctID), slog.String("event", event))
	if err := w.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	}); err != nil {
		w.logger.Warn("Failed to enqueue posthog event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// HandleLetterEvent records a lifecycle event against the acting user. It is subscribed to the event bus.
func (w *PosthogClient) HandleLetterEvent(ctx context.Context, event domain.LetterEvent) error {
	if !w.IsInitialized() {
		return nil
	}
	props := map[string]any{
		"letter_id": event.LetterID,
		"kind":      string(event.Kind),
	}
	if event.FromStatus != "" {
		props["from_status"] = string(event.FromStatus)
	}
	if event.ToStatus != "" {
		props["to_status"] = string(event.ToStatus)
	}
	w.Enqueue(event.ActorID, string(event.Type), props)
	return nil
}

func (w *PosthogClient) Close() {
	if !w.IsInitialized() {
		return
	}
	if err := w.client.Close(); err != nil {
		w.logger.Warn("Failed to close posthog client", slog.String("error", err.Error()))
	}
}
