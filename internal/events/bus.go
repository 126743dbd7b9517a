package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portssvc "github.com/SscSPs/correspondence_app/internal/core/ports/services"
	"github.com/SscSPs/correspondence_app/internal/middleware"
)

// Handler consumes one letter event. Errors are logged, never retried.
type Handler func(ctx context.Context, event domain.LetterEvent) error

// Bus is a buffered in-process event bus. Publish never blocks the command that emitted the event:
// when the buffer is full the event is dropped and logged.
type Bus struct {
	ch             chan domain.LetterEvent
	mu             sync.RWMutex
	handlers       map[string]Handler
	handlerTimeout time.Duration
	logger         *slog.Logger
}

// NewBus creates a bus holding up to bufferSize undelivered events.
func NewBus(bufferSize int, logger *slog.Logger) *Bus {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		ch:             make(chan domain.LetterEvent, bufferSize),
		handlers:       make(map[string]Handler),
		handlerTimeout: 10 * time.Second,
		logger:         logger,
	}
}

var _ portssvc.EventPublisher = (*Bus)(nil)

// Subscribe registers handler under name. Registering the same name again replaces it.
func (b *Bus) Subscribe(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = handler
}

// Publish enqueues event for delivery.
func (b *Bus) Publish(ctx context.Context, event domain.LetterEvent) {
	select {
	case b.ch <- event:
	default:
		middleware.GetLoggerFromCtx(ctx).Warn("Event buffer full, dropping event",
			slog.String("event", string(event.Type)),
			slog.String("letter_id", event.LetterID))
	}
}

// Start runs the bus in the background on its own context. The returned stop cancels it and
// waits until every buffered event has been delivered; call it after the HTTP server has shut down.
func (b *Bus) Start() (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		b.Run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}

// Run delivers events to every subscriber until ctx is cancelled, then drains what is buffered.
func (b *Bus) Run(ctx context.Context) {
	b.logger.Info("Letter event bus started")
	for {
		select {
		case <-ctx.Done():
			b.drain()
			b.logger.Info("Letter event bus stopped")
			return
		case event := <-b.ch:
			b.dispatch(event)
		}
	}
}

func (b *Bus) drain() {
	for {
		select {
		case event := <-b.ch:
			b.dispatch(event)
		default:
			return
		}
	}
}

func (b *Bus) dispatch(event domain.LetterEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for name, handler := range b.handlers {
		ctx, cancel := context.WithTimeout(context.Background(), b.handlerTimeout)
		if err := handler(ctx, event); err != nil {
			b.logger.Error("Event subscriber failed",
				slog.String("subscriber", name),
				slog.String("event", string(event.Type)),
				slog.String("letter_id", event.LetterID),
				slog.String("error", err.Error()))
		}
		cancel()
	}
}
