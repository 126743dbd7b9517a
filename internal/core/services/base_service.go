package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/correspondence_app/internal/core/ports/services"
	"github.com/SscSPs/correspondence_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// LogCommandError logs rejected commands at debug level and infrastructure failures at error level.
func (s *BaseService) LogCommandError(ctx context.Context, err error, msg string, keyvals ...any) {
	if apperrors.Kind(err) != nil {
		args := append([]any{slog.String("reason", err.Error())}, keyvals...)
		s.LogDebug(ctx, msg, args...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

// ServiceOption is a functional option for configuring the letter services
type ServiceOption func(*letterCommands)

// WithEventPublisher sends lifecycle events to publisher after every successful command
func WithEventPublisher(publisher portssvc.EventPublisher) ServiceOption {
	return func(c *letterCommands) {
		c.events = publisher
	}
}

// WithClock replaces time.Now, e.g. in tests
func WithClock(now func() time.Time) ServiceOption {
	return func(c *letterCommands) {
		c.now = now
	}
}

// letterCommands is the shared machinery of the letter services: it resolves the acting user,
// runs one domain command through the repository's single writer and publishes the outcome.
type letterCommands struct {
	BaseService
	letters portsrepo.LetterRepositoryFacade
	users   portsrepo.UserReader
	events  portssvc.EventPublisher
	now     func() time.Time
}

func newLetterCommands(letters portsrepo.LetterRepositoryFacade, users portsrepo.UserReader, opts ...ServiceOption) *letterCommands {
	c := &letterCommands{
		letters: letters,
		users:   users,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// command mutates the letter in place and names the event describing what happened.
type command func(l domain.Letter, actor domain.UserRef, at time.Time) (domain.LetterEventType, error)

// actor resolves userID to the identity stored on letters.
func (c *letterCommands) actor(ctx context.Context, userID string) (domain.UserRef, error) {
	if userID == "" {
		return domain.UserRef{}, fmt.Errorf("%w: acting user is required", apperrors.ErrValidation)
	}
	user, err := c.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.UserRef{}, fmt.Errorf("%w: unknown user %s", apperrors.ErrForbidden, userID)
		}
		return domain.UserRef{}, fmt.Errorf("failed to resolve user %s: %w", userID, err)
	}
	return user.Ref(), nil
}

// member resolves a referenced user (approver, routing target, recipient). Unknown ids are invalid input.
func (c *letterCommands) member(ctx context.Context, userID, role string) (domain.UserRef, error) {
	user, err := c.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.UserRef{}, fmt.Errorf("%w: %s %s does not exist", apperrors.ErrValidation, role, userID)
		}
		return domain.UserRef{}, fmt.Errorf("failed to resolve %s %s: %w", role, userID, err)
	}
	return user.Ref(), nil
}

func (c *letterCommands) members(ctx context.Context, userIDs []string, role string) ([]domain.UserRef, error) {
	if userIDs == nil {
		return nil, nil
	}
	refs := make([]domain.UserRef, 0, len(userIDs))
	for _, id := range userIDs {
		ref, err := c.member(ctx, id, role)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// run executes cmd on letterID as actorID. The letter is stored only if cmd succeeds, and the
// event is published only after it has been stored.
func (c *letterCommands) run(ctx context.Context, op, letterID, actorID string, cmd command) (domain.Letter, error) {
	actor, err := c.actor(ctx, actorID)
	if err != nil {
		c.LogCommandError(ctx, err, op+" rejected", slog.String("letter_id", letterID))
		return nil, err
	}

	at := c.now()
	var (
		from      domain.LetterStatus
		eventType domain.LetterEventType
	)
	updated, err := c.letters.UpdateLetter(ctx, letterID, func(l domain.Letter) error {
		from = domain.StatusOf(l)
		var cmdErr error
		eventType, cmdErr = cmd(l, actor, at)
		return cmdErr
	})
	if err != nil {
		c.LogCommandError(ctx, err, op+" failed", slog.String("letter_id", letterID), slog.String("actor_id", actor.UserID))
		return nil, err
	}

	c.publish(ctx, domain.NewLetterEvent(eventType, updated, from, actor.UserID, at))
	c.LogInfo(ctx, op+" succeeded",
		slog.String("letter_id", letterID),
		slog.String("event", string(eventType)),
		slog.String("status", string(domain.StatusOf(updated))))
	return updated, nil
}

// create stores a newly built letter and announces it.
func (c *letterCommands) create(ctx context.Context, l domain.Letter, actor domain.UserRef, at time.Time) error {
	if err := c.letters.SaveLetter(ctx, l); err != nil {
		c.LogError(ctx, err, "Failed to save letter", slog.String("letter_id", l.Base().LetterID))
		return fmt.Errorf("failed to save letter: %w", err)
	}
	c.publish(ctx, domain.NewLetterEvent(domain.EventLetterCreated, l, "", actor.UserID, at))
	c.LogInfo(ctx, "Letter created",
		slog.String("letter_id", l.Base().LetterID),
		slog.String("kind", string(l.Kind())))
	return nil
}

func (c *letterCommands) publish(ctx context.Context, event domain.LetterEvent) {
	if c.events == nil {
		return
	}
	c.events.Publish(ctx, event)
}

func asOutgoing(l domain.Letter) (*domain.OutgoingLetter, error) {
	out, ok := l.(*domain.OutgoingLetter)
	if !ok {
		return nil, fmt.Errorf("%w: letter %s is a %s, not an outgoing letter", apperrors.ErrValidation, l.Base().LetterID, l.Kind())
	}
	return out, nil
}

func asIncoming(l domain.Letter) (*domain.IncomingLetter, error) {
	in, ok := l.(*domain.IncomingLetter)
	if !ok {
		return nil, fmt.Errorf("%w: letter %s is a %s, not an incoming letter", apperrors.ErrValidation, l.Base().LetterID, l.Kind())
	}
	return in, nil
}

func asMemo(l domain.Letter) (*domain.InternalMemo, error) {
	m, ok := l.(*domain.InternalMemo)
	if !ok {
		return nil, fmt.Errorf("%w: letter %s is a %s, not a memo", apperrors.ErrValidation, l.Base().LetterID, l.Kind())
	}
	return m, nil
}
