package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApprovalStatus is the state of a single approval step.
type ApprovalStatus string

const (
	ApprovalMenunggu  ApprovalStatus = "Menunggu"
	ApprovalDisetujui ApprovalStatus = "Disetujui"
	ApprovalDitolak   ApprovalStatus = "Ditolak"
)

// IsTerminal reports whether a step in this status can no longer be decided.
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalDisetujui || s == ApprovalDitolak
}

// ApprovalStep is one approver's position in an approval chain.
type ApprovalStep struct {
	StepID    string         `json:"stepID"`
	Approver  UserRef        `json:"approver"`
	Position  int            `json:"position"` // 1-based, fixed at construction
	Status    ApprovalStatus `json:"status"`
	Notes     string         `json:"notes,omitempty"`
	DecidedAt *time.Time     `json:"decidedAt,omitempty"`
}

// ApprovalChain is the ordered sequence of approval steps for one submission cycle.
// The current step is never stored; it is always the first step still Menunggu.
type ApprovalChain struct {
	Steps []ApprovalStep `json:"steps"`
}

// NewApprovalChain builds an all-pending chain in the given approver order.
func NewApprovalChain(approvers []UserRef) ApprovalChain {
	steps := make([]ApprovalStep, len(approvers))
	for i, approver := range approvers {
		steps[i] = ApprovalStep{
			StepID:   uuid.NewString(),
			Approver: approver,
			Position: i + 1,
			Status:   ApprovalMenunggu,
		}
	}
	return ApprovalChain{Steps: steps}
}

// CurrentIndex returns the index of the first pending step, or -1 when none is pending.
func (c ApprovalChain) CurrentIndex() int {
	for i, step := range c.Steps {
		switch step.Status {
		case ApprovalMenunggu:
			return i
		case ApprovalDitolak:
			return -1
		}
	}
	return -1
}

// Current returns the step that is decidable right now.
func (c ApprovalChain) Current() (ApprovalStep, bool) {
	idx := c.CurrentIndex()
	if idx < 0 {
		return ApprovalStep{}, false
	}
	return c.Steps[idx], true
}

// IsComplete reports whether every step has been approved.
func (c ApprovalChain) IsComplete() bool {
	if len(c.Steps) == 0 {
		return false
	}
	for _, step := range c.Steps {
		if step.Status != ApprovalDisetujui {
			return false
		}
	}
	return true
}

// CompletionFraction is the share of approved steps, rounded to four places.
func (c ApprovalChain) CompletionFraction() decimal.Decimal {
	if len(c.Steps) == 0 {
		return decimal.Zero
	}
	approved := 0
	for _, step := range c.Steps {
		if step.Status == ApprovalDisetujui {
			approved++
		}
	}
	return decimal.NewFromInt(int64(approved)).
		DivRound(decimal.NewFromInt(int64(len(c.Steps))), 4)
}

func (c ApprovalChain) indexOf(stepID string) int {
	for i, step := range c.Steps {
		if step.StepID == stepID {
			return i
		}
	}
	return -1
}

// CheckInvariants verifies the ordering guarantees of a live chain: positions are
// 1..n in order, no step is rejected, and every step before the current one is approved.
func (c ApprovalChain) CheckInvariants() error {
	current := c.CurrentIndex()
	for i, step := range c.Steps {
		if step.Position != i+1 {
			return fmt.Errorf("step %s has position %d, want %d", step.StepID, step.Position, i+1)
		}
		if step.Status == ApprovalDitolak {
			return fmt.Errorf("step %s is rejected inside a live chain", step.StepID)
		}
		if current >= 0 && i < current && step.Status != ApprovalDisetujui {
			return fmt.Errorf("step %s precedes the current step but is %s", step.StepID, step.Status)
		}
		if current >= 0 && i > current && step.Status != ApprovalMenunggu {
			return fmt.Errorf("step %s follows the current step but is %s", step.StepID, step.Status)
		}
	}
	return nil
}

func (c ApprovalChain) clone() ApprovalChain {
	steps := make([]ApprovalStep, len(c.Steps))
	copy(steps, c.Steps)
	return ApprovalChain{Steps: steps}
}

// VersionHistoryEntry records one rejected submission cycle. Version is the version
// that was rejected; the letter continues at Version+1.
type VersionHistoryEntry struct {
	Version        int            `json:"version"`
	RevisedAt      time.Time      `json:"revisedAt"`
	RejectedBy     UserRef        `json:"rejectedBy"`
	RejectionNotes string         `json:"rejectionNotes"`
	Steps          []ApprovalStep `json:"steps"` // The decided cycle, kept as it was
}

// checkDecision validates a decision against the chain without mutating anything.
// Only the current approver gets past the first check, whatever step they name.
func (c ApprovalChain) checkDecision(stepID string, decision ApprovalStatus, notes string, actor UserRef) (int, error) {
	current := c.CurrentIndex()
	if current < 0 {
		return -1, fmt.Errorf("%w: no approval step is pending", apperrors.ErrInvalidTransition)
	}
	if actor.UserID != c.Steps[current].Approver.UserID {
		return -1, fmt.Errorf("%w: user %s is not the current approver", apperrors.ErrForbidden, actor.UserID)
	}
	if decision != ApprovalDisetujui && decision != ApprovalDitolak {
		return -1, fmt.Errorf("%w: decision must be %s or %s", apperrors.ErrValidation, ApprovalDisetujui, ApprovalDitolak)
	}
	idx := c.indexOf(stepID)
	if idx < 0 {
		return -1, fmt.Errorf("%w: approval step %s", apperrors.ErrNotFound, stepID)
	}
	step := c.Steps[idx]
	if step.Status.IsTerminal() {
		return -1, fmt.Errorf("%w: step %s is already %s", apperrors.ErrInvalidTransition, stepID, step.Status)
	}
	if idx != current {
		return -1, fmt.Errorf("%w: step %s is not the current approval step", apperrors.ErrForbidden, stepID)
	}
	if decision == ApprovalDitolak && isBlank(notes) {
		return -1, fmt.Errorf("%w: rejection requires notes", apperrors.ErrValidation)
	}
	return idx, nil
}
