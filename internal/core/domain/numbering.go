package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
)

// Numbering template placeholders.
const (
	PlaceholderUnitCode       = "[KODE_UNIT_KERJA_LENGKAP]"
	PlaceholderClassification = "[KODE_KLASIFIKASI_ARSIP]"
	PlaceholderOrdinal        = "[NOMOR_URUT_PER_MASALAH]"
	PlaceholderYear           = "[TAHUN_SAAT_INI]"
)

// DefaultNumberingTemplate is used when no template is configured for a kind.
const DefaultNumberingTemplate = "NOMOR " + PlaceholderOrdinal + "/" + PlaceholderClassification + "/" +
	PlaceholderUnitCode + "/TAHUN " + PlaceholderYear

// NumberingTemplates maps an outgoing kind to its number template.
type NumberingTemplates map[OutgoingKind]string

// For returns the template of kind, falling back to the Biasa template and then the default.
func (t NumberingTemplates) For(kind OutgoingKind) string {
	if tpl, ok := t[kind]; ok && !isBlank(tpl) {
		return tpl
	}
	if tpl, ok := t[OutgoingBiasa]; ok && !isBlank(tpl) {
		return tpl
	}
	return DefaultNumberingTemplate
}

// NumberingContext carries everything GenerateNumber needs.
type NumberingContext struct {
	UnitCode           string // Already composed as parent.child for branch units
	ClassificationCode string
	PrimaryIssueID     *string
	ClassificationID   *string
	Year               int
	ExistingCount      int // Outgoing letters already in the {primary issue, year} scope
	Kind               OutgoingKind
}

// GenerateNumber renders a letter number from template. The ordinal is ExistingCount+1.
// SPPD letters use the bare numeric form without the "NOMOR " and "TAHUN " tokens.
func GenerateNumber(template string, ctx NumberingContext) (string, error) {
	if ctx.PrimaryIssueID == nil || isBlank(*ctx.PrimaryIssueID) {
		return "", fmt.Errorf("%w: primary issue is not selected", apperrors.ErrMissingClassification)
	}
	if ctx.ClassificationID == nil || isBlank(*ctx.ClassificationID) {
		return "", fmt.Errorf("%w: archive classification is not selected", apperrors.ErrMissingClassification)
	}
	if ctx.ExistingCount < 0 {
		return "", fmt.Errorf("%w: negative existing count %d", apperrors.ErrValidation, ctx.ExistingCount)
	}
	if isBlank(template) {
		template = DefaultNumberingTemplate
	}

	number := strings.NewReplacer(
		PlaceholderUnitCode, ctx.UnitCode,
		PlaceholderClassification, ctx.ClassificationCode,
		PlaceholderOrdinal, strconv.Itoa(ctx.ExistingCount+1),
		PlaceholderYear, fmt.Sprintf("%04d", ctx.Year),
	).Replace(template)

	if ctx.Kind == OutgoingSPPD {
		number = strings.NewReplacer("NOMOR ", "", "TAHUN ", "").Replace(number)
	}
	return number, nil
}

// SequenceScope is the numbering scope: ordinals restart per primary issue and calendar year.
type SequenceScope struct {
	PrimaryIssueID string
	Year           int
}

// Key is the stable string form used by counter stores.
func (s SequenceScope) Key() string {
	return s.PrimaryIssueID + ":" + strconv.Itoa(s.Year)
}

// ScopeOf returns the numbering scope of an outgoing letter. ok is false without a primary issue.
func ScopeOf(l *OutgoingLetter) (SequenceScope, bool) {
	if l.PrimaryIssueID == nil || isBlank(*l.PrimaryIssueID) {
		return SequenceScope{}, false
	}
	return SequenceScope{PrimaryIssueID: *l.PrimaryIssueID, Year: l.LetterDate.Year()}, true
}

// CountInScope counts the outgoing letters sharing scope, skipping excludeID.
func CountInScope(letters []Letter, scope SequenceScope, excludeID string) int {
	n := 0
	for _, l := range letters {
		out, ok := l.(*OutgoingLetter)
		if !ok || out.LetterID == excludeID {
			continue
		}
		if s, ok := ScopeOf(out); ok && s == scope {
			n++
		}
	}
	return n
}
