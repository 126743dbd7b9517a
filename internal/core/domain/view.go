package domain

import "github.com/shopspring/decimal"

// LetterView is the read model the presentation layer renders. It is derived, never stored.
type LetterView struct {
	Letter             Letter
	Status             LetterStatus
	CurrentApprover    *UserRef
	CompletionFraction decimal.Decimal
	RoutingTargets     []string
	Editable           bool // Whether the viewing user may edit the letter now
}

// NewLetterView derives the view of l for viewerID.
func NewLetterView(l Letter, viewerID string) LetterView {
	v := LetterView{
		Letter:             l,
		Status:             StatusOf(l),
		CompletionFraction: decimal.Zero,
		RoutingTargets:     []string{},
	}
	switch x := l.(type) {
	case *OutgoingLetter:
		if approver, ok := x.CurrentApprover(); ok {
			v.CurrentApprover = &approver
		}
		v.CompletionFraction = x.ApprovalChain.CompletionFraction()
		v.Editable = x.CanEdit(viewerID)
	case *IncomingLetter:
		v.RoutingTargets = x.DistinctRoutingTargets()
	case *InternalMemo:
		v.Editable = x.Status == StatusDraf && !x.IsArchived && x.Creator.UserID == viewerID
	}
	return v
}

// SearchableFields returns the free-text fields archive search matches against.
func SearchableFields(l Letter) []string {
	b := l.Base()
	fields := []string{b.Subject}
	if b.LetterNumber != nil {
		fields = append(fields, *b.LetterNumber)
	}
	switch v := l.(type) {
	case *IncomingLetter:
		fields = append(fields, v.Sender)
	case *OutgoingLetter:
		fields = append(fields, v.Recipient, v.Summary)
	case *InternalMemo:
		fields = append(fields, v.Summary)
	}
	return fields
}
