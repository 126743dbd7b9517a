package domain

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"golang.org/x/crypto/blake2b"
)

// SignatureKind is the kind of artifact a letter is signed with.
type SignatureKind string

const (
	SignatureImage     SignatureKind = "IMAGE"         // Hand drawn pad export
	SignatureQRCode    SignatureKind = "QR_CODE"       // Verification marker rendered at print time
	SignatureCertified SignatureKind = "CERTIFIED_TTE" // Simulated certified third-party e-signature
)

// SignatureArtifact is what the caller hands in when signing.
type SignatureArtifact struct {
	Kind      SignatureKind
	ImageData []byte
	Provider  string // Certified TTE provider name, informational
}

// ImageArtifact wraps an exported signature pad image.
func ImageArtifact(data []byte) SignatureArtifact {
	return SignatureArtifact{Kind: SignatureImage, ImageData: data}
}

// QRCodeArtifact marks QR mode; nothing is stored beyond the digest.
func QRCodeArtifact() SignatureArtifact {
	return SignatureArtifact{Kind: SignatureQRCode}
}

// CertifiedArtifact marks a simulated certified signature.
func CertifiedArtifact(provider string) SignatureArtifact {
	return SignatureArtifact{Kind: SignatureCertified, Provider: provider}
}

// Signature is the immutable signature attached to a sent letter.
type Signature struct {
	Kind      SignatureKind `json:"kind"`
	ImageData []byte        `json:"imageData,omitempty"`
	Provider  string        `json:"provider,omitempty"`
	Digest    string        `json:"digest"` // blake2b-256 over letter identity, signer and artifact
	SignedBy  UserRef       `json:"signedBy"`
	SignedAt  time.Time     `json:"signedAt"`
}

func newSignature(l *OutgoingLetter, a SignatureArtifact, signer UserRef, at time.Time) (*Signature, error) {
	switch a.Kind {
	case SignatureImage:
		if len(a.ImageData) == 0 {
			return nil, fmt.Errorf("%w: signature image is empty", apperrors.ErrValidation)
		}
	case SignatureQRCode, SignatureCertified:
	default:
		return nil, fmt.Errorf("%w: unknown signature kind %q", apperrors.ErrValidation, a.Kind)
	}
	sig := &Signature{
		Kind:     a.Kind,
		Provider: a.Provider,
		SignedBy: signer,
		SignedAt: at,
	}
	if len(a.ImageData) > 0 {
		sig.ImageData = append([]byte(nil), a.ImageData...)
	}
	sig.Digest = signatureDigest(l, sig)
	return sig, nil
}

func signatureDigest(l *OutgoingLetter, sig *Signature) string {
	number := ""
	if l.LetterNumber != nil {
		number = *l.LetterNumber
	}
	h, _ := blake2b.New256(nil) // only fails for oversized keys
	for _, part := range []string{string(sig.Kind), l.LetterID, number, sig.SignedBy.UserID, sig.SignedAt.UTC().Format(time.RFC3339Nano)} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	h.Write(sig.ImageData)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifySignature recomputes the digest of a signed letter.
func VerifySignature(l *OutgoingLetter) bool {
	if l.Signature == nil {
		return false
	}
	return signatureDigest(l, l.Signature) == l.Signature.Digest
}
