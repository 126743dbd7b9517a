package domain

import (
	"encoding/json"
	"fmt"
)

type letterEnvelope struct {
	Kind LetterKind      `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// MarshalLetter encodes a letter with its kind tag so it can be decoded back into the right variant.
func MarshalLetter(l Letter) ([]byte, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal %s letter: %w", l.Kind(), err)
	}
	return json.Marshal(letterEnvelope{Kind: l.Kind(), Data: data})
}

// UnmarshalLetter decodes the output of MarshalLetter.
func UnmarshalLetter(raw []byte) (Letter, error) {
	var env letterEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode letter envelope: %w", err)
	}
	var l Letter
	switch env.Kind {
	case KindIncoming:
		l = &IncomingLetter{}
	case KindOutgoing:
		l = &OutgoingLetter{}
	case KindMemo:
		l = &InternalMemo{}
	default:
		return nil, fmt.Errorf("decode letter: unknown kind %q", env.Kind)
	}
	if err := json.Unmarshal(env.Data, l); err != nil {
		return nil, fmt.Errorf("decode %s letter: %w", env.Kind, err)
	}
	return l, nil
}

// CloneLetter returns a deep copy that shares no slices with l.
func CloneLetter(l Letter) (Letter, error) {
	raw, err := MarshalLetter(l)
	if err != nil {
		return nil, err
	}
	return UnmarshalLetter(raw)
}
