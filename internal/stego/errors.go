package stego

import "fmt"

// Kind identifies one of the error categories from the reversible codec's
// taxonomy. Callers should compare against the exported sentinels with
// errors.Is, not against Kind directly.
type Kind int

const (
	_ Kind = iota
	// KindEmptyFrames is returned when an operation is given zero frames.
	KindEmptyFrames
	// KindEmptyKey is returned when the key is empty or whitespace-only.
	KindEmptyKey
	// KindEmptyMessage is returned when Embed is given an empty message.
	KindEmptyMessage
	// KindCapacityExceeded is returned when the payload cannot fit twice
	// over (payload + side-info) in the available pixels.
	KindCapacityExceeded
	// KindInvalidLength is returned when the length prefix read off the
	// chaotic stream is out of the accepted range. Surfaced to users as
	// "wrong key or no hidden message".
	KindInvalidLength
	// KindHashMismatch is returned when the recomputed SHA-256 of the
	// extracted message does not match the trailing hash bytes.
	KindHashMismatch
	// KindInternal covers pixel-accessor bounds/format violations, i.e.
	// programmer error rather than bad input.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindEmptyFrames:
		return "EmptyFrames"
	case KindEmptyKey:
		return "EmptyKey"
	case KindEmptyMessage:
		return "EmptyMessage"
	case KindCapacityExceeded:
		return "CapacityExceeded"
	case KindInvalidLength:
		return "InvalidLength"
	case KindHashMismatch:
		return "HashMismatch"
	case KindInternal:
		return "InternalError"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by the core codec. It carries a
// Kind so callers can branch with errors.Is against the package-level
// sentinels below, plus a human-readable Detail.
type Error struct {
	Kind   Kind
	Detail string
	// Value carries the offending numeric value for kinds where one
	// exists (currently just the raw length prefix for InvalidLength), so
	// presentation layers can reproduce exact user-facing message text
	// without re-parsing Detail.
	Value int
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is lets errors.Is(err, ErrCapacityExceeded) etc. work against instances
// produced with different Detail strings.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Detail: fmt.Sprintf(format, args...)}
}

// Sentinels for errors.Is comparisons. Detail is irrelevant for identity.
var (
	ErrEmptyFrames      = &Error{Kind: KindEmptyFrames}
	ErrEmptyKey         = &Error{Kind: KindEmptyKey}
	ErrEmptyMessage     = &Error{Kind: KindEmptyMessage}
	ErrCapacityExceeded = &Error{Kind: KindCapacityExceeded}
	ErrInvalidLength    = &Error{Kind: KindInvalidLength}
	ErrHashMismatch     = &Error{Kind: KindHashMismatch}
	ErrInternal         = &Error{Kind: KindInternal}
)
