package synthesis

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	KindUsage        // wrong command line arguments
	KindProvider     // the synthesis provider failed, e.g. unsupported lang, network or service error
	KindIO           // failed to write the audio file
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindProvider:
		return "provider"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is the error returned at the synthesis boundary.
// All kinds print the underlying message only, the kind is for callers to inspect.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func NewUsageError(usage string) error {
	return &Error{Kind: KindUsage, Err: errors.New(usage)}
}
