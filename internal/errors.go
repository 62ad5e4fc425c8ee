package filespecs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mtth/filespecs/internal/fspath"
)

// ErrNoMatch is matched by every NoMatchError.
var ErrNoMatch = errors.New("filespec expanded to empty")

// Expansion is the outcome of expanding a single pattern.
type Expansion struct {
	// Pattern as supplied by the caller, before any normalization.
	Pattern string
	// Absolute matching paths, in listing order. Empty if nothing matched.
	Matches []fspath.Local
	// Reason the pattern could not be matched, if it was malformed.
	Err error
}

// Status returns the expansion's Status.
func (e Expansion) Status() Status {
	if len(e.Matches) == 0 {
		return StatusEmpty
	}
	return StatusMatched
}

func (e Expansion) String() string {
	if len(e.Matches) > 0 {
		return fmt.Sprintf("%s expanded to %v", e.Pattern, e.Matches)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s expanded to empty (%v)", e.Pattern, e.Err)
	}
	return e.Pattern + " expanded to empty"
}

// Status summarizes an Expansion.
type Status int

const (
	// The pattern did not match any existing path.
	StatusEmpty Status = iota
	// The pattern matched at least one existing path.
	StatusMatched
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "EMPTY"
	case StatusMatched:
		return "MATCHED"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// NoMatchError is returned when at least one pattern expanded to empty. It holds the expansions of
// all patterns from the call, including successful ones, so that its message shows the complete
// picture.
type NoMatchError struct {
	Expansions []Expansion
}

// Failed returns the patterns which expanded to empty, in input order.
func (e *NoMatchError) Failed() []string {
	var pats []string
	for _, exp := range e.Expansions {
		if exp.Status() == StatusEmpty {
			pats = append(pats, exp.Pattern)
		}
	}
	return pats
}

func (e *NoMatchError) Error() string {
	descs := make([]string, len(e.Expansions))
	for i, exp := range e.Expansions {
		descs[i] = exp.String()
	}
	return fmt.Sprintf("one or more filespecs did not match any files: [%s]", strings.Join(descs, ", "))
}

func (e *NoMatchError) Unwrap() error {
	return ErrNoMatch
}
