package sfnt

import (
	"errors"
	"fmt"

	"github.com/gviegas/sfntglyph/internal/truetype"
)

// Kind classifies an Error for callers that want to branch on failure mode
// without string-matching.
type Kind int

const (
	// IOError means reading or seeking the font's byte source failed.
	IOError Kind = iota
	// BadChecksum means a non-head table's recomputed checksum disagreed
	// with the value recorded for it in the table directory.
	BadChecksum
	// MissingTable means cmap, glyf, head, loca, or maxp was absent.
	MissingTable
	// Unsupported covers a CFF or collection container, an unrecognized
	// cmap encoding or loca format, and compound-glyph point-match
	// composition.
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case IOError:
		return "IOError"
	case BadChecksum:
		return "BadChecksum"
	case MissingTable:
		return "MissingTable"
	case Unsupported:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

// Error is the sole error type returned across the package boundary. It
// wraps the internal sentinel error that triggered it, so callers can use
// errors.Is/As against it directly.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("sfnt: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// classify maps an internal/truetype sentinel error (or a plain I/O error)
// to the public Kind taxonomy, mirroring how the teacher's export.go is the
// only code that ever sees its package-internal sentinel errors.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var kind Kind
	switch {
	case errors.Is(err, truetype.ErrChecksum):
		kind = BadChecksum
	case errors.Is(err, truetype.ErrMissingTable):
		kind = MissingTable
	case errors.Is(err, truetype.ErrUnsupported), errors.Is(err, truetype.ErrMalformed):
		kind = Unsupported
	default:
		kind = IOError
	}
	return &Error{Kind: kind, Op: op, Err: err}
}
