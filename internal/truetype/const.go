package truetype

import "errors"

var (
	// ErrChecksum is returned when a non-head table's recomputed checksum
	// disagrees with the value recorded in its table record.
	ErrChecksum = errors.New("truetype: table checksum mismatch")

	// ErrMissingTable is returned when one of cmap, glyf, head, loca, maxp
	// is absent from the table directory.
	ErrMissingTable = errors.New("truetype: required table missing")

	// ErrUnsupported covers every other rejection spec.md classifies as
	// "Unsupported": a CFF or collection container, no acceptable cmap
	// encoding, an unrecognized loca format, compound point-match
	// composition, and component-recursion limits.
	ErrUnsupported = errors.New("truetype: unsupported font data")

	// ErrMalformed guards against indexing out-of-range data the checksum
	// pass let through (e.g. a truncated glyf blob); it is folded into
	// ErrUnsupported at the package boundary rather than panicking, per
	// spec.md §7.
	ErrMalformed = errors.New("truetype: malformed table data")
)
