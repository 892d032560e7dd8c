// Package codec reads and writes the KIR wire formats: a little-endian
// binary encoding and a JSON encoding. Both carry the full component tree
// plus the reactive manifest and logic block, and both round-trip every
// value the data model can represent.
//
// Decoding is defensive by default: malformed counts and out-of-range enum
// tags clamp to safe values so a renderable tree always comes out. The
// Strict option switches to fail-fast with a structured DecodeError, which
// callers handling untrusted input should prefer.
package codec

import (
	"fmt"
	"sort"

	"github.com/waozixyz/kir"
	"github.com/waozixyz/kir/pkg/logic"
)

// Binary format constants.
const (
	Magic       = 0x4B495242 // "KIRB"
	MagicLegacy = 0x4B5259   // "KRY", pre-V2 files

	VersionMajor = 2
	VersionMinor = 1

	endiannessCheck = 0x12345678

	flagManifest = 1 << 0
	flagLogic    = 1 << 1
)

// Document bundles everything one KIR file holds.
type Document struct {
	Root     *kir.Component
	Manifest *logic.Manifest
	Logic    *logic.Block
}

// DecodeError reports a malformed input the decoder could not (or, in
// strict mode, would not) recover from.
type DecodeError struct {
	Offset  int
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error at offset %d: %s", e.Offset, e.Message)
}

// Option adjusts decoder behavior.
type Option func(*options)

type options struct {
	strict bool
}

// Strict makes the decoder fail on input it would otherwise clamp: excess
// gradient stops, unknown enum tags, truncated records.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// sortedKeys keeps map-backed sections deterministic on the wire.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
