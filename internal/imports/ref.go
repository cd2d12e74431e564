// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package imports locates, parses and typechecks SLX modules exactly once
// per compilation session. The scanner/parser and the typechecker are
// injected capabilities; this package owns resolution, caching and
// orchestration.
package imports

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"slx/core/i18n"
)

// Ref identifies a module by an ordered, non-empty sequence of name
// segments, e.g. ["std"] or ["foo","bar","baz"]. Two refs are the same
// cache key iff their segment sequences are equal element-wise.
type Ref struct {
	segments []string
}

// NewRef constructs a reference from segments. Segments must be non-empty
// and must not contain '.', '/' or '\' (they come from import syntax).
func NewRef(segments ...string) (ref Ref, err error) {

	if len(segments) == 0 {
		err = errors.New(i18n.Msg("module reference needs at least one segment"))
		return
	}
	for _, seg := range segments {
		if seg == "" {
			err = errors.New(i18n.Msg("module reference has an empty segment"))
			return
		}
		if strings.ContainsAny(seg, `./\`) {
			err = fmt.Errorf("%s: %q", i18n.Msg("module reference segment contains a separator"), seg)
			return
		}
	}
	ref = Ref{segments: append([]string(nil), segments...)}
	return
}

// MustRef is NewRef that panics on invalid input; for constants and tests.
func MustRef(segments ...string) Ref {

	ref, err := NewRef(segments...)
	if err != nil {
		panic(err)
	}
	return ref
}

// ParseRef builds a reference from its dot-joined text, e.g. "foo.bar".
func ParseRef(text string) (ref Ref, err error) {

	return NewRef(strings.Split(text, ".")...)
}

// Segments returns a copy of the segment sequence.
func (r Ref) Segments() []string {

	return append([]string(nil), r.segments...)
}

// String returns the canonical dot-joined form, which is also the
// fully-qualified name handed to the parser.
func (r Ref) String() string {

	return strings.Join(r.segments, ".")
}

// key is the cache key. Segments cannot contain '.', so the dot-joined
// form is injective.
func (r Ref) key() string {

	return strings.Join(r.segments, ".")
}
