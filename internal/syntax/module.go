// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package syntax defines the parse artifacts exchanged between the scanner/
// parser and the rest of the frontend. The grammar itself lives in the
// parser; this package only carries its results.
package syntax

import "fmt"

// Pos is a 1-based source location.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Module is the root of one parsed .x source file.
type Module struct {
	// Name is the fully-qualified module name, segments joined by ".".
	Name string
	// FileName is the path the module was parsed from.
	FileName string
	// Imports holds the import subjects the module names, in source order,
	// each as a dot-joined reference text.
	Imports []string
}

// ParseError reports a syntactically invalid module.
type ParseError struct {
	FileName string
	Pos      Pos
	Msg      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%s: %s", e.FileName, e.Pos, e.Msg)
}
