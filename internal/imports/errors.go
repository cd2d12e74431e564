// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package imports

import (
	"fmt"
	"strings"

	"slx/core/i18n"
)

// NotFoundError reports that no candidate source file exists anywhere in
// the search chain. Attempted holds every full path tried, in order.
type NotFoundError struct {
	Ref        Ref
	Attempted  []string
	WorkingDir string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(i18n.Msg("could not find source file for import %s; attempted: [ %s ]; working directory: %s"),
		e.Ref, strings.Join(e.Attempted, " :: "), e.WorkingDir)
}

// CycleError reports that a reference was re-requested while its own import
// was still in progress. Chain lists the in-flight imports outermost first,
// ending with the repeated reference.
type CycleError struct {
	Ref   Ref
	Chain []Ref
}

func (e *CycleError) Error() string {

	texts := make([]string, 0, len(e.Chain))
	for _, ref := range e.Chain {
		texts = append(texts, ref.String())
	}
	return fmt.Sprintf(i18n.Msg("import cycle detected: %s"), strings.Join(texts, " -> "))
}
