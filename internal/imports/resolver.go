// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package imports

import (
	"context"
	"log/slog"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"slx/core/i18n"
)

const (
	// SourceExt is the extension of SLX module source files.
	SourceExt = ".x"

	// DefaultStdlibDir is where the reserved standard-library modules live
	// inside the bundled resource set (and relative to the working
	// directory in a source checkout).
	DefaultStdlibDir = "slx/stdlib"

	// OriginWorkingDir and OriginBundle label the implicit search roots in
	// Candidate.Origin; every other origin is a caller-supplied root.
	OriginWorkingDir = "working directory"
	OriginBundle     = "bundled resources"
)

// stdlibNames are the reserved single-segment references that resolve to
// DefaultStdlibDir instead of the general join-with-extension algorithm.
var stdlibNames = map[string]struct{}{
	"std":      {},
	"float32":  {},
	"bfloat16": {},
}

// IsStdlibRef reports whether ref names a reserved standard-library module.
func IsStdlibRef(ref Ref) bool {

	segs := ref.Segments()
	if len(segs) != 1 {
		return false
	}
	_, ok := stdlibNames[segs[0]]
	return ok
}

// Candidate is one location the resolver will probe for a module source.
type Candidate struct {
	Path   string `json:"path"`
	Origin string `json:"origin"`
}

// Resolver turns a module reference plus an ordered list of additional
// search roots into an existing source-file path, trying an ordered set of
// fallback strategies: working-directory relative, bundled resources, the
// parent-stripped variants of both, then each caller-supplied root. The
// order keeps project-local files from being shadowed by search-path
// entries.
type Resolver struct {
	fs     FileSystem
	bundle BundleLocator

	// StdlibDir overrides where the reserved stdlib modules are expected.
	StdlibDir string
}

func NewResolver(fs FileSystem, bundle BundleLocator) *Resolver {

	return &Resolver{
		fs:        fs,
		bundle:    bundle,
		StdlibDir: DefaultStdlibDir,
	}
}

// Candidates returns every location Resolve would try for ref, in the
// order it would try them.
func (r *Resolver) Candidates(ref Ref, searchPaths []string) (candidates []Candidate) {

	primary, parent, hasParent := r.relativeCandidates(ref)

	candidates = append(candidates, Candidate{Path: filepath.FromSlash(primary), Origin: OriginWorkingDir})
	if bundled, ok := r.bundle.Locate(primary); ok {
		candidates = append(candidates, Candidate{Path: bundled, Origin: OriginBundle})
	}

	// The parent-stripped fallback serves build layouts that strip the
	// first path component off the source root.
	if hasParent {
		candidates = append(candidates, Candidate{Path: filepath.FromSlash(parent), Origin: OriginWorkingDir})
		if bundled, ok := r.bundle.Locate(parent); ok {
			candidates = append(candidates, Candidate{Path: bundled, Origin: OriginBundle})
		}
	}

	for _, root := range searchPaths {
		candidates = append(candidates, Candidate{Path: filepath.Join(root, filepath.FromSlash(primary)), Origin: root})
		if hasParent {
			candidates = append(candidates, Candidate{Path: filepath.Join(root, filepath.FromSlash(parent)), Origin: root})
		}
	}

	return
}

// Resolve returns the first existing candidate path for ref. On failure it
// returns a *NotFoundError carrying every attempted path and the working
// directory.
func (r *Resolver) Resolve(ref Ref, searchPaths []string) (found string, err error) {

	candidates := r.Candidates(ref, searchPaths)
	attempted := make([]string, 0, len(candidates))

	for _, cand := range candidates {
		slog.Debug(i18n.Msg("trying import path"),
			slog.String("module", ref.String()),
			slog.String("path", cand.Path),
			slog.String("origin", cand.Origin))
		attempted = append(attempted, cand.Path)
		if r.fs.Exists(cand.Path) {
			slog.Debug(i18n.Msg("found existing file for import path"),
				slog.String("module", ref.String()),
				slog.String("path", cand.Path))
			found = cand.Path
			return
		}
	}

	workingDir, wdErr := r.fs.Getwd()
	if wdErr != nil {
		workingDir = "<unknown>"
	}
	err = &NotFoundError{Ref: ref, Attempted: attempted, WorkingDir: workingDir}
	return
}

// Resolution is the outcome of resolving one reference.
type Resolution struct {
	Ref  Ref
	Path string
	Err  error
}

// ResolveAll resolves refs concurrently. Resolution only reads the
// filesystem, so the lookups can fan out; results keep the input order.
func (r *Resolver) ResolveAll(ctx context.Context, refs []Ref, searchPaths []string) []Resolution {

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	results := make([]Resolution, len(refs))
	for i, ref := range refs {
		group.Go(func() error {
			found, err := r.Resolve(ref, searchPaths)
			results[i] = Resolution{Ref: ref, Path: found, Err: err}
			return nil
		})
	}
	_ = group.Wait()

	return results
}

// relativeCandidates computes the slash-separated relative paths to probe.
// Reserved stdlib references get the fixed stdlib location and no
// parent-stripped fallback.
func (r *Resolver) relativeCandidates(ref Ref) (primary, parent string, hasParent bool) {

	segs := ref.Segments()
	if IsStdlibRef(ref) {
		primary = path.Join(r.StdlibDir, segs[0]+SourceExt)
		return
	}

	primary = strings.Join(segs, "/") + SourceExt
	if len(segs) >= 2 {
		parent = strings.Join(segs[1:], "/") + SourceExt
		hasParent = true
	}
	return
}
