// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package imports

import (
	"log/slog"

	"github.com/pkg/errors"

	"slx/core/i18n"
	"slx/internal/syntax"
)

// TypeInfo holds the typechecker's result for one module. The import
// machinery never inspects it; it only pairs it with the module that
// produced it.
type TypeInfo any

// ParseFn is the scanner/parser capability: it turns source text into a
// syntax tree. moduleName is the fully-qualified dot-joined name.
type ParseFn func(moduleName, fileName string, src []byte) (*syntax.Module, error)

// TypecheckFn is the typecheck capability supplied by the caller. It may
// recursively invoke DoImport for the imports of the module it checks.
type TypecheckFn func(*syntax.Module) (TypeInfo, error)

// ModuleInfo is the immutable result of successfully importing one module:
// its parsed tree paired with the type information produced from exactly
// that tree. Instances are owned by the cache and shared read-only by every
// importer.
type ModuleInfo struct {
	Module   *syntax.Module
	TypeInfo TypeInfo
}

// Importer orchestrates module imports: cache fast path, path resolution,
// file read, parse, typecheck, cache insertion. The filesystem, the bundled
// resource lookup and the parser are injected so tests can substitute them.
//
// An Importer is meant for single-threaded use within one compilation
// session; concurrent DoImport calls whose import graphs overlap would be
// told apart from genuine cycles only by luck. ResolveAll is the concurrent
// surface.
type Importer struct {
	fs       FileSystem
	resolver *Resolver
	parse    ParseFn
}

func NewImporter(fs FileSystem, bundle BundleLocator, parse ParseFn) *Importer {

	return &Importer{
		fs:       fs,
		resolver: NewResolver(fs, bundle),
		parse:    parse,
	}
}

// Resolver exposes the importer's path resolver, e.g. for diagnostics.
func (imp *Importer) Resolver() *Resolver {

	return imp.resolver
}

// DoImport returns the ModuleInfo for ref, importing it on first request.
// The cache-hit path does no filesystem or parser work. Every failure
// (resolution, read, parse, typecheck, cycle) surfaces to the caller as is;
// none is retried and none is cached, so a failed import is re-attempted
// from scratch on the next request.
func (imp *Importer) DoImport(typecheck TypecheckFn, ref Ref, searchPaths []string, cache *Cache) (info *ModuleInfo, err error) {

	if cache == nil {
		err = errors.New(i18n.Msg("import cache is required"))
		return
	}

	if cache.Contains(ref) {
		info = cache.Get(ref)
		return
	}

	var ready *ModuleInfo
	if ready, err = cache.begin(ref); err != nil {
		return
	}
	if ready != nil {
		info = ready
		return
	}

	slog.Debug(i18n.Msg("importing uncached module"), slog.String("module", ref.String()))

	if info, err = imp.importUncached(typecheck, ref, searchPaths); err != nil {
		cache.abandon(ref)
		info = nil
		return
	}

	info = cache.Put(ref, info)
	return
}

// ImportAll imports refs in order against one shared cache, stopping at the
// first failure. Results keep the input order.
func (imp *Importer) ImportAll(typecheck TypecheckFn, refs []Ref, searchPaths []string, cache *Cache) (infos []*ModuleInfo, err error) {

	infos = make([]*ModuleInfo, 0, len(refs))
	for _, ref := range refs {
		var info *ModuleInfo
		if info, err = imp.DoImport(typecheck, ref, searchPaths, cache); err != nil {
			infos = nil
			return
		}
		infos = append(infos, info)
	}
	return
}

func (imp *Importer) importUncached(typecheck TypecheckFn, ref Ref, searchPaths []string) (info *ModuleInfo, err error) {

	var found string
	if found, err = imp.resolver.Resolve(ref, searchPaths); err != nil {
		return
	}

	var src []byte
	if src, err = imp.fs.ReadFile(found); err != nil {
		err = errors.Wrapf(err, i18n.Msg("cannot read module source %s"), found)
		return
	}

	moduleName := ref.String()
	slog.Debug(i18n.Msg("parsing and typechecking module"),
		slog.String("module", moduleName),
		slog.String("path", found))

	var module *syntax.Module
	if module, err = imp.parse(moduleName, found, src); err != nil {
		return
	}

	var typeInfo TypeInfo
	if typeInfo, err = typecheck(module); err != nil {
		return
	}

	info = &ModuleInfo{Module: module, TypeInfo: typeInfo}
	return
}
