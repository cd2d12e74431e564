// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package imports

import (
	"fmt"
	"strings"

	"slx/internal/syntax"
)

// fakeFS is an in-memory FileSystem keyed by the exact paths the resolver
// probes (cwd-relative candidates are stored under their relative path).
type fakeFS struct {
	files    map[string]string
	readErrs map[string]error
	wd       string
	reads    int
}

func newFakeFS(wd string) *fakeFS {

	return &fakeFS{
		files:    map[string]string{},
		readErrs: map[string]error{},
		wd:       wd,
	}
}

func (f *fakeFS) Exists(path string) bool {

	_, ok := f.files[path]
	return ok
}

func (f *fakeFS) ReadFile(path string) ([]byte, error) {

	f.reads++
	if err, ok := f.readErrs[path]; ok {
		return nil, err
	}
	content, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("fakeFS: no such file %s", path)
	}
	return []byte(content), nil
}

func (f *fakeFS) Getwd() (string, error) {

	return f.wd, nil
}

// fakeParser builds modules whose import lists come from the source text:
// each non-empty line of the file is taken as one dot-joined import.
type fakeParser struct {
	calls int
	fail  map[string]error // by module name
}

func (p *fakeParser) parse(moduleName, fileName string, src []byte) (*syntax.Module, error) {

	p.calls++
	if err, ok := p.fail[moduleName]; ok {
		return nil, err
	}

	var imports []string
	for _, line := range strings.Split(string(src), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			imports = append(imports, line)
		}
	}
	return &syntax.Module{Name: moduleName, FileName: fileName, Imports: imports}, nil
}

// fakeTypeInfo is what the fake typechecker produces.
type fakeTypeInfo struct {
	module *syntax.Module
}

// newRecursiveTypecheck returns a typecheck capability that imports every
// module named by the tree it checks, the way a real typechecker follows
// nested imports.
func newRecursiveTypecheck(imp *Importer, searchPaths []string, cache *Cache, calls *int) TypecheckFn {

	var typecheck TypecheckFn
	typecheck = func(module *syntax.Module) (TypeInfo, error) {
		*calls++
		for _, subject := range module.Imports {
			ref, err := ParseRef(subject)
			if err != nil {
				return nil, err
			}
			if _, err = imp.DoImport(typecheck, ref, searchPaths, cache); err != nil {
				return nil, err
			}
		}
		return &fakeTypeInfo{module: module}, nil
	}
	return typecheck
}
