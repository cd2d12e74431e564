// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package imports

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveWorkingDirWinsOverSearchPaths(t *testing.T) {
	t.Parallel()

	fs := newFakeFS("/wd")
	fs.files["a/b.x"] = ""
	fs.files["/roots/a/b.x"] = ""

	resolver := NewResolver(fs, NewBundleLocator(""))
	found, err := resolver.Resolve(MustRef("a", "b"), []string{"/roots"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if found != "a/b.x" {
		t.Errorf("Resolve = %q, want working-directory candidate %q", found, "a/b.x")
	}
}

func TestResolveViaSearchPath(t *testing.T) {
	t.Parallel()

	fs := newFakeFS("/wd")
	fs.files["/opt/libs/a/b.x"] = ""

	resolver := NewResolver(fs, NewBundleLocator(""))
	found, err := resolver.Resolve(MustRef("a", "b"), []string{"/opt/libs"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if found != "/opt/libs/a/b.x" {
		t.Errorf("Resolve = %q, want %q", found, "/opt/libs/a/b.x")
	}
}

func TestResolveParentStrippedFallback(t *testing.T) {
	t.Parallel()

	// pkg/mod.x exists nowhere; mod.x exists only under the second root.
	// Every primary attempt at every preceding root has to fail first.
	fs := newFakeFS("/wd")
	fs.files["/r2/mod.x"] = ""

	resolver := NewResolver(fs, NewBundleLocator("/bundle"))
	found, err := resolver.Resolve(MustRef("pkg", "mod"), []string{"/r1", "/r2"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if found != "/r2/mod.x" {
		t.Errorf("Resolve = %q, want parent-stripped candidate %q", found, "/r2/mod.x")
	}
}

func TestResolveStdlib(t *testing.T) {
	t.Parallel()

	fs := newFakeFS("/wd")
	fs.files["/bundle/slx/stdlib/std.x"] = ""
	// A std.x lying around in a search root must not shadow the stdlib.
	fs.files["/roots/std.x"] = ""

	resolver := NewResolver(fs, NewBundleLocator("/bundle"))
	found, err := resolver.Resolve(MustRef("std"), []string{"/roots"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if found != "/bundle/slx/stdlib/std.x" {
		t.Errorf("Resolve = %q, want stdlib path", found)
	}

	for _, name := range []string{"std", "float32", "bfloat16"} {
		if !IsStdlibRef(MustRef(name)) {
			t.Errorf("IsStdlibRef(%s) = false, want true", name)
		}
	}
	if IsStdlibRef(MustRef("std", "std")) {
		t.Error("multi-segment reference must not be treated as stdlib")
	}
	if IsStdlibRef(MustRef("other")) {
		t.Error("IsStdlibRef(other) = true, want false")
	}
}

func TestResolveNotFoundReportsEveryAttempt(t *testing.T) {
	t.Parallel()

	fs := newFakeFS("/wd")
	resolver := NewResolver(fs, NewBundleLocator("/bundle"))

	_, err := resolver.Resolve(MustRef("a", "b"), []string{"/r1"})
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Resolve error = %v, want *NotFoundError", err)
	}

	wantAttempted := []string{
		"a/b.x",
		"/bundle/a/b.x",
		"b.x",
		"/bundle/b.x",
		"/r1/a/b.x",
		"/r1/b.x",
	}
	if diff := cmp.Diff(wantAttempted, notFound.Attempted); diff != "" {
		t.Errorf("Attempted mismatch (-want +got):\n%s", diff)
	}
	if notFound.WorkingDir != "/wd" {
		t.Errorf("WorkingDir = %q, want %q", notFound.WorkingDir, "/wd")
	}
}

func TestCandidatesOrderAndOrigins(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(newFakeFS("/wd"), NewBundleLocator("/bundle"))
	got := resolver.Candidates(MustRef("pkg", "mod"), []string{"/r1"})

	want := []Candidate{
		{Path: "pkg/mod.x", Origin: OriginWorkingDir},
		{Path: "/bundle/pkg/mod.x", Origin: OriginBundle},
		{Path: "mod.x", Origin: OriginWorkingDir},
		{Path: "/bundle/mod.x", Origin: OriginBundle},
		{Path: "/r1/pkg/mod.x", Origin: "/r1"},
		{Path: "/r1/mod.x", Origin: "/r1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidatesSingleSegmentHasNoParentStripped(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(newFakeFS("/wd"), NewBundleLocator(""))
	got := resolver.Candidates(MustRef("solo"), []string{"/r1"})

	want := []Candidate{
		{Path: "solo.x", Origin: OriginWorkingDir},
		{Path: "/r1/solo.x", Origin: "/r1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveAll(t *testing.T) {
	t.Parallel()

	fs := newFakeFS("/wd")
	fs.files["/libs/a/b.x"] = ""

	resolver := NewResolver(fs, NewBundleLocator(""))
	refs := []Ref{MustRef("a", "b"), MustRef("missing")}
	results := resolver.ResolveAll(context.Background(), refs, []string{"/libs"})

	if len(results) != 2 {
		t.Fatalf("ResolveAll returned %d results, want 2", len(results))
	}
	if results[0].Ref.String() != "a.b" || results[0].Path != "/libs/a/b.x" || results[0].Err != nil {
		t.Errorf("results[0] = %+v, want resolved a.b", results[0])
	}
	if results[1].Ref.String() != "missing" || results[1].Err == nil {
		t.Errorf("results[1] = %+v, want failed missing", results[1])
	}
}
