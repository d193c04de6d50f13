package scaffold

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/anandhu-here/ethakka/internal/naming"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog error: %v", err)
	}
	return c
}

func artifactPaths(artifacts []Artifact) []string {
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		paths = append(paths, a.Path)
	}
	sort.Strings(paths)
	return paths
}

func findArtifact(t *testing.T, artifacts []Artifact, path string) Artifact {
	t.Helper()
	for _, a := range artifacts {
		if a.Path == path {
			return a
		}
	}
	t.Fatalf("artifact %s not rendered; have %v", path, artifactPaths(artifacts))
	return Artifact{}
}

func TestRenderUnitCrud(t *testing.T) {
	c := newTestCatalog(t)
	b := naming.Normalize("invoices")

	artifacts, err := c.RenderUnit(b, Flags{IncludeCrud: true}, nil)
	if err != nil {
		t.Fatalf("RenderUnit error: %v", err)
	}

	want := []string{
		"src/invoices/dto/create-invoice.dto.ts",
		"src/invoices/dto/update-invoice.dto.ts",
		"src/invoices/entities/invoice.entity.ts",
		"src/invoices/invoice.controller.ts",
		"src/invoices/invoice.module.ts",
		"src/invoices/invoice.service.ts",
	}
	got := artifactPaths(artifacts)
	if len(got) != len(want) {
		t.Fatalf("paths = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	controller := findArtifact(t, artifacts, "src/invoices/invoice.controller.ts")
	for _, decorator := range []string{"@Get()", "@Get(':id')", "@Post()", "@Patch(':id')", "@Delete(':id')"} {
		if !strings.Contains(string(controller.Content), decorator) {
			t.Errorf("CRUD controller missing %s", decorator)
		}
	}
}

func TestRenderUnitMinimal(t *testing.T) {
	c := newTestCatalog(t)
	b := naming.Normalize("invoices")

	artifacts, err := c.RenderUnit(b, Flags{}, nil)
	if err != nil {
		t.Fatalf("RenderUnit error: %v", err)
	}

	got := artifactPaths(artifacts)
	for _, p := range got {
		if strings.Contains(p, "/dto/") {
			t.Errorf("minimal render should not emit DTO files, got %v", got)
		}
	}
	if len(got) != 4 {
		t.Errorf("minimal render = %d artifacts, want 4: %v", len(got), got)
	}
}

func TestRenderUnitIdentifierConsistency(t *testing.T) {
	c := newTestCatalog(t)
	b := naming.Normalize("user-profiles")

	artifacts, err := c.RenderUnit(b, Flags{IncludeCrud: true}, nil)
	if err != nil {
		t.Fatalf("RenderUnit error: %v", err)
	}

	module := findArtifact(t, artifacts, "src/user-profiles/user-profile.module.ts")
	for _, ident := range []string{"UserProfileModule", "UserProfileController", "UserProfileService"} {
		if !strings.Contains(string(module.Content), ident) {
			t.Errorf("module file missing identifier %s:\n%s", ident, module.Content)
		}
	}

	service := findArtifact(t, artifacts, "src/user-profiles/user-profile.service.ts")
	if !strings.Contains(string(service.Content), "UserProfile") {
		t.Errorf("service file missing class identifier:\n%s", service.Content)
	}
}

func TestRenderUnitDeterministic(t *testing.T) {
	c := newTestCatalog(t)
	b := naming.Normalize("invoices")

	first, err := c.RenderUnit(b, Flags{IncludeCrud: true}, nil)
	if err != nil {
		t.Fatalf("RenderUnit error: %v", err)
	}
	second, err := c.RenderUnit(b, Flags{IncludeCrud: true}, nil)
	if err != nil {
		t.Fatalf("repeat RenderUnit error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("artifact count changed between renders: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Path != second[i].Path || !bytes.Equal(first[i].Content, second[i].Content) {
			t.Errorf("artifact %s not byte-identical across renders", first[i].Path)
		}
	}
}

func TestRenderUnitPanicsOnIncompleteBundle(t *testing.T) {
	c := newTestCatalog(t)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for incomplete bundle")
		}
	}()
	c.RenderUnit(naming.Bundle{Raw: "x"}, Flags{}, nil) //nolint:errcheck
}

func TestRenderSkeleton(t *testing.T) {
	c := newTestCatalog(t)

	artifacts, err := c.RenderSkeleton("shop-api")
	if err != nil {
		t.Fatalf("RenderSkeleton error: %v", err)
	}
	if len(artifacts) != len(skeletonFiles) {
		t.Fatalf("RenderSkeleton = %d artifacts, want %d", len(artifacts), len(skeletonFiles))
	}

	aggregator := findArtifact(t, artifacts, "src/app.module.ts")
	if !strings.Contains(string(aggregator.Content), "imports: [],") {
		t.Errorf("aggregator missing canonical empty registration list:\n%s", aggregator.Content)
	}

	pkg := findArtifact(t, artifacts, "package.json")
	if !strings.Contains(string(pkg.Content), `"name": "shop-api"`) {
		t.Errorf("package.json missing project name:\n%s", pkg.Content)
	}
}

func TestRenderAuth(t *testing.T) {
	c := newTestCatalog(t)

	artifacts, err := c.RenderAuth(nil)
	if err != nil {
		t.Fatalf("RenderAuth error: %v", err)
	}

	want := []string{
		"src/auth/auth.controller.ts",
		"src/auth/auth.module.ts",
		"src/auth/auth.service.ts",
		"src/auth/dto/login.dto.ts",
		"src/auth/dto/register.dto.ts",
		"src/auth/jwt-auth.guard.ts",
	}
	got := artifactPaths(artifacts)
	if len(got) != len(want) {
		t.Fatalf("paths = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	service := findArtifact(t, artifacts, "src/auth/auth.service.ts")
	if !strings.Contains(string(service.Content), "JwtService") {
		t.Errorf("auth service should issue JWTs:\n%s", service.Content)
	}
}

func TestUnitNamingHelpers(t *testing.T) {
	b := naming.Normalize("categories")
	if got := ModuleClass(b); got != "CategoryModule" {
		t.Errorf("ModuleClass = %q", got)
	}
	if got := UnitDir(b); got != "src/categories" {
		t.Errorf("UnitDir = %q", got)
	}
	want := "import { CategoryModule } from './categories/category.module';"
	if got := UnitImportLine(b); got != want {
		t.Errorf("UnitImportLine = %q, want %q", got, want)
	}
}
