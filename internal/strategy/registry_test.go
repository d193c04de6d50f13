package strategy

import (
	"errors"
	"strings"
	"testing"

	"github.com/anandhu-here/ethakka/internal/naming"
	"github.com/anandhu-here/ethakka/internal/scaffold"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	catalog, err := scaffold.NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog error: %v", err)
	}
	registry, err := NewRegistry(catalog)
	if err != nil {
		t.Fatalf("NewRegistry error: %v", err)
	}
	return registry
}

func TestRegistryResolve(t *testing.T) {
	registry := newTestRegistry(t)

	t.Run("known_keys", func(t *testing.T) {
		for _, key := range []string{"memory", "mongodb"} {
			s, err := registry.Resolve(key)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", key, err)
			}
			if s.Name() != key {
				t.Errorf("Resolve(%q).Name() = %q", key, s.Name())
			}
		}
	})

	t.Run("case_insensitive", func(t *testing.T) {
		for _, key := range []string{"MongoDB", "MONGODB", "Memory"} {
			if _, err := registry.Resolve(key); err != nil {
				t.Errorf("Resolve(%q) error: %v", key, err)
			}
		}
	})

	t.Run("unknown_key", func(t *testing.T) {
		_, err := registry.Resolve("postgres")
		if err == nil {
			t.Fatal("expected error for unknown key")
		}
		var unsupported *UnsupportedStrategyError
		if !errors.As(err, &unsupported) {
			t.Fatalf("err = %v, want *UnsupportedStrategyError", err)
		}
		if unsupported.Key != "postgres" {
			t.Errorf("Key = %q, want %q", unsupported.Key, "postgres")
		}
		msg := err.Error()
		for _, key := range []string{"memory", "mongodb"} {
			if !strings.Contains(msg, key) {
				t.Errorf("error message %q should list %q", msg, key)
			}
		}
	})
}

func TestRegistryKeys(t *testing.T) {
	registry := newTestRegistry(t)
	keys := registry.Keys()
	want := []string{"memory", "mongodb"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestMongoStrategyDependencies(t *testing.T) {
	registry := newTestRegistry(t)
	s, err := registry.Resolve("mongodb")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	deps := s.Dependencies()
	if len(deps) == 0 || !strings.HasPrefix(deps[0], "mongoose@") {
		t.Errorf("Dependencies() = %v, want mongoose spec", deps)
	}
}

func TestMongoStrategyRegistration(t *testing.T) {
	registry := newTestRegistry(t)
	s, err := registry.Resolve("mongodb")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	registrar, ok := s.(scaffold.Registrar)
	if !ok {
		t.Fatal("mongodb strategy should expose a registration entry")
	}
	importLine, identifier := registrar.RegistrationEntry()
	if identifier != "DatabaseModule" {
		t.Errorf("identifier = %q, want %q", identifier, "DatabaseModule")
	}
	if !strings.Contains(importLine, "./database/database.module") {
		t.Errorf("import line = %q, want database module path", importLine)
	}
}

func TestMemoryStrategyHasNoExtras(t *testing.T) {
	registry := newTestRegistry(t)
	s, err := registry.Resolve("memory")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if deps := s.Dependencies(); len(deps) != 0 {
		t.Errorf("memory Dependencies() = %v, want none", deps)
	}
	artifacts, err := s.ConfigArtifacts("demo")
	if err != nil {
		t.Fatalf("ConfigArtifacts error: %v", err)
	}
	if len(artifacts) != 0 {
		t.Errorf("memory ConfigArtifacts() = %d artifacts, want none", len(artifacts))
	}
	if _, ok := s.(scaffold.Registrar); ok {
		t.Error("memory strategy should not register anything")
	}
}

func TestStrategyEntityArtifacts(t *testing.T) {
	registry := newTestRegistry(t)
	bundle := naming.Normalize("invoices")

	tests := []struct {
		key      string
		wantPath string
		contains string
	}{
		{"memory", "src/invoices/entities/invoice.entity.ts", "export class Invoice"},
		{"mongodb", "src/invoices/entities/invoice.entity.ts", "new Schema<Invoice>"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s, err := registry.Resolve(tt.key)
			if err != nil {
				t.Fatalf("Resolve error: %v", err)
			}
			artifact, err := s.EntityArtifact(bundle)
			if err != nil {
				t.Fatalf("EntityArtifact error: %v", err)
			}
			if artifact.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", artifact.Path, tt.wantPath)
			}
			if !strings.Contains(string(artifact.Content), tt.contains) {
				t.Errorf("content missing %q:\n%s", tt.contains, artifact.Content)
			}
		})
	}
}
