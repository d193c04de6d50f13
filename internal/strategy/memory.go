package strategy

import (
	"github.com/anandhu-here/ethakka/internal/naming"
	"github.com/anandhu-here/ethakka/internal/scaffold"
)

// memoryStrategy is the default in-memory backend. It delegates to the
// catalog's built-in templates and declares no extra dependencies.
type memoryStrategy struct {
	catalog *scaffold.Catalog
}

func (s *memoryStrategy) Name() string { return "memory" }

func (s *memoryStrategy) Dependencies() []string { return nil }

func (s *memoryStrategy) DevDependencies() []string { return nil }

func (s *memoryStrategy) ConfigArtifacts(string) ([]scaffold.Artifact, error) {
	return nil, nil
}

func (s *memoryStrategy) EntityArtifact(b naming.Bundle) (scaffold.Artifact, error) {
	return s.catalog.EntityArtifact(b)
}

func (s *memoryStrategy) ServiceArtifact(b naming.Bundle, crud bool) (scaffold.Artifact, error) {
	return s.catalog.ServiceArtifact(b, crud)
}

func (s *memoryStrategy) AuthServiceArtifact() (scaffold.Artifact, error) {
	return s.catalog.AuthServiceArtifact()
}
