package strategy

import (
	"fmt"
	"path"

	"github.com/anandhu-here/ethakka/internal/naming"
	"github.com/anandhu-here/ethakka/internal/scaffold"
)

// mongoStrategy targets MongoDB through mongoose. Entities become mongoose
// schemas and business logic goes through the exported model.
type mongoStrategy struct {
	renderer scaffold.Renderer
}

// mongoData is the substitution set for mongo templates.
type mongoData struct {
	Class    string
	Property string
	Singular string
	Plural   string
}

func (s *mongoStrategy) Name() string { return "mongodb" }

func (s *mongoStrategy) Dependencies() []string {
	return []string{"mongoose@^8.1.0"}
}

func (s *mongoStrategy) DevDependencies() []string { return nil }

// ConfigArtifacts renders the connection module for the project.
func (s *mongoStrategy) ConfigArtifacts(projectName string) ([]scaffold.Artifact, error) {
	content, err := s.renderer.Render("mongo/database.module.ts.tmpl", struct{ Name string }{projectName})
	if err != nil {
		return nil, fmt.Errorf("render database module: %w", err)
	}
	return []scaffold.Artifact{{
		Path:    "src/database/database.module.ts",
		Content: content,
	}}, nil
}

// RegistrationEntry wires the connection module into the aggregator file.
func (s *mongoStrategy) RegistrationEntry() (importLine, identifier string) {
	return "import { DatabaseModule } from './database/database.module';", "DatabaseModule"
}

func (s *mongoStrategy) EntityArtifact(b naming.Bundle) (scaffold.Artifact, error) {
	content, err := s.renderer.Render("mongo/schema.ts.tmpl", s.data(b))
	if err != nil {
		return scaffold.Artifact{}, fmt.Errorf("render schema: %w", err)
	}
	return scaffold.Artifact{
		Path:    path.Join(scaffold.UnitDir(b), "entities", b.Singular+".entity.ts"),
		Content: content,
	}, nil
}

func (s *mongoStrategy) ServiceArtifact(b naming.Bundle, crud bool) (scaffold.Artifact, error) {
	tmpl := "mongo/service.ts.tmpl"
	if crud {
		tmpl = "mongo/service.crud.ts.tmpl"
	}
	content, err := s.renderer.Render(tmpl, s.data(b))
	if err != nil {
		return scaffold.Artifact{}, fmt.Errorf("render service: %w", err)
	}
	return scaffold.Artifact{
		Path:    path.Join(scaffold.UnitDir(b), b.Singular+".service.ts"),
		Content: content,
	}, nil
}

func (s *mongoStrategy) AuthServiceArtifact() (scaffold.Artifact, error) {
	content, err := s.renderer.Render("auth/service.mongo.ts.tmpl", struct{}{})
	if err != nil {
		return scaffold.Artifact{}, fmt.Errorf("render auth service: %w", err)
	}
	return scaffold.Artifact{Path: "src/auth/auth.service.ts", Content: content}, nil
}

func (s *mongoStrategy) data(b naming.Bundle) mongoData {
	return mongoData{
		Class:    b.Class,
		Property: b.Property,
		Singular: b.Singular,
		Plural:   b.Plural,
	}
}
