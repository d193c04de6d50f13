// Package scaffold renders the source artifacts of a generated project: the
// project skeleton, per-resource feature slices, authentication artifacts,
// and environment configuration files. Rendering is pure and deterministic;
// writing artifacts to disk is the caller's concern.
package scaffold

import (
	"fmt"
	"path"

	"github.com/anandhu-here/ethakka/internal/naming"
)

// Artifact is one rendered output file. Path is relative to the project root.
type Artifact struct {
	Path    string
	Content []byte
}

// Flags selects which artifact kinds a resource render emits.
type Flags struct {
	// IncludeCrud emits the five-operation controller/service pair plus DTO
	// shape files. When false only a minimal no-operation pair is rendered.
	IncludeCrud bool
}

// Strategy is the capability contract a persistence backend must implement
// in full. The catalog delegates entity and business-logic rendering to the
// active Strategy; with no Strategy the built-in in-memory templates apply.
type Strategy interface {
	// Name returns the registry key of the strategy.
	Name() string

	// Dependencies returns npm package specs the generated project needs.
	Dependencies() []string

	// DevDependencies returns npm dev-only package specs.
	DevDependencies() []string

	// ConfigArtifacts renders backend configuration files (connection
	// module and the like) for a project.
	ConfigArtifacts(projectName string) ([]Artifact, error)

	// EntityArtifact renders the entity/model file for one resource.
	EntityArtifact(b naming.Bundle) (Artifact, error)

	// ServiceArtifact renders the business-logic file for one resource.
	ServiceArtifact(b naming.Bundle, crud bool) (Artifact, error)

	// AuthServiceArtifact renders the authentication business-logic file.
	AuthServiceArtifact() (Artifact, error)
}

// Registrar is implemented by strategies whose configuration artifacts
// include a module that must be wired into the aggregator file.
type Registrar interface {
	// RegistrationEntry returns the import statement and the identifier to
	// insert into the aggregator's registration list.
	RegistrationEntry() (importLine, identifier string)
}

// Catalog renders artifacts from the embedded template set.
type Catalog struct {
	renderer Renderer
}

// NewCatalog creates a Catalog backed by the embedded templates.
func NewCatalog() (*Catalog, error) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		return nil, err
	}
	return &Catalog{renderer: NewRenderer(fsys)}, nil
}

// unitData is the substitution set for resource templates. Every identifier
// comes straight from the naming bundle so generated files stay mutually
// consistent.
type unitData struct {
	Class       string
	Property    string
	Singular    string
	Plural      string
	Kebab       string
	Snake       string
	ModuleClass string
}

func newUnitData(b naming.Bundle) unitData {
	if b.Singular == "" || b.Plural == "" || b.Class == "" || b.Property == "" {
		panic(fmt.Sprintf("scaffold: incomplete naming bundle %+v", b))
	}
	return unitData{
		Class:       b.Class,
		Property:    b.Property,
		Singular:    b.Singular,
		Plural:      b.Plural,
		Kebab:       b.Kebab,
		Snake:       b.Snake,
		ModuleClass: ModuleClass(b),
	}
}

// ModuleClass is the exported identifier of a resource's module class,
// e.g. "InvoiceModule" for the token "invoices".
func ModuleClass(b naming.Bundle) string {
	return b.Class + "Module"
}

// UnitDir is the resource directory relative to the project root.
func UnitDir(b naming.Bundle) string {
	return path.Join("src", b.Plural)
}

// UnitImportLine is the aggregator import statement for a resource module.
func UnitImportLine(b naming.Bundle) string {
	return fmt.Sprintf("import { %s } from './%s/%s.module';", ModuleClass(b), b.Plural, b.Singular)
}

// RenderUnit renders the full artifact set for one resource: module file,
// entity (or schema via the strategy), handler and logic files, and the DTO
// shape files when CRUD is requested.
func (c *Catalog) RenderUnit(b naming.Bundle, flags Flags, strategy Strategy) ([]Artifact, error) {
	data := newUnitData(b)
	dir := UnitDir(b)

	var artifacts []Artifact

	module, err := c.render("unit/module.ts.tmpl", data, path.Join(dir, b.Singular+".module.ts"))
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, module)

	controllerTmpl := "unit/controller.ts.tmpl"
	if flags.IncludeCrud {
		controllerTmpl = "unit/controller.crud.ts.tmpl"
	}
	controller, err := c.render(controllerTmpl, data, path.Join(dir, b.Singular+".controller.ts"))
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, controller)

	service, err := c.serviceArtifact(b, flags.IncludeCrud, strategy)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, service)

	entity, err := c.entityArtifact(b, strategy)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, entity)

	if flags.IncludeCrud {
		create, err := c.render("unit/dto.create.ts.tmpl", data, path.Join(dir, "dto", "create-"+b.Singular+".dto.ts"))
		if err != nil {
			return nil, err
		}
		update, err := c.render("unit/dto.update.ts.tmpl", data, path.Join(dir, "dto", "update-"+b.Singular+".dto.ts"))
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, create, update)
	}

	return artifacts, nil
}

func (c *Catalog) serviceArtifact(b naming.Bundle, crud bool, strategy Strategy) (Artifact, error) {
	if strategy != nil {
		return strategy.ServiceArtifact(b, crud)
	}
	return c.ServiceArtifact(b, crud)
}

func (c *Catalog) entityArtifact(b naming.Bundle, strategy Strategy) (Artifact, error) {
	if strategy != nil {
		return strategy.EntityArtifact(b)
	}
	return c.EntityArtifact(b)
}

// ServiceArtifact renders the built-in in-memory business-logic file. The
// generated service keeps records in an insertion-ordered in-process list
// keyed by a synthetic identifier and raises not-found for absent keys.
func (c *Catalog) ServiceArtifact(b naming.Bundle, crud bool) (Artifact, error) {
	tmpl := "unit/service.ts.tmpl"
	if crud {
		tmpl = "unit/service.crud.ts.tmpl"
	}
	return c.render(tmpl, newUnitData(b), path.Join(UnitDir(b), b.Singular+".service.ts"))
}

// EntityArtifact renders the built-in plain entity class file.
func (c *Catalog) EntityArtifact(b naming.Bundle) (Artifact, error) {
	return c.render("unit/entity.ts.tmpl", newUnitData(b), path.Join(UnitDir(b), "entities", b.Singular+".entity.ts"))
}

// skeletonData is the substitution set for project skeleton templates.
type skeletonData struct {
	Name string
}

// skeletonFiles maps skeleton templates to their output paths.
var skeletonFiles = []struct {
	tmpl string
	out  string
}{
	{"skeleton/package.json.tmpl", "package.json"},
	{"skeleton/tsconfig.json.tmpl", "tsconfig.json"},
	{"skeleton/nest-cli.json.tmpl", "nest-cli.json"},
	{"skeleton/gitignore.tmpl", ".gitignore"},
	{"skeleton/README.md.tmpl", "README.md"},
	{"skeleton/main.ts.tmpl", "src/main.ts"},
	{"skeleton/app.module.ts.tmpl", "src/app.module.ts"},
	{"skeleton/app.controller.ts.tmpl", "src/app.controller.ts"},
	{"skeleton/app.service.ts.tmpl", "src/app.service.ts"},
}

// RenderSkeleton renders the minimal project skeleton, including the
// aggregator file with its canonical empty registration list.
func (c *Catalog) RenderSkeleton(projectName string) ([]Artifact, error) {
	data := skeletonData{Name: projectName}
	artifacts := make([]Artifact, 0, len(skeletonFiles))
	for _, f := range skeletonFiles {
		a, err := c.render(f.tmpl, data, f.out)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

// authFiles maps strategy-independent auth templates to their output paths.
var authFiles = []struct {
	tmpl string
	out  string
}{
	{"auth/module.ts.tmpl", "src/auth/auth.module.ts"},
	{"auth/controller.ts.tmpl", "src/auth/auth.controller.ts"},
	{"auth/jwt-auth.guard.ts.tmpl", "src/auth/jwt-auth.guard.ts"},
	{"auth/dto.login.ts.tmpl", "src/auth/dto/login.dto.ts"},
	{"auth/dto.register.ts.tmpl", "src/auth/dto/register.dto.ts"},
}

// RenderAuth renders the authentication unit. When a persistence strategy is
// active its generator produces the business-logic file; otherwise the
// built-in in-memory credential store is used.
func (c *Catalog) RenderAuth(strategy Strategy) ([]Artifact, error) {
	var artifacts []Artifact
	for _, f := range authFiles {
		a, err := c.render(f.tmpl, struct{}{}, f.out)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}

	var service Artifact
	var err error
	if strategy != nil {
		service, err = strategy.AuthServiceArtifact()
	} else {
		service, err = c.AuthServiceArtifact()
	}
	if err != nil {
		return nil, err
	}
	return append(artifacts, service), nil
}

// AuthServiceArtifact renders the built-in in-memory auth business logic.
func (c *Catalog) AuthServiceArtifact() (Artifact, error) {
	return c.render("auth/service.ts.tmpl", struct{}{}, "src/auth/auth.service.ts")
}

func (c *Catalog) render(tmpl string, data any, out string) (Artifact, error) {
	content, err := c.renderer.Render(tmpl, data)
	if err != nil {
		return Artifact{}, fmt.Errorf("render %s: %w", out, err)
	}
	return Artifact{Path: out, Content: content}, nil
}
