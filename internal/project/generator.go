package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/anandhu-here/ethakka/internal/config"
	"github.com/anandhu-here/ethakka/internal/defs"
	"github.com/anandhu-here/ethakka/internal/naming"
	"github.com/anandhu-here/ethakka/internal/patch"
	"github.com/anandhu-here/ethakka/internal/scaffold"
	"github.com/anandhu-here/ethakka/internal/strategy"
	"github.com/anandhu-here/ethakka/pkg/version"
)

// Options configures the create-project workflow.
type Options struct {
	Root        string   // Parent directory the project folder is created in.
	Name        string   // Project name token.
	Database    string   // Persistence strategy key; empty means in-memory default.
	WithAuth    bool     // Generate the authentication unit.
	Crud        bool     // Generate five-operation CRUD resources.
	Resources   []string // Resource tokens to generate after the skeleton.
	SkipInstall bool     // Skip dependency installation.
	Force       bool     // Overwrite an existing target without confirmation.
}

// AddOptions configures the add-on workflows on an existing project.
type AddOptions struct {
	SkipInstall bool
	Force       bool
}

// Result summarizes the outcome of a workflow.
type Result struct {
	ProjectRoot  string   // Absolute project root.
	CreatedDirs  []string // Directories created, relative to the root.
	CreatedFiles []string // Files created, relative to the root.
	Warnings     []string // Non-fatal warnings raised along the way.
}

// Generator sequences naming, rendering, and patching into the scaffolding
// workflows. All side effects go through the injected collaborators.
type Generator struct {
	catalog  *scaffold.Catalog
	registry *strategy.Registry
	fs       Filesystem
	runner   ProcessRunner
	confirm  Confirmer
	logger   *slog.Logger
}

// NewGenerator creates a Generator with the given dependencies.
func NewGenerator(catalog *scaffold.Catalog, registry *strategy.Registry, fs Filesystem, runner ProcessRunner, confirm Confirmer, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{
		catalog:  catalog,
		registry: registry,
		fs:       fs,
		runner:   runner,
		confirm:  confirm,
		logger:   logger,
	}
}

// npm package specs the authentication unit needs.
var (
	authDependencies    = []string{"@nestjs/jwt@^10.2.0", "bcryptjs@^2.4.3"}
	authDevDependencies = []string{"@types/bcryptjs@^2.4.6"}
)

// NewProject runs the create-project workflow, optionally composing the
// persistence, auth, and resource steps when requested. Validation and
// strategy resolution happen before anything is written; a failed external
// command aborts the remaining steps without rolling back files already
// written.
func (g *Generator) NewProject(ctx context.Context, opts Options) (*Result, error) {
	if err := naming.ValidateToken(opts.Name); err != nil {
		return nil, fmt.Errorf("project name %q: %w", opts.Name, err)
	}
	for _, r := range opts.Resources {
		if err := naming.ValidateToken(r); err != nil {
			return nil, fmt.Errorf("resource name %q: %w", r, err)
		}
	}

	var strat scaffold.Strategy
	if opts.Database != "" {
		s, err := g.registry.Resolve(opts.Database)
		if err != nil {
			return nil, err
		}
		strat = s
	}

	root := filepath.Join(opts.Root, opts.Name)
	result := &Result{ProjectRoot: root}

	if g.fs.Exists(root) {
		if !opts.Force {
			ok, err := g.confirm.Confirm(fmt.Sprintf("Directory %s already exists. Overwrite it?", root))
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("%s: %w", root, ErrTargetExists)
			}
		}
		if err := g.fs.RemoveTree(root); err != nil {
			return nil, fmt.Errorf("remove %s: %w", root, err)
		}
	}

	g.logger.Info("creating project",
		"root", root,
		"database", opts.Database,
		"auth", opts.WithAuth,
		"crud", opts.Crud,
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	skeleton, err := g.catalog.RenderSkeleton(opts.Name)
	if err != nil {
		return nil, fmt.Errorf("render skeleton: %w", err)
	}
	if err := g.writeArtifacts(root, skeleton, result); err != nil {
		return nil, err
	}

	if err := g.writeManifest(root, &config.Config{
		Name:       opts.Name,
		Database:   opts.Database,
		Auth:       opts.WithAuth,
		Crud:       opts.Crud,
		CLIVersion: version.GetVersion(),
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}, result); err != nil {
		return nil, err
	}

	var extraDeps, extraDev []string

	if strat != nil {
		if err := g.writeDatabaseArtifacts(root, opts.Name, strat, result); err != nil {
			return result, err
		}
		extraDeps = append(extraDeps, strat.Dependencies()...)
		extraDev = append(extraDev, strat.DevDependencies()...)
	}

	if strat != nil || opts.WithAuth {
		if err := g.writeEnvFiles(root, opts.Name, result); err != nil {
			return result, err
		}
	}

	created := map[string]bool{}
	flags := scaffold.Flags{IncludeCrud: opts.Crud}

	if opts.WithAuth {
		if err := g.writeAuthArtifacts(root, strat, flags, created, result); err != nil {
			return result, err
		}
		extraDeps = append(extraDeps, authDependencies...)
		extraDev = append(extraDev, authDevDependencies...)
	}

	for _, name := range opts.Resources {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		b := naming.Normalize(name)
		if opts.WithAuth && b.Singular == defs.ReservedAuthUnit {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("resource %q is reserved by authentication; skipping", name))
			continue
		}
		if err := g.addUnit(root, name, flags, strat, created, result); err != nil {
			return result, err
		}
	}

	if !opts.SkipInstall {
		if err := g.install(ctx, root, "create-project", extraDeps, extraDev); err != nil {
			return result, err
		}
	}

	g.logger.Info("project created",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
	)
	return result, nil
}

// AddResource runs the create-unit workflow for each named resource inside
// an existing project, reusing the flags and strategy recorded in the
// project manifest.
func (g *Generator) AddResource(ctx context.Context, root string, names []string, opts AddOptions) (*Result, error) {
	cfg, err := g.loadManifest(root)
	if err != nil {
		return nil, err
	}
	strat, err := g.strategyFor(cfg)
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		if err := naming.ValidateToken(name); err != nil {
			return nil, fmt.Errorf("resource name %q: %w", name, err)
		}
	}

	result := &Result{ProjectRoot: root}
	flags := scaffold.Flags{IncludeCrud: cfg.Crud}
	created := map[string]bool{}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		b := naming.Normalize(name)
		if cfg.Auth && b.Singular == defs.ReservedAuthUnit {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("resource %q is reserved by authentication; skipping", name))
			continue
		}

		dir := filepath.Join(root, scaffold.UnitDir(b))
		if g.fs.Exists(dir) && !opts.Force {
			ok, err := g.confirm.Confirm(fmt.Sprintf("Resource directory %s already exists. Overwrite it?", dir))
			if err != nil {
				return result, err
			}
			if !ok {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("resource %q already exists; skipped", b.Plural))
				created[b.Singular] = true
				continue
			}
		}

		if err := g.addUnit(root, name, flags, strat, created, result); err != nil {
			return result, err
		}
	}

	return result, nil
}

// AddAuth runs the add-auth workflow on an existing project. When a
// persistence strategy is active the auth business logic is generated
// through it rather than the in-memory default.
func (g *Generator) AddAuth(ctx context.Context, root string, opts AddOptions) (*Result, error) {
	cfg, err := g.loadManifest(root)
	if err != nil {
		return nil, err
	}
	if cfg.Auth {
		return nil, ErrAuthEnabled
	}
	strat, err := g.strategyFor(cfg)
	if err != nil {
		return nil, err
	}

	result := &Result{ProjectRoot: root}
	flags := scaffold.Flags{IncludeCrud: cfg.Crud}
	created := map[string]bool{}

	if err := g.writeEnvFiles(root, cfg.Name, result); err != nil {
		return result, err
	}
	if err := g.writeAuthArtifacts(root, strat, flags, created, result); err != nil {
		return result, err
	}

	cfg.Auth = true
	if err := g.writeManifest(root, cfg, result); err != nil {
		return result, err
	}

	if !opts.SkipInstall {
		if err := g.install(ctx, root, "add-auth", authDependencies, authDevDependencies); err != nil {
			return result, err
		}
	}
	return result, nil
}

// AddDatabase runs the add-persistence workflow on an existing project.
// Resources generated before the switch keep their current service
// implementations; only new resources use the strategy.
func (g *Generator) AddDatabase(ctx context.Context, root, key string, opts AddOptions) (*Result, error) {
	cfg, err := g.loadManifest(root)
	if err != nil {
		return nil, err
	}
	if cfg.Database != "" && !opts.Force {
		return nil, fmt.Errorf("%q: %w", cfg.Database, ErrDatabaseConfigured)
	}

	strat, err := g.registry.Resolve(key)
	if err != nil {
		return nil, err
	}

	result := &Result{ProjectRoot: root}
	if err := g.writeDatabaseArtifacts(root, cfg.Name, strat, result); err != nil {
		return result, err
	}
	if err := g.writeEnvFiles(root, cfg.Name, result); err != nil {
		return result, err
	}

	cfg.Database = strat.Name()
	if err := g.writeManifest(root, cfg, result); err != nil {
		return result, err
	}

	result.Warnings = append(result.Warnings,
		"previously generated resources keep their in-memory services; regenerate them to use the new backend")

	if !opts.SkipInstall {
		if err := g.install(ctx, root, "add-database", strat.Dependencies(), strat.DevDependencies()); err != nil {
			return result, err
		}
	}
	return result, nil
}

// addUnit renders one resource, writes its artifacts, and registers its
// module in the aggregator file. Duplicate singular identities are dropped
// with a warning.
func (g *Generator) addUnit(root, name string, flags scaffold.Flags, strat scaffold.Strategy, created map[string]bool, result *Result) error {
	b := naming.Normalize(name)
	if created[b.Singular] {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("resource %q already generated; skipping duplicate", b.Singular))
		return nil
	}

	artifacts, err := g.catalog.RenderUnit(b, flags, strat)
	if err != nil {
		return fmt.Errorf("render resource %s: %w", b.Singular, err)
	}
	if err := g.writeArtifacts(root, artifacts, result); err != nil {
		return err
	}
	if err := g.register(root, scaffold.UnitImportLine(b), scaffold.ModuleClass(b), result); err != nil {
		return err
	}

	created[b.Singular] = true
	g.logger.Info("resource generated", "name", b.Singular, "files", len(artifacts))
	return nil
}

// writeAuthArtifacts generates the reserved identity unit, the auth unit
// itself, and wires both into the aggregator.
func (g *Generator) writeAuthArtifacts(root string, strat scaffold.Strategy, flags scaffold.Flags, created map[string]bool, result *Result) error {
	if err := g.addUnit(root, defs.ReservedAuthUnit, flags, strat, created, result); err != nil {
		return err
	}

	artifacts, err := g.catalog.RenderAuth(strat)
	if err != nil {
		return fmt.Errorf("render auth: %w", err)
	}
	if err := g.writeArtifacts(root, artifacts, result); err != nil {
		return err
	}
	return g.register(root, "import { AuthModule } from './auth/auth.module';", "AuthModule", result)
}

// writeDatabaseArtifacts renders the strategy's configuration files and
// registers its module when the strategy provides one.
func (g *Generator) writeDatabaseArtifacts(root, projectName string, strat scaffold.Strategy, result *Result) error {
	artifacts, err := strat.ConfigArtifacts(projectName)
	if err != nil {
		return fmt.Errorf("render %s config: %w", strat.Name(), err)
	}
	if err := g.writeArtifacts(root, artifacts, result); err != nil {
		return err
	}
	if reg, ok := strat.(scaffold.Registrar); ok {
		importLine, identifier := reg.RegistrationEntry()
		return g.register(root, importLine, identifier, result)
	}
	return nil
}

// writeEnvFiles renders the environment configuration variants. Files that
// already exist are left alone: they may carry user edits and secrets.
func (g *Generator) writeEnvFiles(root, projectName string, result *Result) error {
	artifacts, err := g.catalog.RenderEnvFiles(projectName)
	if err != nil {
		return fmt.Errorf("render env files: %w", err)
	}
	fresh := artifacts[:0]
	for _, a := range artifacts {
		if g.fs.Exists(filepath.Join(root, a.Path)) {
			continue
		}
		fresh = append(fresh, a)
	}
	return g.writeArtifacts(root, fresh, result)
}

// register wires one import line and registration identifier into the
// aggregator file. A missing registration anchor degrades to a warning: the
// import is still written and the workflow continues.
func (g *Generator) register(root, importLine, identifier string, result *Result) error {
	aggPath := filepath.Join(root, defs.AggregatorPath)
	data, err := g.fs.Read(aggPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", defs.AggregatorPath, err)
	}

	patched, err := patch.Patch(string(data), importLine, identifier)
	switch {
	case errors.Is(err, patch.ErrAnchorNotFound):
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("could not register %s: add it to the imports array of %s manually", identifier, defs.AggregatorPath))
	case err != nil:
		return fmt.Errorf("patch %s: %w", defs.AggregatorPath, err)
	}

	if patched == string(data) {
		return nil
	}
	if err := g.fs.Write(aggPath, []byte(patched)); err != nil {
		return fmt.Errorf("write %s: %w", defs.AggregatorPath, err)
	}
	return nil
}

// writeArtifacts hands rendered artifacts to the filesystem collaborator,
// creating parent directories on demand.
func (g *Generator) writeArtifacts(root string, artifacts []scaffold.Artifact, result *Result) error {
	seenDirs := map[string]bool{}
	for _, d := range result.CreatedDirs {
		seenDirs[d] = true
	}
	for _, a := range artifacts {
		full := filepath.Join(root, filepath.FromSlash(a.Path))
		dir := filepath.Dir(full)
		if err := g.fs.EnsureDir(dir); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
		if rel := filepath.Dir(filepath.FromSlash(a.Path)); rel != "." && !seenDirs[rel] {
			seenDirs[rel] = true
			result.CreatedDirs = append(result.CreatedDirs, rel)
		}
		if err := g.fs.Write(full, a.Content); err != nil {
			return fmt.Errorf("write %s: %w", a.Path, err)
		}
		result.CreatedFiles = append(result.CreatedFiles, a.Path)
	}
	return nil
}

func (g *Generator) writeManifest(root string, cfg *config.Config, result *Result) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := g.fs.Write(filepath.Join(root, config.FileName), data); err != nil {
		return fmt.Errorf("write %s: %w", config.FileName, err)
	}
	result.CreatedFiles = append(result.CreatedFiles, config.FileName)
	return nil
}

func (g *Generator) loadManifest(root string) (*config.Config, error) {
	data, err := g.fs.Read(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", root, config.ErrNotFound)
	}
	return config.Unmarshal(data)
}

func (g *Generator) strategyFor(cfg *config.Config) (scaffold.Strategy, error) {
	if cfg.Database == "" {
		return nil, nil
	}
	return g.registry.Resolve(cfg.Database)
}

// install runs npm for the base package set plus any extra dependency
// specs. A failed command is fatal to the enclosing workflow step.
func (g *Generator) install(ctx context.Context, root, step string, deps, dev []string) error {
	run := func(args ...string) error {
		g.logger.Info("running command", "dir", root, "cmd", "npm "+strings.Join(args, " "))
		if err := g.runner.Run(ctx, root, "npm", args...); err != nil {
			return &ProcessError{Step: step, Command: append([]string{"npm"}, args...), Err: err}
		}
		return nil
	}

	if err := run("install"); err != nil {
		return err
	}
	if len(deps) > 0 {
		if err := run(append([]string{"install"}, deps...)...); err != nil {
			return err
		}
	}
	if len(dev) > 0 {
		if err := run(append([]string{"install", "--save-dev"}, dev...)...); err != nil {
			return err
		}
	}
	return nil
}
