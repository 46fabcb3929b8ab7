package codegen

// This file resolves the wrap-site settings for a package directory and
// writes or checks its generated report_gen.go.

import (
	"bytes"
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"erreport/pkg/report"
)

// Options are the per-run overrides, typically from CLI flags.
// Empty fields fall back to the config file, then to defaults.
type Options struct {
	Dir        string
	ConfigPath string
	Name       string
	Version    string
	Policy     string
	Package    string
	Output     string
	Import     string
}

// Site is a fully resolved wrap site, the input of the template.
type Site struct {
	Package    string
	Name       string
	Version    string
	Policy     report.Policy
	RelDir     string
	ImportPath string // import path of the core report package
	Output     string // absolute path of the generated file
	ConfigPath string // config file that was applied, if any
}

// Result describes one generation run.
type Result struct {
	Site    *Site
	Content []byte
	Changed bool
}

// Generator resolves and writes wrap-site files.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a Generator that logs through logger.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// Resolve merges defaults, the config file and opts into a Site.
func (g *Generator) Resolve(opts Options) (*Site, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, wrap(err)
	}

	mod, err := FindModule(dir)
	if err != nil {
		return nil, wrap(err)
	}
	relDir, err := mod.RelDir(dir)
	if err != nil {
		return nil, wrap(err)
	}

	cfg := Config{
		Component: ComponentConfig{Name: mod.Path, Version: DefaultVersion},
		Policy:    report.TagTransitions.String(),
		Output:    DefaultOutput,
		Import:    ReportImportPath,
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = findConfig(dir, mod.Root)
	}
	if configPath != "" {
		fileCfg, err := LoadConfig(configPath)
		if err != nil {
			return nil, wrap(err)
		}
		cfg.merge(*fileCfg)
		g.logger.Debug("Applied config file", zap.String("path", configPath))
	}

	cfg.merge(Config{
		Component: ComponentConfig{Name: opts.Name, Version: opts.Version},
		Policy:    opts.Policy,
		Package:   opts.Package,
		Output:    opts.Output,
		Import:    opts.Import,
	})

	policy, err := report.ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, wrap(fmt.Errorf("%w: %v", ErrInvalidConfig, err))
	}
	if err := validateOutput(cfg.Output); err != nil {
		return nil, wrap(err)
	}
	if err := validateIdentity(cfg.Component.Name, cfg.Component.Version); err != nil {
		return nil, wrap(err)
	}
	if err := validateImport(cfg.Import); err != nil {
		return nil, wrap(err)
	}

	pkg := cfg.Package
	if pkg == "" {
		if pkg, err = packageName(dir, cfg.Output); err != nil {
			return nil, wrap(err)
		}
	}

	site := &Site{
		Package:    pkg,
		Name:       cfg.Component.Name,
		Version:    cfg.Component.Version,
		Policy:     policy,
		RelDir:     relDir,
		ImportPath: cfg.Import,
		Output:     filepath.Join(dir, cfg.Output),
		ConfigPath: configPath,
	}
	g.logger.Debug("Resolved wrap site",
		zap.String("package", site.Package),
		zap.String("component", site.Name+"@"+site.Version),
		zap.Stringer("policy", site.Policy),
		zap.String("rel_dir", site.RelDir),
		zap.String("import", site.ImportPath),
	)
	return site, nil
}

// Render produces the generated file for site.
func (g *Generator) Render(site *Site) ([]byte, error) {
	return render(site)
}

// Generate writes the wrap-site file for opts. When dryRun is set nothing is
// written. Files that exist without the generated header are never replaced.
func (g *Generator) Generate(opts Options, dryRun bool) (*Result, error) {
	res, existing, err := g.plan(opts)
	if err != nil {
		return nil, wrap(err)
	}
	if existing != nil && !isGenerated(existing) {
		return nil, wrap(fmt.Errorf("%w: %s exists and was not generated by erreport", ErrInvalidConfig, res.Site.Output))
	}
	if !res.Changed || dryRun {
		return res, nil
	}

	// #nosec G306 -- generated source is meant to be world-readable.
	if err := os.WriteFile(res.Site.Output, res.Content, 0o644); err != nil {
		return nil, wrap(err)
	}
	g.logger.Info("Wrote wrap site", zap.String("file", res.Site.Output))
	return res, nil
}

// Check reports ErrStale when the file on disk differs from what Generate
// would write.
func (g *Generator) Check(opts Options) (*Result, error) {
	res, _, err := g.plan(opts)
	if err != nil {
		return nil, wrap(err)
	}
	if res.Changed {
		return res, wrap(fmt.Errorf("%w: %s", ErrStale, res.Site.Output))
	}
	return res, nil
}

func (g *Generator) plan(opts Options) (*Result, []byte, error) {
	site, err := g.Resolve(opts)
	if err != nil {
		return nil, nil, wrap(err)
	}
	content, err := g.Render(site)
	if err != nil {
		return nil, nil, wrap(err)
	}

	existing, err := os.ReadFile(site.Output)
	if err != nil && !os.IsNotExist(err) {
		return nil, nil, wrap(err)
	}
	return &Result{Site: site, Content: content, Changed: !bytes.Equal(existing, content)}, existing, nil
}

func isGenerated(src []byte) bool {
	return bytes.HasPrefix(src, []byte(Header))
}

// packageName reads the package clause of the first non-test Go file in dir,
// skipping the generated output itself.
func packageName(dir, output string) (string, error) {
	entries, err := wrapValue(os.ReadDir(dir))
	if err != nil {
		return "", err
	}

	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || name == output {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.PackageClauseOnly)
		if err != nil {
			return "", wrap(err)
		}
		return f.Name.Name, nil
	}
	return "", wrap(fmt.Errorf("%w: no Go files in %s; use --package", ErrPackageNotFound, dir))
}
