package cli

// This file implements the "gen" command, which writes or checks the
// report_gen.go wrap-site file of a package.

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"erreport/internal/codegen"
)

// GenManager runs wrap-site generation with injected dependencies.
type GenManager struct {
	gen     *codegen.Generator
	printer *Printer
	logger  *zap.Logger
}

// NewGenManager creates a GenManager with the given dependencies.
func NewGenManager(gen *codegen.Generator, printer *Printer, logger *zap.Logger) *GenManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if printer == nil {
		printer = DefaultPrinter
	}
	return &GenManager{gen: gen, printer: printer, logger: logger}
}

// DefaultGenManager returns a GenManager printing to stdout.
func DefaultGenManager(logger *zap.Logger) *GenManager {
	return NewGenManager(codegen.NewGenerator(logger), DefaultPrinter, logger)
}

// NewGenCmd builds the gen subcommand.
func NewGenCmd(logger *zap.Logger) *cobra.Command {
	return NewGenCmdWithManager(DefaultGenManager(logger))
}

// NewGenCmdWithManager returns the gen subcommand using the provided manager.
func NewGenCmdWithManager(m *GenManager) *cobra.Command {
	var opts codegen.Options
	var check, dryRun, quiet bool

	cmd := &cobra.Command{
		Use:   "gen [dir]",
		Short: "Generate the package wrap site",
		Long: `Generate report_gen.go for the package in dir (default: current directory).

The generated file declares the package's component identity and the wrap and
wrapValue helpers. Settings come from .erreport.yaml in the package directory or
the module root, then from flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Dir = args[0]
			}
			if quiet {
				m.printer.Quiet = true
			}
			if check && dryRun {
				return wrap(ErrCheckDryRun)
			}
			if check {
				return m.Check(opts)
			}
			return m.Generate(opts, dryRun)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Name, "name", "", "Component name (default: module path)")
	f.StringVar(&opts.Version, "version", "", "Component version (default: "+codegen.DefaultVersion+")")
	f.StringVar(&opts.Policy, "policy", "", "Tagging policy: transitions or outermost")
	f.StringVar(&opts.Package, "package", "", "Package name (default: read from the directory)")
	f.StringVar(&opts.Output, "output", "", "Output file name (default: "+codegen.DefaultOutput+")")
	f.StringVar(&opts.Import, "import", "", "Import path of the report package (default: "+codegen.ReportImportPath+")")
	f.StringVar(&opts.ConfigPath, "config", "", "Config file (default: nearest "+codegen.ConfigFileName+")")
	f.BoolVar(&check, "check", false, "Fail if the file on disk is out of date instead of writing it")
	f.BoolVar(&dryRun, "dry-run", false, "Print the generated file instead of writing it")
	f.BoolVarP(&quiet, "quiet", "q", false, "Only print errors")

	return cmd
}

// Generate writes the wrap site for opts, or prints it when dryRun is set.
func (m *GenManager) Generate(opts codegen.Options, dryRun bool) error {
	m.printer.Step(fmt.Sprintf("Resolving wrap site in %s", dirOrCurrent(opts.Dir)))
	res, err := m.gen.Generate(opts, dryRun)
	if err != nil {
		m.printer.Error("Failed to generate wrap site")
		logStructuredError(m.logger, err, "Failed to generate wrap site")
		return wrap(err)
	}

	m.printSite(res.Site)
	switch {
	case !res.Changed:
		m.printer.Info(fmt.Sprintf("%s is up to date", res.Site.Output))
	case dryRun:
		m.printer.Warn(fmt.Sprintf("%s, %s not written", Yellow("Dry run"), res.Site.Output))
		m.printer.Printf("%s", res.Content)
	default:
		m.printer.Success(fmt.Sprintf("Wrote %s", res.Site.Output))
	}
	return nil
}

// Check fails with codegen.ErrStale when the wrap site needs regenerating.
func (m *GenManager) Check(opts codegen.Options) error {
	m.printer.Step(fmt.Sprintf("Checking wrap site in %s", dirOrCurrent(opts.Dir)))
	res, err := m.gen.Check(opts)
	if errors.Is(err, codegen.ErrStale) {
		m.printer.Error(fmt.Sprintf("%s is %s; run erreport gen", res.Site.Output, Red("out of date")))
		logStructuredError(m.logger, err, "Wrap site is stale")
		return wrap(err)
	}
	if err != nil {
		m.printer.Error("Failed to check wrap site")
		logStructuredError(m.logger, err, "Failed to check wrap site")
		return wrap(err)
	}
	m.printer.Success(fmt.Sprintf("%s is %s", res.Site.Output, Green("up to date")))
	return nil
}

func dirOrCurrent(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

func (m *GenManager) printSite(site *codegen.Site) {
	m.printer.Section("Wrap site")
	source := "defaults"
	if site.ConfigPath != "" {
		source = site.ConfigPath
	}
	m.printer.TableBoxed([][]string{
		{"Property", "Value"},
		{"Package", site.Package},
		{"Component", Cyan(site.Name + "@" + site.Version)},
		{"Policy", site.Policy.String()},
		{"Root-relative dir", site.RelDir},
		{"Report import", site.ImportPath},
		{"Config", source},
	})
}
