// Package main provides the hpxml-mapper command line tool.
//
// hpxml-mapper loads building-description documents into a typed object
// graph and writes them back:
//   - validate checks documents against rule sets, an XSD and the graph invariants
//   - translate round-trips a document, optionally collapsing duplicate surfaces
//   - select and merge extract or combine the buildings of container documents
//   - gen regenerates the entity code from the schema declarations
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hpxml-mapper/internal/config"
	"hpxml-mapper/internal/logging"
	"hpxml-mapper/internal/pipeline"
	"hpxml-mapper/internal/rules"
)

const appName = "hpxml-mapper"

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app is the state shared by every command, filled in before a command runs.
type app struct {
	configPath string
	logLevel   string
	buildingID string
	multiUnit  bool

	cfg *config.Config
	log zerolog.Logger
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Map HPXML documents to typed object graphs",
		Long: `hpxml-mapper materializes HPXML building-description documents into a
typed object graph, checks referential and business-rule invariants and
serializes the graph back to a byte-stable document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file path (default "+config.DefaultFile+" when present)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVarP(&a.buildingID, "building", "b", "", "Building ID to select from container documents")
	flags.BoolVar(&a.multiUnit, "multi-unit", false, "Keep every building of container documents")

	cmd.AddCommand(
		validateCmd(a),
		translateCmd(a),
		selectCmd(a),
		mergeCmd(a),
		genCmd(a),
		initCmd(a),
	)

	return cmd
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	if flags.Changed("building") {
		cfg.BuildingID = a.buildingID
	}

	if flags.Changed("multi-unit") {
		cfg.MultiUnit = a.multiUnit
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg, a.log = cfg, log

	return nil
}

// validators returns the built-in rule set, the configured rule sets and,
// when an XSD is configured, xmllint.
func (a *app) validators() ([]pipeline.Validator, error) {
	vs := []pipeline.Validator{rules.Default()}

	for _, path := range a.cfg.Rules {
		rs, err := rules.LoadFile(path)
		if err != nil {
			return nil, err
		}

		vs = append(vs, rs)
	}

	if a.cfg.XSD != "" {
		vs = append(vs, rules.Exec{Binary: a.cfg.XMLLint, Schema: a.cfg.XSD})
	}

	return vs, nil
}

func (a *app) options(vs []pipeline.Validator) pipeline.Options {
	return pipeline.Options{
		BuildingID:       a.cfg.BuildingID,
		MultiUnit:        a.cfg.MultiUnit,
		Validators:       vs,
		TempDir:          a.cfg.TempDir,
		CollapseSurfaces: a.cfg.CollapseSurfaces,
		Logger:           a.log,
	}
}
