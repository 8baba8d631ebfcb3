package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hpxml-mapper/internal/config"
	"hpxml-mapper/internal/diagnostic"
	"hpxml-mapper/internal/gen"
	"hpxml-mapper/internal/schema"
)

const defaultSchema = "hpxml/schema.yaml"

func genCmd(a *app) *cobra.Command {
	var (
		schemaPath string
		resolved   string
		pkg        string
		noComments bool
	)

	genCfg := gen.DefaultGeneratorConfig()

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate entity code from the schema declarations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := schema.LoadFile(schemaPath)
			if err != nil {
				return err
			}

			diags := schema.Validate(f)
			for _, msg := range diagnostic.Messages(schemaPath, diags.Warnings) {
				a.log.Warn().Msg(msg)
			}

			for _, msg := range diagnostic.Messages(schemaPath, diags.Infos) {
				a.log.Debug().Msg(msg)
			}

			genCfg.PackageName = pkg
			genCfg.GenerateComments = !noComments

			files, err := gen.NewGenerator(genCfg).Generate(f)
			if err != nil {
				return err
			}

			written, err := gen.WriteFiles(files, genCfg.OutputDir)
			if err != nil {
				return err
			}

			for _, name := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", name)
			}

			if resolved != "" {
				if err := schema.WriteFile(f, resolved); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", resolved)
			}

			a.log.Info().Str("schema", schemaPath).Int("written", len(written)).Int("unchanged", len(files)-len(written)).Msg("generated entities")

			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", defaultSchema, "Schema declaration file")
	cmd.Flags().StringVarP(&genCfg.OutputDir, "out", "o", genCfg.OutputDir, "Output directory")
	cmd.Flags().StringVar(&resolved, "resolved", "", "Also write the schema with every default filled in to this file")
	cmd.Flags().StringVar(&pkg, "package", "", "Override the package name declared by the schema")
	cmd.Flags().BoolVar(&noComments, "no-comments", false, "Omit doc comments on generated types")

	return cmd
}

func initCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file with the current settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFile
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := a.cfg.SaveToFile(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
