package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"
	"github.com/spf13/cobra"

	"hpxml-mapper/hpxml"
	"hpxml-mapper/internal/pipeline"
	"hpxml-mapper/internal/xmlpath"
)

func translateCmd(a *app) *cobra.Command {
	var (
		out      string
		collapse bool
	)

	cmd := &cobra.Command{
		Use:   "translate <document>",
		Short: "Load a document into the object graph and serialize it back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("collapse") {
				a.cfg.CollapseSurfaces = collapse
			}

			vs, err := a.validators()
			if err != nil {
				return err
			}

			res, err := pipeline.Load(cmd.Context(), args[0], a.options(vs))
			if err != nil {
				var le *pipeline.LoadError
				if errors.As(err, &le) {
					printLines(cmd.ErrOrStderr(), le.Errors)
				}

				return err
			}

			if len(res.Violations) > 0 {
				printLines(cmd.ErrOrStderr(), res.Violations)
				return fmt.Errorf("%s: %d violation(s)", args[0], len(res.Violations))
			}

			if len(res.Merges) > 0 {
				a.log.Info().Str("source", args[0]).Int("merged", len(res.Merges)).Msg("collapsed surfaces")
			}

			if out != "" {
				return res.Document.Write(out)
			}

			data, err := res.Document.Bytes()
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&collapse, "collapse", false, "Collapse duplicate enclosure surfaces")

	return cmd
}

func selectCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "select <document>",
		Short: "Extract one building from a container document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.BuildingID == "" {
				return errors.New("select requires --building")
			}

			doc, err := xmlpath.ReadFile(args[0])
			if err != nil {
				return err
			}

			removed, err := hpxml.SelectBuilding(doc.Root(), a.cfg.BuildingID, false)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			a.log.Debug().Str("source", args[0]).Str("building_id", a.cfg.BuildingID).Int("removed", removed).Msg("selected building")

			return emit(cmd.OutOrStdout(), doc, out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")

	return cmd
}

func mergeCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "merge <document>...",
		Short: "Combine the buildings of several documents into one",
		Long: `Merge keeps the header of the first document and appends the buildings
of every document in order. Identifiers of the n-th building get the
suffix _n so they stay unique.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expand(args)
			if err != nil {
				return err
			}

			docs := make([]*etree.Document, 0, len(paths))

			for _, p := range paths {
				doc, err := xmlpath.ReadFile(p)
				if err != nil {
					return err
				}

				docs = append(docs, doc)
			}

			merged, err := hpxml.MergeDocuments(docs...)
			if err != nil {
				return err
			}

			a.log.Info().Strs("sources", paths).Strs("buildings", hpxml.BuildingIDs(merged.Root())).Msg("merged documents")

			return emit(cmd.OutOrStdout(), merged, out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")

	return cmd
}

// emit writes doc to path, or to w when path is empty.
func emit(w io.Writer, doc *etree.Document, path string) error {
	if path != "" {
		return xmlpath.WriteFile(doc, path)
	}

	data, err := xmlpath.Bytes(doc)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
