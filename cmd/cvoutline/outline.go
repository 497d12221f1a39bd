package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/cvoutline"
	"github.com/tsawler/cvoutline/export"
)

func newOutlineCmd(a *app) *cobra.Command {
	var (
		format  string
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "outline FILE",
		Short: "Print the title and heading outline of a layout file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			outline, warnings, err := a.processor(args[0]).Outline()
			if err != nil {
				return err
			}
			logWarnings(a, args[0], warnings)

			exporter := export.NewExporterWithConfig(export.ExportConfig{Format: f, IncludePages: true})
			return withOutput(cmd, outFile, func(w io.Writer) error {
				return exporter.ExportOutline(outline, w)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, markdown, html or csv")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write to this file instead of stdout")
	return cmd
}

func newProfileCmd(a *app) *cobra.Command {
	var (
		format       string
		outFile      string
		withSections bool
	)

	cmd := &cobra.Command{
		Use:   "profile FILE",
		Short: "Print the candidate profile of a layout file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			res, err := a.processor(args[0]).Result()
			if err != nil {
				return err
			}
			logWarnings(a, args[0], res.Warnings)
			if len(res.Boilerplate) > 0 {
				a.logger.Info("repeated content removed", "source", args[0], "summary", res.BoilerplateSummary())
			}

			exporter := export.NewExporterWithConfig(export.ExportConfig{
				Format:          f,
				IncludeSections: withSections,
				IncludePages:    true,
			})
			return withOutput(cmd, outFile, func(w io.Writer) error {
				return exporter.ExportProfile(res.Profile, res.Sections, w)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, markdown, html or csv")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&withSections, "sections", false, "Include section content and highlights")
	return cmd
}

// withOutput runs write against the named file, or stdout when empty
func withOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func logWarnings(a *app, source string, warnings []cvoutline.Warning) {
	for _, w := range warnings {
		a.logger.Warn(w.Message, "source", source, "code", string(w.Code), "page", w.Page)
	}
}
