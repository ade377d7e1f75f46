package main

import (
	"fmt"
	"io"
	"os"

	"github.com/psisite/internal/config"
	"github.com/psisite/internal/service"
	"github.com/spf13/cobra"
)

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Export, import and seed site content",
	}

	cmd.AddCommand(newContentExportCmd())
	cmd.AddCommand(newContentImportCmd())
	cmd.AddCommand(newContentSeedCmd())
	return cmd
}

func newContentExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all site content as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := exportService()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" && outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outPath, err)
				}
				defer f.Close()
				w = f
			}
			return svc.WriteYAML(w)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")
	return cmd
}

func newContentImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace site content from a YAML export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			doc, err := service.ReadYAML(f)
			if err != nil {
				return err
			}

			svc, err := exportService()
			if err != nil {
				return err
			}
			report, err := svc.Import(doc)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), "Imported", report)
			return nil
		},
	}
	return cmd
}

func newContentSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill missing content with defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := exportService()
			if err != nil {
				return err
			}
			report, err := svc.Seed()
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), "Seeded", report)
			return nil
		},
	}
}

func exportService() (*service.ExportService, error) {
	gdb, err := openDatabase(config.Load())
	if err != nil {
		return nil, err
	}
	return service.NewExportService(gdb), nil
}

func printReport(w io.Writer, verb string, report service.ImportReport) {
	fmt.Fprintf(w, "%s %d config entries, %d services, %d testimonials, %d faq, %d gallery images\n",
		verb, report.ConfigEntries, report.Services, report.Testimonials, report.FAQ, report.Gallery)
	if report.Footer {
		fmt.Fprintln(w, "Footer settings written")
	}
}
