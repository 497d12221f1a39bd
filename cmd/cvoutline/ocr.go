package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/cvoutline/layoutjson"
	"github.com/tsawler/cvoutline/ocr"
)

func newOCRCmd(a *app) *cobra.Command {
	var (
		outFile  string
		dpi      int
		lang     string
		psm      int
		textOnly bool
	)

	cmd := &cobra.Command{
		Use:   "ocr IMAGE...",
		Short: "Build layout JSON from scanned page images, one image per page",
		Long: "ocr recognises each image with Tesseract and writes the pages as layout JSON. " +
			"With --text it prints the recognised plain text instead. " +
			"It needs a binary built with -tags ocr.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outFile == "" && !textOnly {
				return fmt.Errorf("--out is required")
			}
			if cmd.Flags().Changed("dpi") {
				a.cfg.OCR.DPI = dpi
			}
			if cmd.Flags().Changed("lang") {
				a.cfg.OCR.Language = lang
			}
			if cmd.Flags().Changed("psm") {
				a.cfg.OCR.PageSegMode = psm
			}

			client, err := ocr.New()
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.SetLanguage(a.cfg.OCR.Language); err != nil {
				return fmt.Errorf("failed to set language: %w", err)
			}
			if err := client.SetDPI(a.cfg.OCR.DPI); err != nil {
				return err
			}
			if err := client.SetPageSegMode(ocr.PageSegMode(a.cfg.OCR.PageSegMode)); err != nil {
				return fmt.Errorf("failed to set page segmentation mode: %w", err)
			}

			images := make([][]byte, len(args))
			for i, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read image: %w", err)
				}
				images[i] = data
			}

			if textOnly {
				return withOutput(cmd, outFile, func(w io.Writer) error {
					return writePageTexts(w, client, images)
				})
			}

			doc, err := client.DocumentFromImages(images)
			if err != nil {
				return err
			}
			if err := layoutjson.WriteFile(outFile, doc); err != nil {
				return err
			}

			a.logger.Info("layout written", "pages", doc.PageCount(), "output", outFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Layout JSON file to write")
	cmd.Flags().IntVar(&dpi, "dpi", 0, "Scan resolution of the images (default from config)")
	cmd.Flags().StringVar(&lang, "lang", "", "Tesseract language(s), e.g. eng or eng+fra (default from config)")
	cmd.Flags().IntVar(&psm, "psm", 0, "Tesseract page segmentation mode (default from config)")
	cmd.Flags().BoolVar(&textOnly, "text", false, "Print recognised plain text instead of writing layout JSON")
	return cmd
}

// writePageTexts prints the text of each image, pages separated by a form feed
func writePageTexts(w io.Writer, client *ocr.Client, images [][]byte) error {
	for i, data := range images {
		text, err := client.RecognizeImage(data)
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		if i > 0 {
			if _, err := io.WriteString(w, "\f"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}
