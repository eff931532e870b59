package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scamshield/scamshield/internal/cli"
	"github.com/scamshield/scamshield/internal/model"
	"github.com/scamshield/scamshield/internal/normalize"
	"github.com/scamshield/scamshield/internal/upload"
)

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <screenshot>",
		Short: "Extract text from a screenshot via server-side OCR",
		Long: `Upload a screenshot (PNG, JPEG, GIF, or WebP up to 5MB) and print the
text the service extracts from it. With --analyze the extracted text is
fed straight into text analysis.`,
		Args: cobra.ExactArgs(1),
		RunE: runExtract,
	}

	cmd.Flags().Bool("analyze", false, "analyze the extracted text immediately")
	cmd.Flags().Bool("json", false, "print the normalized result as JSON (with --analyze)")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	analyze, _ := cmd.Flags().GetBool("analyze")
	asJSON, _ := cmd.Flags().GetBool("json")

	payload, err := openUpload(args[0], upload.ModalityScreenshot, false)
	if err != nil {
		return err
	}
	defer payload.Close()

	client, err := newClient()
	if err != nil {
		return err
	}

	var text string
	err = runRequest(ctx, "Extracting text from image", func(ctx context.Context) error {
		var reqErr error
		text, reqErr = client.ExtractText(ctx, payload.File())
		return reqErr
	})
	if err != nil {
		return err
	}

	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text found in the image")
	}

	if normalize.IsPlaceholderExtract(text) {
		fmt.Println(cli.FormatWarning("OCR is in demo mode; the text below is a sample, not a real extraction"))
		fmt.Println(cli.SubtleStyle.Render(text))
		return nil
	}

	fmt.Println(cli.FormatSuccess("Text extracted successfully"))
	fmt.Println(cli.RenderBox("Extracted Text", text))

	if !analyze {
		return nil
	}

	var raw model.TextAnalysis
	err = runRequest(ctx, "Analyzing extracted text", func(ctx context.Context) error {
		var reqErr error
		raw, reqErr = client.AnalyzeText(ctx, text)
		return reqErr
	})
	if err != nil {
		return err
	}

	return printResult("Text Analysis", normalize.Text(raw), asJSON)
}
