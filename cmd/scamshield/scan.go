package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scamshield/scamshield/internal/api"
	"github.com/scamshield/scamshield/internal/cli"
	"github.com/scamshield/scamshield/internal/model"
	"github.com/scamshield/scamshield/internal/normalize"
	"github.com/scamshield/scamshield/internal/upload"
)

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Analyze any mix of text, document, and audio together",
		Long: `Submit several inputs in one request to the aggregate endpoint:

  scamshield scan --text "Wire the deposit today" --document contract.pdf
  scamshield scan --audio voicemail.mp3 --text "transcript follows..."

At least one input is required.`,
		RunE: runScan,
	}

	cmd.Flags().String("text", "", "text to analyze")
	cmd.Flags().String("document", "", "document file to analyze")
	cmd.Flags().String("audio", "", "audio file to analyze")
	cmd.Flags().Bool("json", false, "print the raw combined response as JSON")

	return cmd
}

func runScan(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	text, _ := cmd.Flags().GetString("text")
	documentPath, _ := cmd.Flags().GetString("document")
	audioPath, _ := cmd.Flags().GetString("audio")
	asJSON, _ := cmd.Flags().GetBool("json")

	if text == "" && documentPath == "" && audioPath == "" {
		return fmt.Errorf("provide at least one of --text, --document, or --audio")
	}

	input := api.CombinedInput{Text: text}

	var docName, docMIME, audioName string
	if documentPath != "" {
		payload, err := openUpload(documentPath, upload.ModalityDocument, false)
		if err != nil {
			return err
		}
		defer payload.Close()
		file := payload.File()
		input.Document = &file
		docName, docMIME = payload.info.Name, payload.info.MIME
	}
	if audioPath != "" {
		payload, err := openUpload(audioPath, upload.ModalityAudio, false)
		if err != nil {
			return err
		}
		defer payload.Close()
		file := payload.File()
		input.Audio = &file
		audioName = payload.info.Name
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	var raw model.CombinedAnalysis
	err = runRequest(ctx, "Running combined analysis", func(ctx context.Context) error {
		var reqErr error
		raw, reqErr = client.AnalyzeCombined(ctx, input)
		return reqErr
	})
	if err != nil {
		return err
	}

	if asJSON {
		out, marshalErr := json.MarshalIndent(raw, "", "  ")
		if marshalErr != nil {
			return fmt.Errorf("failed to encode result: %w", marshalErr)
		}
		fmt.Println(string(out))
		return nil
	}

	renderer := cli.NewRenderer()
	printed := false
	if raw.Text != nil {
		fmt.Println(renderer.FormatResult("Text Analysis", normalize.Text(*raw.Text)))
		printed = true
	}
	if raw.Document != nil {
		fmt.Println(renderer.FormatResult("Document Analysis", normalize.Document(*raw.Document, docName, docMIME)))
		printed = true
	}
	if raw.Audio != nil {
		fmt.Println(renderer.FormatResult("Audio Analysis", normalize.Audio(*raw.Audio, audioName)))
		printed = true
	}
	if !printed {
		// Implementation-defined aggregate shape: fall back to the overall
		// score when no per-modality sections came back.
		level := normalize.DeriveRiskLevel(raw.Score)
		fmt.Println(cli.RiskStyle(level).Render(fmt.Sprintf(
			"Overall: %s risk (%.0f%%)", level, raw.Score*100)))
	}

	return nil
}
