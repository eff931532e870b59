package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/scamshield/scamshield/internal/model"
	"github.com/scamshield/scamshield/internal/normalize"
	"github.com/scamshield/scamshield/internal/upload"
)

func deepfakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deepfake <image>",
		Short: "Check an image for deepfake manipulation",
		Long: `Upload an image (JPEG, PNG, GIF, or WebP up to 10MB) for deepfake
detection. The service returns a verdict, a confidence score, and
explanations for what it found.`,
		Args: cobra.ExactArgs(1),
		RunE: runDeepfake,
	}

	cmd.Flags().Bool("json", false, "print the normalized result as JSON")

	return cmd
}

func runDeepfake(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	asJSON, _ := cmd.Flags().GetBool("json")

	payload, err := openUpload(args[0], upload.ModalityDeepfake, false)
	if err != nil {
		return err
	}
	defer payload.Close()

	client, err := newClient()
	if err != nil {
		return err
	}

	var raw model.DeepfakeAnalysis
	err = runRequest(ctx, "Analyzing image", func(ctx context.Context) error {
		var reqErr error
		raw, reqErr = client.AnalyzeDeepfake(ctx, payload.File())
		return reqErr
	})
	if err != nil {
		return err
	}

	return printResult("Deepfake Detection", normalize.Deepfake(raw), asJSON)
}
