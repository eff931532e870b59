package main

import (
	"github.com/spf13/cobra"

	"github.com/scamshield/scamshield/internal/normalize"
	"github.com/scamshield/scamshield/internal/upload"
)

func audioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audio <file>",
		Short: "Analyze an audio clip for voice deepfakes and vishing",
		Long: `Upload an audio clip (MP3, WAV, M4A, OGG, or WebM up to 50MB) for
voice-deepfake and voice-phishing analysis. A progress bar tracks the
file read for larger clips.`,
		Args: cobra.ExactArgs(1),
		RunE: runAudio,
	}

	cmd.Flags().Bool("json", false, "print the normalized result as JSON")

	return cmd
}

func runAudio(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	// Audio files are the largest uploads; show read progress instead of
	// a spinner so the wait is legible.
	payload, err := openUpload(args[0], upload.ModalityAudio, true)
	if err != nil {
		return err
	}
	defer payload.Close()

	client, err := newClient()
	if err != nil {
		return err
	}

	raw, err := client.AnalyzeAudio(newInterruptContext(cmd), payload.File())
	if err != nil {
		return err
	}

	result := normalize.Audio(raw, payload.info.Name)
	return printResult("Audio Analysis", result, asJSON)
}
