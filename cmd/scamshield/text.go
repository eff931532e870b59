package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scamshield/scamshield/internal/cli"
	"github.com/scamshield/scamshield/internal/common"
	"github.com/scamshield/scamshield/internal/config"
	"github.com/scamshield/scamshield/internal/model"
	"github.com/scamshield/scamshield/internal/normalize"
)

// softTextLimit mirrors the service's suggested input size. It is a
// counter, not a gate; the server is the authority on hard limits.
const softTextLimit = 5000

func textCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text [text]",
		Short: "Analyze text for phishing and scam patterns",
		Long: `Analyze emails, text messages, or any suspicious text content.

The text can be passed as an argument, read from a file, or piped on stdin:

  scamshield text "Your account has been suspended, click here..."
  scamshield text --file suspicious-email.txt
  pbpaste | scamshield text`,
		Args: cobra.MaximumNArgs(1),
		RunE: runText,
	}

	cmd.Flags().String("file", "", "read the text from a file")
	cmd.Flags().Bool("json", false, "print the normalized result as JSON")

	return cmd
}

func runText(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	filePath, _ := cmd.Flags().GetString("file")
	asJSON, _ := cmd.Flags().GetBool("json")

	text, err := gatherText(args, filePath)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return common.NewUserError("please enter some text to analyze", common.ErrEmptyInput)
	}
	if len(text) > softTextLimit {
		fmt.Fprintln(os.Stderr, cli.FormatInfo(fmt.Sprintf(
			"Input is %d characters; the service suggests staying under %d", len(text), softTextLimit)))
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	var raw model.TextAnalysis
	err = runRequest(ctx, "Analyzing text", func(ctx context.Context) error {
		var reqErr error
		raw, reqErr = client.AnalyzeText(ctx, text)
		return reqErr
	})
	if err != nil {
		return err
	}

	return printResult("Text Analysis", normalize.Text(raw), asJSON)
}

// gatherText resolves the input priority: argument, then file, then stdin.
func gatherText(args []string, filePath string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if filePath != "" {
		filePath = config.ExpandPath(filePath)
		content, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", filePath, err)
		}
		return string(content), nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		content, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return "", fmt.Errorf("failed to read stdin: %w", readErr)
		}
		return string(content), nil
	}

	return "", nil
}
