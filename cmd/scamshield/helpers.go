package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scamshield/scamshield/internal/api"
	"github.com/scamshield/scamshield/internal/cli"
	"github.com/scamshield/scamshield/internal/common"
	"github.com/scamshield/scamshield/internal/config"
	"github.com/scamshield/scamshield/internal/model"
	"github.com/scamshield/scamshield/internal/tui"
	"github.com/scamshield/scamshield/internal/upload"
)

// newClient builds the API client from configuration. The client is
// constructed per invocation and passed down explicitly.
func newClient() (*api.Client, error) {
	return api.New(api.Config{
		BaseURL:       viper.GetString("api.url"),
		Timeout:       viper.GetDuration("api.timeout"),
		UploadTimeout: viper.GetDuration("api.upload_timeout"),
		UserAgent:     "scamshield/" + version,
	})
}

// uploadPayload is an opened, validated file ready to attach to a request.
type uploadPayload struct {
	file   *os.File
	reader io.Reader
	info   upload.FileInfo
}

// File shapes the payload for the API client.
func (p *uploadPayload) File() api.File {
	return api.File{
		Name:    p.info.Name,
		MIME:    p.info.MIME,
		Content: p.reader,
	}
}

// Close releases the underlying handle.
func (p *uploadPayload) Close() {
	_ = p.file.Close()
}

// openUpload validates a file against the modality's constraints and opens
// it for upload. Validation failures never reach the network: the error
// returns before any request is constructed.
func openUpload(path string, modality upload.Modality, withProgress bool) (*uploadPayload, error) {
	path = config.ExpandPath(path)

	info, err := upload.Stat(path)
	if err != nil {
		return nil, err
	}

	if err := upload.Validate(info, modality); err != nil {
		return nil, err
	}

	common.LogDebug("upload validated", common.Fields{
		"file": info.Name,
		"mime": info.MIME,
		"size": info.Size,
	})

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}

	var reader io.Reader = f
	if withProgress && !plainOutput() {
		bar := progressbar.DefaultBytes(info.Size, "reading "+info.Name)
		pr := progressbar.NewReader(f, bar)
		reader = &pr
	}

	return &uploadPayload{file: f, reader: reader, info: info}, nil
}

func plainOutput() bool {
	return viper.GetBool("output.plain")
}

// newInterruptContext hooks Ctrl-C into the request context for commands
// that render their own progress instead of the spinner.
func newInterruptContext(cmd *cobra.Command) context.Context {
	handler := cli.NewInterruptHandler(nil)
	return handler.HandleInterrupts(cmd.Context())
}

// runRequest executes fn with a spinner unless plain output is requested.
// Exactly one request runs per invocation; Ctrl-C cancels it via context.
func runRequest(ctx context.Context, label string, fn func(context.Context) error) error {
	if plainOutput() {
		fmt.Fprintln(os.Stderr, label+"...")
		return fn(ctx)
	}
	return tui.Run(ctx, label, fn)
}

// printResult renders a normalized result, or dumps it as JSON when asked.
func printResult(title string, res model.Result, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(cli.NewRenderer().FormatResult(title, res))
	return nil
}
