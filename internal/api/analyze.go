package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/scamshield/scamshield/internal/common"
	"github.com/scamshield/scamshield/internal/model"
)

// Fixed per-endpoint messages surfaced when a failure carries no detail.
const (
	fallbackText     = "Failed to analyze text"
	fallbackExtract  = "Failed to extract text from image"
	fallbackDocument = "Failed to analyze document"
	fallbackDeepfake = "Failed to analyze image for deepfakes"
	fallbackAudio    = "Failed to analyze audio"
	fallbackCombined = "Failed to perform analysis"
)

// AnalyzeText submits text for phishing analysis.
func (c *Client) AnalyzeText(ctx context.Context, text string) (model.TextAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return model.TextAnalysis{}, fmt.Errorf("%w: text is empty", common.ErrEmptyInput)
	}

	var out model.TextAnalysis
	body := map[string]string{"text": text}
	if err := c.postJSON(ctx, "/api/v1/text/analyze", body, &out, fallbackText); err != nil {
		return model.TextAnalysis{}, err
	}
	return out, nil
}

// ExtractText runs server-side OCR over a screenshot and returns the
// extracted text. The result may be the backend's demo placeholder; see
// normalize.IsPlaceholderExtract.
func (c *Client) ExtractText(ctx context.Context, file File) (string, error) {
	if file.Content == nil {
		return "", fmt.Errorf("%w: no file selected", common.ErrEmptyInput)
	}

	var out model.ExtractedText
	files := map[string]File{"file": file}
	if err := c.postMultipart(ctx, "/api/v1/text/extract", nil, files, &out, fallbackExtract); err != nil {
		return "", err
	}
	return out.Text, nil
}

// AnalyzeDocument submits a document, with an optional question for the
// backend's extraction model. The call runs under the upload timeout.
func (c *Client) AnalyzeDocument(ctx context.Context, file File, question string) (model.DocumentAnalysis, error) {
	if file.Content == nil {
		return model.DocumentAnalysis{}, fmt.Errorf("%w: no file selected", common.ErrEmptyInput)
	}

	ctx, cancel := context.WithTimeout(ctx, c.uploadTimeout)
	defer cancel()

	var fields map[string]string
	if question != "" {
		fields = map[string]string{"question": question}
	}

	var out model.DocumentAnalysis
	files := map[string]File{"file": file}
	if err := c.postMultipart(ctx, "/api/v1/doc/analyze", fields, files, &out, fallbackDocument); err != nil {
		return model.DocumentAnalysis{}, err
	}
	return out, nil
}

// AnalyzeAudio submits an audio clip for deepfake/vishing analysis under
// the upload timeout.
func (c *Client) AnalyzeAudio(ctx context.Context, file File) (model.AudioAnalysis, error) {
	if file.Content == nil {
		return model.AudioAnalysis{}, fmt.Errorf("%w: no file selected", common.ErrEmptyInput)
	}

	ctx, cancel := context.WithTimeout(ctx, c.uploadTimeout)
	defer cancel()

	var out model.AudioAnalysis
	files := map[string]File{"file": file}
	if err := c.postMultipart(ctx, "/api/v1/audio/analyze", nil, files, &out, fallbackAudio); err != nil {
		return model.AudioAnalysis{}, err
	}
	return out, nil
}

// AnalyzeDeepfake submits an image for deepfake detection under the upload
// timeout.
func (c *Client) AnalyzeDeepfake(ctx context.Context, file File) (model.DeepfakeAnalysis, error) {
	if file.Content == nil {
		return model.DeepfakeAnalysis{}, fmt.Errorf("%w: no file selected", common.ErrEmptyInput)
	}

	ctx, cancel := context.WithTimeout(ctx, c.uploadTimeout)
	defer cancel()

	var out model.DeepfakeAnalysis
	files := map[string]File{"file": file}
	if err := c.postMultipart(ctx, "/api/v1/deepfake/analyze", nil, files, &out, fallbackDeepfake); err != nil {
		return model.DeepfakeAnalysis{}, err
	}
	return out, nil
}

// CombinedInput is the payload of the aggregate endpoint. At least one
// field must be set.
type CombinedInput struct {
	Document *File
	Audio    *File
	Text     string
}

// AnalyzeCombined submits any mix of text, document, and audio to the
// aggregate endpoint.
func (c *Client) AnalyzeCombined(ctx context.Context, input CombinedInput) (model.CombinedAnalysis, error) {
	if strings.TrimSpace(input.Text) == "" && input.Document == nil && input.Audio == nil {
		return model.CombinedAnalysis{}, fmt.Errorf("%w: provide text, a document, or an audio file", common.ErrEmptyInput)
	}

	var fields map[string]string
	if input.Text != "" {
		fields = map[string]string{"text": input.Text}
	}

	files := make(map[string]File)
	if input.Document != nil {
		files["document"] = *input.Document
	}
	if input.Audio != nil {
		files["audio"] = *input.Audio
	}

	var out model.CombinedAnalysis
	if err := c.postMultipart(ctx, "/api/v1/analyze", fields, files, &out, fallbackCombined); err != nil {
		return model.CombinedAnalysis{}, err
	}
	return out, nil
}
