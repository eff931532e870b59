package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamshield/scamshield/internal/common"
)

func TestAnalyzeText_RequestShape(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody map[string]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"label":"phishing","score":0.85,"model_version":"x"}`))
	}))

	result, err := client.AnalyzeText(context.Background(), "urgent: verify your account")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/text/analyze", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]string{"text": "urgent: verify your account"}, gotBody)
	assert.Equal(t, "phishing", result.Label)
	assert.InDelta(t, 0.85, result.Score, 1e-9)
}

func TestAnalyzeText_EmptyInputNeverReachesNetwork(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := client.AnalyzeText(context.Background(), "   \n\t")
	require.ErrorIs(t, err, common.ErrEmptyInput)
	assert.Zero(t, calls.Load())
}

func TestAnalyzeDocument_MultipartShape(t *testing.T) {
	var gotPath, gotQuestion, gotFilename, gotPartType string
	var gotContent []byte
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotQuestion = r.FormValue("question")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		gotFilename = header.Filename
		gotPartType = header.Header.Get("Content-Type")
		gotContent, err = io.ReadAll(file)
		require.NoError(t, err)

		_, _ = w.Write([]byte(`{"label":"suspicious","score":0.6,"model_version":"doc-v1"}`))
	}))

	file := File{
		Name:    "invoice.pdf",
		MIME:    "application/pdf",
		Content: strings.NewReader("%PDF-1.4 fake"),
	}
	result, err := client.AnalyzeDocument(context.Background(), file, "Who is the payee?")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/doc/analyze", gotPath)
	assert.Equal(t, "Who is the payee?", gotQuestion)
	assert.Equal(t, "invoice.pdf", gotFilename)
	assert.Equal(t, "application/pdf", gotPartType)
	assert.Equal(t, "%PDF-1.4 fake", string(gotContent))
	assert.Equal(t, "suspicious", result.Label)
}

func TestAnalyzeDocument_QuestionOmittedWhenEmpty(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, ok := r.MultipartForm.Value["question"]
		assert.False(t, ok)
		_, _ = w.Write([]byte(`{}`))
	}))

	file := File{Name: "scan.png", MIME: "image/png", Content: strings.NewReader("png")}
	_, err := client.AnalyzeDocument(context.Background(), file, "")
	require.NoError(t, err)
}

func TestAnalyzeAudio(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/audio/analyze", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "voicemail.mp3", header.Filename)
		_, _ = w.Write([]byte(`{"label":"scam","score":0.72,"reasons":["Requests gift cards"],"transcript":"call me back","model_version":"a1"}`))
	}))

	file := File{Name: "voicemail.mp3", MIME: "audio/mpeg", Content: strings.NewReader("ID3")}
	result, err := client.AnalyzeAudio(context.Background(), file)
	require.NoError(t, err)

	assert.Equal(t, "scam", result.Label)
	assert.Equal(t, []string{"Requests gift cards"}, result.Reasons)
	assert.Equal(t, "call me back", result.Transcript)
}

func TestAnalyzeDeepfake(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/deepfake/analyze", r.URL.Path)
		_, _ = w.Write([]byte(`{"is_deepfake":true,"confidence":0.93,"label":"deepfake","risk_score":0.93,"risk_level":"high","explanations":["GAN artifact grid"]}`))
	}))

	file := File{Name: "face.png", MIME: "image/png", Content: strings.NewReader("png")}
	result, err := client.AnalyzeDeepfake(context.Background(), file)
	require.NoError(t, err)

	assert.True(t, result.IsDeepfake)
	assert.Equal(t, "high", result.RiskLevel)
	assert.Equal(t, []string{"GAN artifact grid"}, result.Explanations)
}

func TestAnalyzeUpload_NilFileNeverReachesNetwork(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := client.AnalyzeAudio(context.Background(), File{})
	require.ErrorIs(t, err, common.ErrEmptyInput)

	_, err = client.AnalyzeDeepfake(context.Background(), File{})
	require.ErrorIs(t, err, common.ErrEmptyInput)

	_, err = client.AnalyzeDocument(context.Background(), File{}, "")
	require.ErrorIs(t, err, common.ErrEmptyInput)

	assert.Zero(t, calls.Load())
}

func TestExtractText(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/text/extract", r.URL.Path)
		_, _ = w.Write([]byte(`{"text":"Your package is held at customs"}`))
	}))

	file := File{Name: "shot.png", MIME: "image/png", Content: strings.NewReader("png")}
	text, err := client.ExtractText(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, "Your package is held at customs", text)
}

func TestAnalyzeCombined(t *testing.T) {
	var gotText, gotDocName, gotAudioName string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/analyze", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotText = r.FormValue("text")

		_, docHeader, err := r.FormFile("document")
		require.NoError(t, err)
		gotDocName = docHeader.Filename

		_, audioHeader, err := r.FormFile("audio")
		require.NoError(t, err)
		gotAudioName = audioHeader.Filename

		_, _ = w.Write([]byte(`{"text":{"label":"phishing","score":0.8,"model_version":"x"}}`))
	}))

	doc := File{Name: "contract.pdf", MIME: "application/pdf", Content: strings.NewReader("pdf")}
	audio := File{Name: "call.ogg", MIME: "audio/ogg", Content: strings.NewReader("ogg")}
	result, err := client.AnalyzeCombined(context.Background(), CombinedInput{
		Text:     "wire the funds",
		Document: &doc,
		Audio:    &audio,
	})
	require.NoError(t, err)

	assert.Equal(t, "wire the funds", gotText)
	assert.Equal(t, "contract.pdf", gotDocName)
	assert.Equal(t, "call.ogg", gotAudioName)
	require.NotNil(t, result.Text)
	assert.Equal(t, "phishing", result.Text.Label)
}

func TestAnalyzeCombined_RequiresAnInput(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := client.AnalyzeCombined(context.Background(), CombinedInput{})
	require.ErrorIs(t, err, common.ErrEmptyInput)
	assert.Zero(t, calls.Load())
}
