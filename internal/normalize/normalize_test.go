package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamshield/scamshield/internal/model"
)

func TestDeriveRiskLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  model.RiskLevel
		score float64
	}{
		{name: "zero score", score: 0, want: model.RiskLow},
		{name: "just below low boundary", score: 0.29, want: model.RiskLow},
		{name: "low boundary is medium", score: 0.3, want: model.RiskMedium},
		{name: "middle of medium", score: 0.5, want: model.RiskMedium},
		{name: "just below high boundary", score: 0.69, want: model.RiskMedium},
		{name: "high boundary is high", score: 0.7, want: model.RiskHigh},
		{name: "maximum score", score: 1.0, want: model.RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveRiskLevel(tt.score))
		})
	}
}

func TestDefaultRecommendations(t *testing.T) {
	tests := []struct {
		name  string
		want  []string
		score float64
	}{
		{
			name:  "low tier",
			score: 0.1,
			want: []string{
				"Content appears safe",
				"Continue to verify sender identity when in doubt",
			},
		},
		{
			name:  "medium tier",
			score: 0.5,
			want: []string{
				"Exercise caution with this content",
				"Verify the sender through official channels",
				"Do not click suspicious links or provide personal information",
			},
		},
		{
			name:  "high tier",
			score: 0.9,
			want: []string{
				"High risk detected - do not interact with this content",
				"Report this as spam or phishing",
				"Delete this message immediately",
				"If you've already interacted, change your passwords and monitor accounts",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultRecommendations(tt.score))
		})
	}
}

func TestText_PhishingRoundTrip(t *testing.T) {
	raw := model.TextAnalysis{
		Label: model.LabelPhishing,
		Score: 0.85,
		Highlights: []model.TextHighlight{
			{Start: 12, End: 26, Reason: "Urgency cue"},
		},
		Reasons:      []string{"Multiple urgency cues detected"},
		ModelVersion: "x",
	}

	result := Text(raw)

	assert.Equal(t, model.RiskHigh, result.RiskLevel)
	assert.Equal(t, ScamTypePhishing, result.ScamType)
	assert.Equal(t, []string{"Urgency cue"}, result.Indicators)
	assert.Equal(t, []string{"Multiple urgency cues detected"}, result.Explanations)
	assert.Equal(t, DefaultRecommendations(0.85), result.Recommendations)
	assert.Equal(t, "x", result.ModelVersion)
	require.NotNil(t, result.Text)
	assert.Equal(t, raw.Highlights, result.Text.Highlights)
}

func TestText_PrefersBackendEnrichment(t *testing.T) {
	raw := model.TextAnalysis{
		Label:           model.LabelPhishing,
		Score:           0.85,
		RiskLevel:       "medium",
		ScamType:        "Spear Phishing",
		Recommendations: []string{"Call your bank"},
	}

	result := Text(raw)

	assert.Equal(t, model.RiskMedium, result.RiskLevel)
	assert.Equal(t, "Spear Phishing", result.ScamType)
	assert.Equal(t, []string{"Call your bank"}, result.Recommendations)
}

func TestText_MalformedRiskLevelFallsBackToScore(t *testing.T) {
	raw := model.TextAnalysis{Score: 0.2, RiskLevel: "critical"}
	assert.Equal(t, model.RiskLow, Text(raw).RiskLevel)
}

func TestText_LegitLabelHasNoScamType(t *testing.T) {
	result := Text(model.TextAnalysis{Label: model.LabelLegit, Score: 0.1})
	assert.Empty(t, result.ScamType)
}

func TestText_EmptyResponse(t *testing.T) {
	result := Text(model.TextAnalysis{})

	assert.Equal(t, model.RiskLow, result.RiskLevel)
	assert.Empty(t, result.ScamType)
	assert.Empty(t, result.Indicators)
	assert.Empty(t, result.Explanations)
	assert.Empty(t, result.ModelVersion)
	// Recommendations always degrade to the score tier, never to nothing.
	assert.Equal(t, DefaultRecommendations(0), result.Recommendations)
}

func TestDocument_ScamTypeFromExtractedFields(t *testing.T) {
	tests := []struct {
		fields map[string]any
		name   string
		label  string
		want   string
	}{
		{
			name:   "invoice keyword",
			label:  model.LabelSuspicious,
			fields: map[string]any{"title": "INVOICE #4411"},
			want:   ScamTypeFakeInvoice,
		},
		{
			name:   "payment keyword",
			label:  model.LabelSuspicious,
			fields: map[string]any{"note": "Payment due immediately"},
			want:   ScamTypeFakeInvoice,
		},
		{
			name:   "contract keyword",
			label:  model.LabelSuspicious,
			fields: map[string]any{"type": "Employment Contract"},
			want:   ScamTypeContract,
		},
		{
			name:   "no keyword falls back to suspicious document",
			label:  model.LabelSuspicious,
			fields: map[string]any{"title": "Lottery winner notice"},
			want:   ScamTypeSuspiciousDoc,
		},
		{
			name:   "legit label yields no scam type",
			label:  model.LabelLegit,
			fields: map[string]any{"title": "INVOICE #4411"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := model.DocumentAnalysis{
				Label:           tt.label,
				Score:           0.6,
				ExtractedFields: tt.fields,
			}
			assert.Equal(t, tt.want, Document(raw, "scan.pdf", "application/pdf").ScamType)
		})
	}
}

func TestDocument_Metadata(t *testing.T) {
	raw := model.DocumentAnalysis{
		Label: model.LabelSuspicious,
		Score: 0.75,
		Findings: []model.DocumentFinding{
			{Reason: "Mismatched font in total field", BBox: model.BoundingBox{X: 10, Y: 20, Width: 100, Height: 30}},
			{Reason: "Altered date stamp"},
		},
		ExtractedFields: map[string]any{"total": "$4,900"},
		ModelVersion:    "doc-v2",
	}

	result := Document(raw, "scan.pdf", "application/pdf")

	assert.Equal(t, model.RiskHigh, result.RiskLevel)
	assert.Equal(t, []string{"Mismatched font in total field", "Altered date stamp"}, result.Indicators)
	require.NotNil(t, result.Document)
	assert.Equal(t, "PDF", result.Document.FileType)
	assert.Equal(t, 1, result.Document.Pages)
	assert.Equal(t, raw.Findings, result.Document.Findings)
	assert.Equal(t, raw.ExtractedFields, result.Document.ExtractedFields)
}

func TestDocument_FileTypeFromExtensionWhenNoMIME(t *testing.T) {
	result := Document(model.DocumentAnalysis{}, "contract.docx", "")
	require.NotNil(t, result.Document)
	assert.Equal(t, "DOCX", result.Document.FileType)
}

func TestAudio_ScamTypes(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{name: "deepfake label", label: model.LabelDeepfake, want: ScamTypeDeepfakeAudio},
		{name: "scam label", label: model.LabelScam, want: ScamTypeVishing},
		{name: "real label", label: model.LabelReal, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := model.AudioAnalysis{Label: tt.label, Score: 0.5}
			assert.Equal(t, tt.want, Audio(raw, "clip.mp3").ScamType)
		})
	}
}

func TestAudio_Metadata(t *testing.T) {
	raw := model.AudioAnalysis{
		Label: model.LabelDeepfake,
		Score: 0.8,
		Reasons: []string{
			"Unnatural voice cadence",
			"Requests wire transfer",
			"Audio artifacts near 3s mark",
		},
		Transcript:   "Hi grandma, I need money fast",
		ModelVersion: "audio-v1",
	}

	result := Audio(raw, "voicemail.OGG")

	require.NotNil(t, result.Audio)
	assert.Equal(t, "N/A", result.Audio.Duration)
	assert.Equal(t, "OGG", result.Audio.Format)
	assert.Equal(t, "Hi grandma, I need money fast", result.Audio.Transcript)
	// The side-panel subset keeps only voice/audio/deepfake mentions; the
	// full indicator list is untouched.
	assert.Equal(t, []string{"Unnatural voice cadence", "Audio artifacts near 3s mark"},
		result.Audio.VoiceCharacteristics)
	assert.Len(t, result.Indicators, 3)
}

func TestVoiceCharacteristics_CaseInsensitive(t *testing.T) {
	reasons := []string{"DEEPFAKE signature detected", "Caller pressured urgency"}
	assert.Equal(t, []string{"DEEPFAKE signature detected"}, VoiceCharacteristics(reasons))
}

func TestDeepfake(t *testing.T) {
	raw := model.DeepfakeAnalysis{
		IsDeepfake:   true,
		Confidence:   0.93,
		Label:        "deepfake",
		RiskScore:    0.93,
		RiskLevel:    "high",
		Explanations: []string{"Inconsistent lighting on face boundary"},
		ModelVersion: "df-v3",
	}

	result := Deepfake(raw)

	assert.Equal(t, model.RiskHigh, result.RiskLevel)
	assert.InDelta(t, 0.93, result.RiskScore, 1e-9)
	assert.Equal(t, []string{"Inconsistent lighting on face boundary"}, result.Indicators)
	require.NotNil(t, result.Deepfake)
	assert.True(t, result.Deepfake.IsDeepfake)
	assert.Equal(t, "deepfake", result.Deepfake.Verdict)
	assert.InDelta(t, 0.93, result.Deepfake.Confidence, 1e-9)
}

func TestDeepfake_EmptyResponse(t *testing.T) {
	result := Deepfake(model.DeepfakeAnalysis{})

	assert.Equal(t, model.RiskLow, result.RiskLevel)
	require.NotNil(t, result.Deepfake)
	assert.Equal(t, "authentic", result.Deepfake.Verdict)
	assert.Equal(t, DefaultRecommendations(0), result.Recommendations)
}

func TestIsPlaceholderExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "demo mode marker", text: "[OCR Demo Mode] Sample text here", want: true},
		{name: "extraction marker", text: "[Text extraction unavailable]", want: true},
		{name: "marker mid-string", text: "note: [OCR Demo Mode active]", want: true},
		{name: "real text", text: "Your parcel is waiting, pay $2 customs fee", want: false},
		{name: "empty", text: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPlaceholderExtract(tt.text))
		})
	}
}
