package model

// RiskLevel is the three-tier bucket shown to the user.
type RiskLevel string

// Risk levels, ordered from least to most severe.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Valid reports whether the level is one of the three known buckets.
// Anything else coming off the wire is treated as absent.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Result is the normalized view-model every modality converges to.
// It is built fresh per completed analysis and never mutated; the next
// analysis replaces it wholesale.
type Result struct {
	RiskLevel       RiskLevel         `json:"risk_level"`
	ScamType        string            `json:"scam_type,omitempty"`
	ModelVersion    string            `json:"model_version,omitempty"`
	Indicators      []string          `json:"indicators"`
	Explanations    []string          `json:"explanations"`
	Recommendations []string          `json:"recommendations"`
	Text            *TextMetadata     `json:"text_metadata,omitempty"`
	Document        *DocumentMetadata `json:"document_metadata,omitempty"`
	Audio           *AudioMetadata    `json:"audio_metadata,omitempty"`
	Deepfake        *DeepfakeMetadata `json:"deepfake_metadata,omitempty"`
	RiskScore       float64           `json:"risk_score"`
}

// TextMetadata carries the text-specific detail attached to a Result.
type TextMetadata struct {
	Highlights []TextHighlight `json:"highlights"`
}

// DocumentMetadata carries the document-specific detail attached to a Result.
type DocumentMetadata struct {
	FileType           string            `json:"file_type"`
	SuspiciousElements []string          `json:"suspicious_elements"`
	ExtractedFields    map[string]any    `json:"extracted_fields,omitempty"`
	Findings           []DocumentFinding `json:"findings,omitempty"`
	Pages              int               `json:"pages"`
}

// AudioMetadata carries the audio-specific detail attached to a Result.
type AudioMetadata struct {
	// Duration is a placeholder until the backend reports it.
	Duration             string   `json:"duration"`
	Format               string   `json:"format"`
	Transcript           string   `json:"transcript,omitempty"`
	VoiceCharacteristics []string `json:"voice_characteristics,omitempty"`
}

// DeepfakeMetadata carries the image-specific detail attached to a Result.
type DeepfakeMetadata struct {
	Verdict    string  `json:"verdict"`
	Details    any     `json:"details,omitempty"`
	Confidence float64 `json:"confidence"`
	IsDeepfake bool    `json:"is_deepfake"`
}
