// Package model defines the wire types exchanged with the detection API and
// the normalized result consumed by the presentation layer.
package model

// Labels returned by the remote analysis endpoints.
const (
	LabelPhishing   = "phishing"
	LabelLegit      = "legit"
	LabelSuspicious = "suspicious"
	LabelDeepfake   = "deepfake"
	LabelReal       = "real"
	LabelScam       = "scam"
)

// TextHighlight marks a span of the analyzed text with the reason it was
// flagged.
type TextHighlight struct {
	Reason string `json:"reason"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
}

// TextAnalysis is the raw response of POST /api/v1/text/analyze.
// Every enrichment field may be absent; the server guarantees very little.
type TextAnalysis struct {
	Label           string          `json:"label"`
	ModelVersion    string          `json:"model_version"`
	RiskLevel       string          `json:"risk_level,omitempty"`
	ScamType        string          `json:"scam_type,omitempty"`
	Highlights      []TextHighlight `json:"highlights"`
	Reasons         []string        `json:"reasons"`
	Recommendations []string        `json:"recommendations,omitempty"`
	Score           float64         `json:"score"`
}

// ExtractedText is the raw response of POST /api/v1/text/extract (OCR).
type ExtractedText struct {
	Text string `json:"text"`
}

// BoundingBox locates a document finding on the page.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DocumentFinding is a single flagged region in an analyzed document.
type DocumentFinding struct {
	Reason string      `json:"reason"`
	BBox   BoundingBox `json:"bbox"`
}

// DocumentAnalysis is the raw response of POST /api/v1/doc/analyze.
type DocumentAnalysis struct {
	Label           string            `json:"label"`
	ModelVersion    string            `json:"model_version"`
	RiskLevel       string            `json:"risk_level,omitempty"`
	ScamType        string            `json:"scam_type,omitempty"`
	Findings        []DocumentFinding `json:"findings"`
	ExtractedFields map[string]any    `json:"extractedFields"`
	Recommendations []string          `json:"recommendations,omitempty"`
	Score           float64           `json:"score"`
}

// AudioAnalysis is the raw response of POST /api/v1/audio/analyze.
type AudioAnalysis struct {
	Label           string   `json:"label"`
	ModelVersion    string   `json:"model_version"`
	Transcript      string   `json:"transcript,omitempty"`
	RiskLevel       string   `json:"risk_level,omitempty"`
	ScamType        string   `json:"scam_type,omitempty"`
	Reasons         []string `json:"reasons"`
	Recommendations []string `json:"recommendations,omitempty"`
	Score           float64  `json:"score"`
}

// DeepfakeAnalysis is the raw response of POST /api/v1/deepfake/analyze.
// Unlike the other modalities this endpoint already speaks the enriched
// vocabulary (risk_score, risk_level, recommendations), but none of it is
// guaranteed to be present.
type DeepfakeAnalysis struct {
	Label           string   `json:"label"`
	ModelVersion    string   `json:"model_version,omitempty"`
	RiskLevel       string   `json:"risk_level,omitempty"`
	Explanations    []string `json:"explanations"`
	Recommendations []string `json:"recommendations,omitempty"`
	Details         any      `json:"details,omitempty"`
	Confidence      float64  `json:"confidence"`
	RiskScore       float64  `json:"risk_score"`
	IsDeepfake      bool     `json:"is_deepfake"`
}

// CombinedAnalysis is the implementation-defined response of the aggregate
// POST /api/v1/analyze endpoint. Per-modality sections are present only for
// the inputs that were supplied.
type CombinedAnalysis struct {
	Text     *TextAnalysis     `json:"text,omitempty"`
	Document *DocumentAnalysis `json:"document,omitempty"`
	Audio    *AudioAnalysis    `json:"audio,omitempty"`
	Score    float64           `json:"score,omitempty"`
	Label    string            `json:"label,omitempty"`
}

// HistoryItem is one saved assessment returned by GET /api/v1/history.
type HistoryItem struct {
	ID           string   `json:"id"`
	CreatedAt    string   `json:"created_at"`
	Summary      string   `json:"summary,omitempty"`
	TextScore    *float64 `json:"text_score,omitempty"`
	DocScore     *float64 `json:"doc_score,omitempty"`
	AudioScore   *float64 `json:"audio_score,omitempty"`
	FindingsJSON any      `json:"findings_json,omitempty"`
	MetaJSON     any      `json:"meta_json,omitempty"`
}

// SavedHistory is the response of POST /api/v1/history.
type SavedHistory struct {
	ID string `json:"id"`
}
