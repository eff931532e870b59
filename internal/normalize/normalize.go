// Package normalize maps the loosely-shaped responses of the detection API
// into the canonical model.Result. It is the only place risk buckets,
// default recommendations, and scam-type labels are computed; nothing else
// in the repository may re-derive them.
//
// Every function here is pure and total: a response missing every optional
// field normalizes to a Result with empty collections and zero scalars,
// never an error.
package normalize

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/scamshield/scamshield/internal/model"
)

// Scam-type labels derived when the backend does not supply one.
const (
	ScamTypePhishing      = "Phishing Attempt"
	ScamTypeFakeInvoice   = "Fake Invoice Scam"
	ScamTypeContract      = "Fraudulent Contract"
	ScamTypeSuspiciousDoc = "Suspicious Document"
	ScamTypeDeepfakeAudio = "Deepfake Audio"
	ScamTypeVishing       = "Voice Phishing (Vishing)"
)

// DeriveRiskLevel buckets a continuous risk score into the three-tier
// level. The boundaries are inclusive upward: 0.3 is medium, 0.7 is high.
func DeriveRiskLevel(score float64) model.RiskLevel {
	switch {
	case score < 0.3:
		return model.RiskLow
	case score < 0.7:
		return model.RiskMedium
	default:
		return model.RiskHigh
	}
}

// DefaultRecommendations returns the fixed guidance tier for a score when
// the backend supplies none. The strings are part of the product surface;
// do not reword them casually.
func DefaultRecommendations(score float64) []string {
	switch DeriveRiskLevel(score) {
	case model.RiskLow:
		return []string{
			"Content appears safe",
			"Continue to verify sender identity when in doubt",
		}
	case model.RiskMedium:
		return []string{
			"Exercise caution with this content",
			"Verify the sender through official channels",
			"Do not click suspicious links or provide personal information",
		}
	default:
		return []string{
			"High risk detected - do not interact with this content",
			"Report this as spam or phishing",
			"Delete this message immediately",
			"If you've already interacted, change your passwords and monitor accounts",
		}
	}
}

// riskLevel prefers a well-formed level from the wire, deriving from the
// score otherwise.
func riskLevel(raw string, score float64) model.RiskLevel {
	if lvl := model.RiskLevel(raw); lvl.Valid() {
		return lvl
	}
	return DeriveRiskLevel(score)
}

// recommendations prefers the backend's list, falling back to the fixed
// score tiers.
func recommendations(raw []string, score float64) []string {
	if len(raw) > 0 {
		return raw
	}
	return DefaultRecommendations(score)
}

// Text normalizes a text analysis response.
func Text(raw model.TextAnalysis) model.Result {
	scamType := raw.ScamType
	if scamType == "" && raw.Label == model.LabelPhishing {
		scamType = ScamTypePhishing
	}

	indicators := make([]string, 0, len(raw.Highlights))
	for _, h := range raw.Highlights {
		indicators = append(indicators, h.Reason)
	}

	return model.Result{
		RiskScore:       raw.Score,
		RiskLevel:       riskLevel(raw.RiskLevel, raw.Score),
		ScamType:        scamType,
		Indicators:      indicators,
		Explanations:    append([]string(nil), raw.Reasons...),
		Recommendations: recommendations(raw.Recommendations, raw.Score),
		ModelVersion:    raw.ModelVersion,
		Text:            &model.TextMetadata{Highlights: raw.Highlights},
	}
}

// Document normalizes a document analysis response. fileName and mimeType
// come from the uploaded file and only feed the metadata panel.
func Document(raw model.DocumentAnalysis, fileName, mimeType string) model.Result {
	scamType := raw.ScamType
	if scamType == "" && raw.Label == model.LabelSuspicious {
		scamType = documentScamType(raw.ExtractedFields)
	}

	reasons := make([]string, 0, len(raw.Findings))
	for _, f := range raw.Findings {
		reasons = append(reasons, f.Reason)
	}

	return model.Result{
		RiskScore:       raw.Score,
		RiskLevel:       riskLevel(raw.RiskLevel, raw.Score),
		ScamType:        scamType,
		Indicators:      reasons,
		Explanations:    append([]string(nil), reasons...),
		Recommendations: recommendations(raw.Recommendations, raw.Score),
		ModelVersion:    raw.ModelVersion,
		Document: &model.DocumentMetadata{
			FileType:           documentFileType(mimeType, fileName),
			Pages:              1, // backend does not report page counts yet
			SuspiciousElements: reasons,
			ExtractedFields:    raw.ExtractedFields,
			Findings:           raw.Findings,
		},
	}
}

// documentScamType inspects the serialized extracted fields for the
// substrings that distinguish invoice and contract fraud.
func documentScamType(fields map[string]any) string {
	serialized, err := json.Marshal(fields)
	if err != nil {
		return ScamTypeSuspiciousDoc
	}
	text := strings.ToLower(string(serialized))
	switch {
	case strings.Contains(text, "invoice") || strings.Contains(text, "payment"):
		return ScamTypeFakeInvoice
	case strings.Contains(text, "contract"):
		return ScamTypeContract
	default:
		return ScamTypeSuspiciousDoc
	}
}

func documentFileType(mimeType, fileName string) string {
	if _, sub, ok := strings.Cut(mimeType, "/"); ok && sub != "" {
		return strings.ToUpper(sub)
	}
	if ext := strings.TrimPrefix(filepath.Ext(fileName), "."); ext != "" {
		return strings.ToUpper(ext)
	}
	return "Unknown"
}

// Audio normalizes an audio analysis response. fileName supplies the
// format shown in the metadata panel.
func Audio(raw model.AudioAnalysis, fileName string) model.Result {
	scamType := raw.ScamType
	if scamType == "" {
		switch raw.Label {
		case model.LabelDeepfake:
			scamType = ScamTypeDeepfakeAudio
		case model.LabelScam:
			scamType = ScamTypeVishing
		}
	}

	return model.Result{
		RiskScore:       raw.Score,
		RiskLevel:       riskLevel(raw.RiskLevel, raw.Score),
		ScamType:        scamType,
		Indicators:      append([]string(nil), raw.Reasons...),
		Explanations:    append([]string(nil), raw.Reasons...),
		Recommendations: recommendations(raw.Recommendations, raw.Score),
		ModelVersion:    raw.ModelVersion,
		Audio: &model.AudioMetadata{
			Duration:             "N/A", // backend does not report duration yet
			Format:               audioFormat(fileName),
			Transcript:           raw.Transcript,
			VoiceCharacteristics: VoiceCharacteristics(raw.Reasons),
		},
	}
}

// VoiceCharacteristics selects the subset of reasons that describe the
// voice itself, for the side panel. The full list is kept elsewhere; this
// never removes anything from it.
func VoiceCharacteristics(reasons []string) []string {
	var out []string
	for _, r := range reasons {
		lower := strings.ToLower(r)
		if strings.Contains(lower, "voice") ||
			strings.Contains(lower, "audio") ||
			strings.Contains(lower, "deepfake") {
			out = append(out, r)
		}
	}
	return out
}

func audioFormat(fileName string) string {
	if ext := strings.TrimPrefix(filepath.Ext(fileName), "."); ext != "" {
		return strings.ToUpper(ext)
	}
	return "Unknown"
}

// Deepfake normalizes an image deepfake analysis response. This endpoint
// already speaks risk_score/risk_level, so normalization mostly fills the
// gaps when those are missing.
func Deepfake(raw model.DeepfakeAnalysis) model.Result {
	verdict := "authentic"
	if raw.IsDeepfake {
		verdict = model.LabelDeepfake
	}

	return model.Result{
		RiskScore:       raw.RiskScore,
		RiskLevel:       riskLevel(raw.RiskLevel, raw.RiskScore),
		Indicators:      append([]string(nil), raw.Explanations...),
		Explanations:    append([]string(nil), raw.Explanations...),
		Recommendations: recommendations(raw.Recommendations, raw.RiskScore),
		ModelVersion:    raw.ModelVersion,
		Deepfake: &model.DeepfakeMetadata{
			Verdict:    verdict,
			IsDeepfake: raw.IsDeepfake,
			Confidence: raw.Confidence,
			Details:    raw.Details,
		},
	}
}

// IsPlaceholderExtract reports whether OCR output is the backend's demo
// fallback rather than real extracted text. Callers surface a notice and
// must not treat the text as genuine.
func IsPlaceholderExtract(text string) bool {
	return strings.Contains(text, "[OCR Demo Mode") ||
		strings.Contains(text, "[Text extraction")
}
