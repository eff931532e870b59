package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scamshield/scamshield/internal/model"
)

const meterWidth = 30

// Renderer formats normalized analysis results for the terminal.
type Renderer struct{}

// NewRenderer creates a result renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// FormatResult renders the full assessment: risk meter, scam type,
// indicators, explanations, recommendations, modality metadata, and the
// model version footer.
func (r *Renderer) FormatResult(title string, res model.Result) string {
	var sections []string

	sections = append(sections, FormatTitle(title))
	sections = append(sections, r.formatRiskMeter(res))

	if res.ScamType != "" {
		badge := RiskStyle(res.RiskLevel).Bold(true).Render(AlertIcon + " " + res.ScamType)
		sections = append(sections, badge)
	}

	if len(res.Indicators) > 0 {
		sections = append(sections, r.formatList("Indicators", res.Indicators))
	}
	if len(res.Explanations) > 0 && !sameStrings(res.Explanations, res.Indicators) {
		sections = append(sections, r.formatList("Explanations", res.Explanations))
	}
	if len(res.Recommendations) > 0 {
		sections = append(sections, r.formatList("Recommendations", res.Recommendations))
	}

	if meta := r.formatMetadata(res); meta != "" {
		sections = append(sections, meta)
	}

	if res.ModelVersion != "" {
		sections = append(sections, SubtleStyle.Render("model "+res.ModelVersion))
	}

	return strings.Join(sections, "\n\n")
}

// formatRiskMeter renders the score bar with its bucket label.
func (r *Renderer) formatRiskMeter(res model.Result) string {
	style := RiskStyle(res.RiskLevel)

	filled := int(res.RiskScore*meterWidth + 0.5)
	if filled > meterWidth {
		filled = meterWidth
	}
	if filled < 0 {
		filled = 0
	}
	bar := style.Render(strings.Repeat("█", filled)) +
		SubtleStyle.Render(strings.Repeat("░", meterWidth-filled))

	label := style.Bold(true).Render(strings.ToUpper(string(res.RiskLevel)) + " RISK")
	score := BoldStyle.Render(fmt.Sprintf("%.0f%%", res.RiskScore*100))

	return lipgloss.JoinVertical(lipgloss.Left,
		label,
		bar+" "+score,
	)
}

func (r *Renderer) formatList(heading string, items []string) string {
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, BoldStyle.Render(heading))
	for _, item := range items {
		lines = append(lines, "  • "+item)
	}
	return strings.Join(lines, "\n")
}

// formatMetadata renders the modality-specific panel, if any.
func (r *Renderer) formatMetadata(res model.Result) string {
	switch {
	case res.Text != nil:
		return r.formatTextMetadata(res.Text)
	case res.Document != nil:
		return r.formatDocumentMetadata(res.Document)
	case res.Audio != nil:
		return r.formatAudioMetadata(res.Audio)
	case res.Deepfake != nil:
		return r.formatDeepfakeMetadata(res.Deepfake)
	}
	return ""
}

func (r *Renderer) formatTextMetadata(meta *model.TextMetadata) string {
	if len(meta.Highlights) == 0 {
		return ""
	}
	lines := []string{BoldStyle.Render("Flagged spans")}
	for _, h := range meta.Highlights {
		lines = append(lines, fmt.Sprintf("  [%d:%d] %s", h.Start, h.End, h.Reason))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) formatDocumentMetadata(meta *model.DocumentMetadata) string {
	lines := []string{
		BoldStyle.Render("Document"),
		fmt.Sprintf("  Type: %s    Pages: %d", meta.FileType, meta.Pages),
	}

	if len(meta.ExtractedFields) > 0 {
		lines = append(lines, "  Extracted fields:")
		keys := make([]string, 0, len(meta.ExtractedFields))
		for k := range meta.ExtractedFields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("    %s: %v", k, meta.ExtractedFields[k]))
		}
	}

	for _, f := range meta.Findings {
		lines = append(lines, fmt.Sprintf("  Finding at (%.0f,%.0f %.0fx%.0f): %s",
			f.BBox.X, f.BBox.Y, f.BBox.Width, f.BBox.Height, f.Reason))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) formatAudioMetadata(meta *model.AudioMetadata) string {
	lines := []string{
		BoldStyle.Render("Audio"),
		fmt.Sprintf("  Format: %s    Duration: %s", meta.Format, meta.Duration),
	}

	if len(meta.VoiceCharacteristics) > 0 {
		lines = append(lines, "  Voice characteristics:")
		for _, v := range meta.VoiceCharacteristics {
			lines = append(lines, "    • "+v)
		}
	}

	if meta.Transcript != "" {
		lines = append(lines,
			"  Transcript:",
			SubtleStyle.Render("    "+meta.Transcript))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) formatDeepfakeMetadata(meta *model.DeepfakeMetadata) string {
	verdict := FormatSuccess("Image appears authentic")
	if meta.IsDeepfake {
		verdict = FormatError("Deepfake detected")
	}
	return strings.Join([]string{
		BoldStyle.Render("Deepfake verdict"),
		"  " + verdict,
		fmt.Sprintf("  Confidence: %.0f%%", meta.Confidence*100),
	}, "\n")
}

// FormatHistory renders saved assessments as a table.
func (r *Renderer) FormatHistory(items []model.HistoryItem) string {
	if len(items) == 0 {
		return FormatInfo("No saved assessments yet")
	}

	header := TableHeaderStyle.Render(fmt.Sprintf("%-26s %-22s %-8s %-8s %-8s",
		"ID", "Created", "Text", "Doc", "Audio"))

	lines := []string{header}
	for _, item := range items {
		lines = append(lines, TableCellStyle.Render(fmt.Sprintf("%-26s %-22s %-8s %-8s %-8s",
			item.ID,
			item.CreatedAt,
			formatScore(item.TextScore),
			formatScore(item.DocScore),
			formatScore(item.AudioScore))))
		if item.Summary != "" {
			lines = append(lines, SubtleStyle.Render("  "+item.Summary))
		}
	}

	return strings.Join(lines, "\n")
}

func formatScore(score *float64) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *score)
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
