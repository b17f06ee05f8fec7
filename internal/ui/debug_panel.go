package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"canopy/internal/config"
	"canopy/internal/domain"
	"canopy/internal/theme"
)

// maxPayloadChars bounds rendered request/response payloads
const maxPayloadChars = 120

// compactJSON renders v as single-line JSON, truncated for display
func compactJSON(v any) string {
	if v == nil {
		return "-"
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	s := string(raw)
	if s == "null" {
		return "-"
	}
	if len(s) > maxPayloadChars {
		s = s[:maxPayloadChars] + "..."
	}
	return s
}

// renderDebugPanel renders the dev diagnostics screen: effective config plus
// the recorded API call log, newest first.
func renderDebugPanel(app config.App, mode config.UIMode, records []domain.APICallRecord) string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Debug"))
	b.WriteString("\n")

	b.WriteString(theme.SubtitleStyle.Render("Configuration"))
	b.WriteString("\n")
	backend := "live"
	if app.UseMockData {
		backend = "mock"
	}
	rows := [][2]string{
		{"backend", backend},
		{"api_base_url", app.APIBaseURL},
		{"auth_mode", string(app.AuthMode)},
		{"mode", string(mode)},
		{"db_path", app.DBPath},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			theme.HelpLabelStyle.Render(fmt.Sprintf("%-14s", row[0])),
			theme.NormalStyle.Render(row[1])))
	}

	b.WriteString("\n")
	b.WriteString(theme.SubtitleStyle.Render(fmt.Sprintf("API calls (%d)", len(records))))
	b.WriteString("\n")

	if len(records) == 0 {
		b.WriteString(theme.MutedStyle.Render("  no calls recorded"))
		b.WriteString("\n")
	}

	for _, rec := range records {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			theme.DebugTimestampStyle.Render(rec.Timestamp.Format("15:04:05")),
			theme.DebugMethodStyle.Render(fmt.Sprintf("%-6s", rec.Method)),
			theme.DebugEndpointStyle.Render(rec.Endpoint)))
		if rec.Error != "" {
			b.WriteString("           " + theme.DebugErrorStyle.Render("error: "+rec.Error))
			b.WriteString("\n")
			continue
		}
		b.WriteString("           " + theme.MutedStyle.Render("req: "+compactJSON(rec.Request)))
		b.WriteString("\n")
		b.WriteString("           " + theme.MutedStyle.Render("res: "+compactJSON(rec.Response)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("c clear log · esc back"))
	return b.String()
}
