package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/ongvang00/HealthManagementSystem/internal/config"
	"github.com/ongvang00/HealthManagementSystem/internal/store"
)

// FullReport bundles every derived view of one user.
type FullReport struct {
	Username          string         `json:"username"`
	DailyBalance      []string       `json:"daily_caloric_balance"`
	AverageSleepHours float64        `json:"average_sleep_hours"`
	ExerciseLog       []string       `json:"exercise_log"`
	Summary           *HealthSummary `json:"summary"`
}

func BuildFullReport(st *store.Store, username string, policy config.SleepPolicy) (*FullReport, error) {
	balance, err := DailyCaloricBalance(st, username)
	if err != nil {
		return nil, err
	}
	avg, err := AverageSleepHours(st, username, policy)
	if err != nil {
		return nil, err
	}
	exercises, err := ExerciseLog(st, username)
	if err != nil {
		return nil, err
	}
	summary, err := BuildHealthSummary(st, username, policy)
	if err != nil {
		return nil, err
	}
	return &FullReport{
		Username:          username,
		DailyBalance:      balance,
		AverageSleepHours: avg,
		ExerciseLog:       exercises,
		Summary:           summary,
	}, nil
}

// Markdown renders the report as a Markdown document.
func (r *FullReport) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Health report: %s\n\n", escapeMarkdown(r.Username))

	b.WriteString("## Daily Caloric Balance\n\n")
	writeMarkdownList(&b, r.DailyBalance, "No calorie intake recorded.")

	b.WriteString("## Sleep Analysis\n\n")
	fmt.Fprintf(&b, "Average hours of sleep per day: %.2f\n\n", r.AverageSleepHours)

	b.WriteString("## Exercise Log\n\n")
	writeMarkdownList(&b, r.ExerciseLog, "No exercise recorded.")

	b.WriteString("## Health Summary\n\n")
	lines := strings.Split(strings.TrimRight(r.Summary.String(), "\n"), "\n")
	writeMarkdownList(&b, lines, "")
	return b.String()
}

// HTML converts the Markdown rendering to an HTML fragment.
func (r *FullReport) HTML() (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(r.Markdown()), &buf); err != nil {
		return "", fmt.Errorf("render html report: %w", err)
	}
	return buf.String(), nil
}

func writeMarkdownList(b *strings.Builder, items []string, empty string) {
	if len(items) == 0 {
		if empty != "" {
			fmt.Fprintf(b, "_%s_\n\n", empty)
		}
		return
	}
	for _, item := range items {
		// Summary sub-items already carry their own dash.
		item = strings.TrimPrefix(item, "- ")
		fmt.Fprintf(b, "- %s\n", escapeMarkdown(item))
	}
	b.WriteString("\n")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`, "[", `\[`, "]", `\]`, "<", "&lt;", ">", "&gt;",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
