package formatter

import (
	"fmt"
	"strings"

	"github.com/mwaldhauser/zeitbot/internal/stats"
)

// FormatReport renders the weekly/monthly dashboard with forecast,
// break summary and recommendations.
func FormatReport(weekly, monthly stats.PeriodStats, forecast stats.Forecast, breaks stats.BreakAnalysis, recs []stats.Recommendation) string {
	var b strings.Builder

	b.WriteString(Header("Arbeitszeit-Report"))
	b.WriteString("\n\n")

	headers := []string{"ZEITRAUM", "GEARBEITET", "ERWARTET", "SALDO", "QUOTE", "TAGE"}
	rows := [][]string{
		periodRow("Woche", weekly),
		periodRow("Monat", monthly),
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %.2fh bisher, %.2fh/Tag, %.2fh prognostiziert (%d Tage verbleibend)\n",
		Bold("Prognose:"), forecast.CurrentTotal, forecast.AvgPerDay, forecast.PredictedTotal, forecast.DaysRemaining)
	fmt.Fprintf(&b, "%s %d Min gesamt, %d Min/Tag\n",
		Bold("Pausen:"), breaks.TotalMinutes, breaks.AverageMinutes)

	if len(recs) > 0 {
		b.WriteString("\n")
		for _, rec := range recs {
			style := RecommendationStyle(rec.Kind)
			fmt.Fprintf(&b, "%s %s\n", style.Render("●"), rec.Message)
			fmt.Fprintf(&b, "  %s\n", Dim(rec.Action))
		}
	}

	return b.String()
}

func periodRow(label string, s stats.PeriodStats) []string {
	quote := Dim("n/a")
	if s.HasPercentage {
		quote = fmt.Sprintf("%.1f%%", s.Percentage)
	}

	saldo := StyleGreen.Render(fmt.Sprintf("%+.2fh", s.Diff))
	if s.Diff < 0 {
		saldo = StyleRed.Render(fmt.Sprintf("%+.2fh", s.Diff))
	}

	return []string{
		Bold(label),
		fmt.Sprintf("%.2fh", s.Worked),
		fmt.Sprintf("%.2fh", s.Expected),
		saldo,
		quote,
		fmt.Sprintf("%d", s.Days),
	}
}
