package bot

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/mwaldhauser/zeitbot/internal/stats"
)

const dateLayout = "2006-01-02"

const noTrendData = "Noch keine Einträge vorhanden. Logge ein paar Arbeitstage, dann kann ich dir mehr erzählen!"

// generalPrompts are the fallback answers for unclassified messages.
// One is picked uniformly at random per turn, deliberately unseeded.
var generalPrompts = []string{
	"Ich bin hier um dir bei Fragen zu deinen Arbeitszeiten zu helfen! 😊",
	"Versuche Fragen wie \"Wie viel habe ich diese Woche gearbeitet?\" zu stellen.",
	"Ich kann dir Analysen, Prognosen und Tipps geben! Was möchtest du wissen?",
	"Interessante Frage! Meine Spezialität ist aber die Analyse deiner Zeitdaten.",
}

func (r *Responder) buildWeekly() string {
	s := r.engine.Weekly()

	verdict := "✅ Du bist im Plan!"
	if s.Diff < 0 {
		verdict = "⚠️ Du könntest noch etwas aufholen!"
	}

	return fmt.Sprintf(`📊 Diese Woche:
- Gearbeitet: %.2fh
- Erwartet: %.2fh
- Saldo: %.2fh (%s)
- Arbeitstage: %d

%s`, s.Worked, s.Expected, s.Diff, percentage(s), s.Days, verdict)
}

func (r *Responder) buildMonthly() string {
	s := r.engine.Monthly()
	f := r.engine.Forecast()

	return fmt.Sprintf(`📈 Dieser Monat (so weit):
- Gearbeitet: %.2fh
- Erwartet: %.2fh
- Saldo: %.2fh (%s)

🔮 Prognose Monatsende:
- Erwarteter Gesamt: %.2fh
- Verbleibende Tage: %d
- Durchschnitt/Tag: %.2fh`,
		s.Worked, s.Expected, s.Diff, percentage(s),
		f.PredictedTotal, f.DaysRemaining, f.AvgPerDay)
}

func (r *Responder) buildAnalysis() string {
	weekly := r.engine.Weekly()
	trend := r.engine.Trend()
	breakdown := r.engine.Categories()

	var b strings.Builder
	b.WriteString("🔍 Detaillierte Analyse:\n\n")
	b.WriteString("Wöchentliche Performance:\n")
	fmt.Fprintf(&b, "%s der erwarteten Stunden erreicht\n\n", percentage(weekly))

	b.WriteString("Produktivitäts-Trends (letzte 30 Tage):\n")
	if trend == nil {
		b.WriteString(noTrendData + "\n")
	} else {
		fmt.Fprintf(&b, "- Durchschnitt: %.2fh/Tag\n", trend.Average)
		fmt.Fprintf(&b, "- Total: %.2fh\n", trend.Total)
		fmt.Fprintf(&b, "- Bester Tag: %s (%gh)\n", trend.BestDay.Format(dateLayout), trend.BestHours)
		fmt.Fprintf(&b, "- Schwächster Tag: %s (%gh)\n", trend.WorstDay.Format(dateLayout), trend.WorstHours)
	}

	b.WriteString("\nKategorien-Verteilung:")
	for _, cat := range breakdown {
		fmt.Fprintf(&b, "\n- %s: %dx (%.1fh)", cat.Type, cat.Count, cat.Hours)
	}

	return b.String()
}

func (r *Responder) buildProductivity() string {
	trend := r.engine.Trend()
	if trend == nil {
		return "💪 Produktivitäts-Analyse:\n\n" + noTrendData
	}

	var assessment string
	switch {
	case trend.Average > 8:
		assessment = "🚀 Du bist extrem produktiv! Das ist beeindruckend."
	case trend.Average > 6:
		assessment = "✅ Gute Produktivität! Du schaffst regelmäßig deine Ziele."
	case trend.Average > 4:
		assessment = "📊 Mittelmäßige Produktivität. Versuche, etwas konsistenter zu sein."
	default:
		assessment = "⚠️ Deine Produktivität ist niedrig. Vielleicht brauchst du mehr Pausen?"
	}

	return fmt.Sprintf(`💪 Produktivitäts-Analyse:

%s

Durchschnitt: %.2fh/Tag
Total: %.2fh (letzte 30 Tage)
Arbeitstage: %d

Tipp: Versuche, eine konstante tägliche Routine zu etablieren!`,
		assessment, trend.Average, trend.Total, trend.Days)
}

func (r *Responder) buildForecast() string {
	f := r.engine.Forecast()
	month := stats.CurrentMonth(r.now())

	expectedTotal := float64(month.End.Day()) * r.cfg.ExpectedDailyHours
	balance := f.PredictedTotal - expectedTotal

	verdict := "✅ Du wirst es schaffen!"
	if f.PredictedTotal < expectedTotal {
		verdict = "⚠️ Du könntest knapp werden!"
	}

	return fmt.Sprintf(`🔮 Prognose für Monatsende:

Aktueller Stand: %.2fh
Verbleibende Tage: %d
Täglicher Durchschnitt: %.2fh

Erwartete Gesamtstunden: %.2fh
Prognostizierter Gesamt: %.2fh
Saldo-Prognose: %.2fh

%s`, f.CurrentTotal, f.DaysRemaining, f.AvgPerDay, expectedTotal, f.PredictedTotal, balance, verdict)
}

func (r *Responder) buildRecommendations() string {
	recs := r.engine.Recommendations()
	if len(recs) == 0 {
		return "✨ Alles läuft perfekt! Du brauchst keine speziellen Empfehlungen. Keep it up! 💪"
	}

	var b strings.Builder
	b.WriteString("💡 Intelligente Empfehlungen:\n\n")
	for _, rec := range recs {
		fmt.Fprintf(&b, "%s\n→ %s\n\n", rec.Message, rec.Action)
	}
	return b.String()
}

func (r *Responder) buildBreaks() string {
	breaks := r.engine.Breaks()

	var assessment string
	switch {
	case breaks.AverageMinutes < 15:
		assessment = "⚠️ Deine Pausen sind sehr kurz! Gönne dir mehr Erholung."
	case breaks.AverageMinutes < 30:
		assessment = "✅ Gute Pausenlänge! Das ist gesund."
	default:
		assessment = "📊 Deine Pausen sind länger als üblich. Das ist in Ordnung, wenn du dich besser fühlst."
	}

	return fmt.Sprintf(`☕ Pausen-Analyse (diese Woche):

%s

- Total Pausenzeit: %d Min
- Durchschnitt pro Tag: %d Min
- Arbeitstage: %d

Empfehlung: Mache regelmäßig 15-20 Minuten Pausen!`,
		assessment, breaks.TotalMinutes, breaks.AverageMinutes, breaks.Days)
}

func (r *Responder) buildCategories() string {
	breakdown := r.engine.Categories()

	var b strings.Builder
	b.WriteString("📂 Kategorien-Verteilung (letzte 60 Tage):\n\n")
	for _, cat := range breakdown {
		// Share relative to a nominal 60h window, a fixed display rule.
		var pct float64
		if cat.Hours > 0 {
			pct = cat.Hours / 60 * 100
		}
		fmt.Fprintf(&b, "🔹 %s: %dx (%.1fh - %.1f%%)\n", cat.Type, cat.Count, cat.Hours, pct)
	}
	return b.String()
}

func (r *Responder) buildGeneral() string {
	return generalPrompts[rand.IntN(len(generalPrompts))]
}

// percentage renders the worked/expected ratio, or an explicit marker
// when the window's expected total is zero and no ratio is defined.
func percentage(s stats.PeriodStats) string {
	if !s.HasPercentage {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", s.Percentage)
}
