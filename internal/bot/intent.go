package bot

import (
	"strings"

	"github.com/mwaldhauser/zeitbot/internal/domain"
)

// intentRule maps an intent to the keywords that trigger it.
type intentRule struct {
	intent   domain.Intent
	keywords []string
}

// intentRules is evaluated top to bottom; the first rule with a keyword
// contained in the message wins. The order is part of the contract: a
// message matching several rules always resolves to the earliest one.
var intentRules = []intentRule{
	{domain.IntentWeekly, []string{"woche", "wöch"}},
	{domain.IntentMonthly, []string{"monat", "monatlich"}},
	{domain.IntentAnalysis, []string{"analysi", "trend", "muster"}},
	{domain.IntentProductivity, []string{"produktiv", "effizienz", "durchschnitt"}},
	{domain.IntentForecast, []string{"prognose", "vorhersag", "ende", "forecast"}},
	{domain.IntentRecommendations, []string{"tipp", "empfehlung", "rat", "helfen"}},
	{domain.IntentBreaks, []string{"pause", "break"}},
	{domain.IntentCategories, []string{"kategorie", "verteilung", "typ"}},
}

// ClassifyIntent maps free text to an intent via ordered, case-insensitive
// substring checks. It is pure and total: every input yields exactly one
// intent, with IntentGeneral as the fallback.
func ClassifyIntent(text string) domain.Intent {
	msg := strings.ToLower(text)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.intent
			}
		}
	}
	return domain.IntentGeneral
}
