package domain

// Intent is the fixed category a free-text message is classified into.
type Intent string

const (
	IntentWeekly          Intent = "WEEKLY"
	IntentMonthly         Intent = "MONTHLY"
	IntentAnalysis        Intent = "ANALYSIS"
	IntentProductivity    Intent = "PRODUCTIVITY"
	IntentForecast        Intent = "FORECAST"
	IntentRecommendations Intent = "RECOMMENDATIONS"
	IntentBreaks          Intent = "BREAKS"
	IntentCategories      Intent = "CATEGORIES"
	IntentGeneral         Intent = "GENERAL"
)

// ValidIntents is the canonical set of accepted intent strings.
var ValidIntents = map[string]bool{
	"WEEKLY": true, "MONTHLY": true, "ANALYSIS": true,
	"PRODUCTIVITY": true, "FORECAST": true, "RECOMMENDATIONS": true,
	"BREAKS": true, "CATEGORIES": true, "GENERAL": true,
}

type RecommendationKind string

const (
	RecommendationWarning RecommendationKind = "warning"
	RecommendationSuccess RecommendationKind = "success"
	RecommendationInfo    RecommendationKind = "info"
)
