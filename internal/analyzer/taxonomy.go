package analyzer

// Symptom answer codes used across the scoring and grouping rules.
const (
	SymptomVisibleLump  = "visible_lump"
	SymptomExertionPain = "exertion_pain"
	SymptomPostMealPain = "post_meal_pain"
	SymptomJaundice     = "jaundice"
	SymptomFever        = "fever"
	SymptomNausea       = "nausea"
)

// Surgery-concern answer codes.
const (
	ConcernProcedureFear   = "procedure_fear"
	ConcernRecoveryTime    = "recovery_time"
	ConcernIncomeLoss      = "income_loss"
	ConcernDoubtsNecessity = "doubts_necessity"
	ConcernAnesthesia      = "anesthesia"
	ConcernCost            = "cost"
)

// Insurance-type answer codes. Everything except "none" counts as
// coverage for the financial persuasive point.
const (
	InsuranceNone    = "none"
	InsurancePublic  = "public"
	InsurancePrivate = "private"
	InsuranceMixed   = "mixed"
)

// symptomLabels maps symptom codes to display labels. Codes missing
// from the table are shown verbatim.
var symptomLabels = map[string]string{
	SymptomVisibleLump:  "Visible lump",
	SymptomExertionPain: "Pain on exertion",
	SymptomPostMealPain: "Pain after meals",
	SymptomJaundice:     "Jaundice",
	SymptomFever:        "Fever",
	SymptomNausea:       "Nausea",
}

var severityLabels = map[Severity]string{
	SeverityMild:     "Mild",
	SeverityModerate: "Moderate",
	SeveritySevere:   "Severe",
}

var durationLabels = map[Duration]string{
	DurationUnderOneMonth: "Less than 1 month",
	DurationOneToThree:    "1-3 months",
	DurationThreeToSix:    "3-6 months",
	DurationSixToTwelve:   "6-12 months",
	DurationOverOneYear:   "More than 1 year",
}

var limitationLabels = map[Limitation]string{
	LimitationNone:     "No limitation",
	LimitationMild:     "Mild limitation",
	LimitationModerate: "Moderate limitation",
	LimitationSevere:   "Severe limitation",
}

var timeframeLabels = map[Timeframe]string{
	TimeframeUrgent:     "Urgent",
	TimeframeThirtyDays: "Within 30 days",
	TimeframeNinetyDays: "Within 90 days",
	TimeframeNoRush:     "No rush",
}

// SymptomLabel returns the display label for a symptom code, falling
// back to the raw code for values outside the taxonomy.
func SymptomLabel(code string) string {
	if label, ok := symptomLabels[code]; ok {
		return label
	}
	return code
}

// Label returns the display label for a Severity, or the raw code.
func (s Severity) Label() string {
	if label, ok := severityLabels[s]; ok {
		return label
	}
	return string(s)
}

// Label returns the display label for a Duration, or the raw code.
func (d Duration) Label() string {
	if label, ok := durationLabels[d]; ok {
		return label
	}
	return string(d)
}

// Label returns the display label for a Limitation, or the raw code.
func (l Limitation) Label() string {
	if label, ok := limitationLabels[l]; ok {
		return label
	}
	return string(l)
}

// Label returns the display label for a Timeframe, or the raw code.
func (t Timeframe) Label() string {
	if label, ok := timeframeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Score weight tables. Each rule is independently additive; codes
// absent from a table contribute zero.

var severityWeights = map[Severity]int{
	SeveritySevere:   15,
	SeverityModerate: 8,
}

var limitationWeights = map[Limitation]int{
	LimitationSevere:   15,
	LimitationModerate: 8,
}

var durationWeights = map[Duration]int{
	DurationOverOneYear: 10,
	DurationSixToTwelve: 7,
	DurationThreeToSix:  5,
}

var symptomWeights = map[string]int{
	SymptomJaundice: 10,
	SymptomFever:    8,
}
