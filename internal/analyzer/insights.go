package analyzer

import "sort"

// Impact is the significance level of an insight.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

var impactRank = map[Impact]int{
	ImpactHigh:   0,
	ImpactMedium: 1,
	ImpactLow:    2,
}

// Insight is one categorized, actionable observation about a patient's
// intake survey.
type Insight struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Impact         Impact `json:"impact"`
	Actionable     bool   `json:"actionable"`
	Recommendation string `json:"recommendation"`
	Icon           string `json:"icon"`
}

// GenerateInsights derives the consultation insights for one patient
// and survey, ordered by impact descending. Ties keep generation
// order. An empty slice means nothing noteworthy fired, which is a
// valid outcome distinct from an error.
func GenerateInsights(patient *PatientRecord, survey *IntakeSurvey) ([]Insight, error) {
	if patient == nil {
		return nil, ErrNilPatient
	}
	if survey == nil {
		return nil, ErrNilSurvey
	}

	insights := []Insight{}
	concerns := toSet(survey.Concerns)

	if survey.Severity == SeveritySevere && clampPain(survey.PainIntensity) >= 8 {
		insights = append(insights, Insight{
			ID:             "high_pain_severity",
			Title:          "High pain and severity",
			Description:    "The patient reports severe symptoms with pain " + painLabel(survey.PainIntensity) + "; the current situation is hard to sustain.",
			Impact:         ImpactHigh,
			Actionable:     true,
			Recommendation: "Emphasize how soon the procedure brings relief and offer the earliest available date.",
			Icon:           "alert-triangle",
		})
	}

	if concerns[ConcernRecoveryTime] || concerns[ConcernIncomeLoss] {
		insights = append(insights, Insight{
			ID:             "time_constraint",
			Title:          "Time constraints",
			Description:    "Recovery time or income loss worries the patient more than the procedure itself.",
			Impact:         ImpactMedium,
			Actionable:     true,
			Recommendation: "Walk through the typical recovery timeline and return-to-work expectations for this procedure.",
			Icon:           "clock",
		})
	}

	if concerns[ConcernProcedureFear] {
		insights = append(insights, Insight{
			ID:             "procedure_fear",
			Title:          "Fear of the procedure",
			Description:    "The patient expressed fear of the surgical procedure itself.",
			Impact:         ImpactMedium,
			Actionable:     true,
			Recommendation: "Explain the procedure step by step and share outcomes of comparable cases.",
			Icon:           "heart",
		})
	}

	if survey.Duration == DurationSixToTwelve || survey.Duration == DurationOverOneYear {
		insights = append(insights, Insight{
			ID:             "chronic_condition",
			Title:          "Chronic condition",
			Description:    "Symptoms have persisted for " + survey.Duration.Label() + "; the condition is unlikely to resolve on its own.",
			Impact:         ImpactMedium,
			Actionable:     true,
			Recommendation: "Review how the condition has progressed and what continued postponement implies.",
			Icon:           "calendar",
		})
	}

	if survey.SupportPerson == "" {
		insights = append(insights, Insight{
			ID:             "support_gap",
			Title:          "No support person listed",
			Description:    "The patient did not name anyone to accompany them through the process.",
			Impact:         ImpactLow,
			Actionable:     true,
			Recommendation: "Ask who could assist during recovery and describe the clinic's follow-up program.",
			Icon:           "users",
		})
	}

	if concerns[ConcernDoubtsNecessity] {
		insights = append(insights, Insight{
			ID:             "necessity_doubt",
			Title:          "Doubts about necessity",
			Description:    "The patient is not convinced the procedure is necessary.",
			Impact:         ImpactMedium,
			Actionable:     true,
			Recommendation: "Go over the clinical findings that justify the indication and offer a second opinion.",
			Icon:           "help-circle",
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return impactRank[insights[i].Impact] < impactRank[insights[j].Impact]
	})

	return insights, nil
}

func painLabel(intensity int) string {
	switch v := clampPain(intensity); {
	case v >= 8:
		return "at a very high intensity"
	case v >= 5:
		return "at a moderate-to-high intensity"
	default:
		return "at a manageable intensity"
	}
}
