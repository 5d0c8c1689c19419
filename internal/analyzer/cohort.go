package analyzer

import (
	"fmt"
	"math"
)

// EmptyCohortMessage is the sentinel returned when aggregation is
// requested over zero surveys. It is a defined outcome, not an error.
const EmptyCohortMessage = "Not enough survey data to generate cohort insights yet."

// GenerateCohortInsights computes population-level observations over a
// set of intake surveys. Sentences appear in a fixed order; metrics
// with zero qualifying surveys are omitted instead of reporting 0%.
// Nil entries in the input are ignored.
func GenerateCohortInsights(surveys []*IntakeSurvey, th Thresholds) []string {
	var cohort []*IntakeSurvey
	for _, s := range surveys {
		if s != nil {
			cohort = append(cohort, s)
		}
	}
	if len(cohort) == 0 {
		return []string{EmptyCohortMessage}
	}

	total := len(cohort)
	insights := []string{}

	groups := GroupByProbableDiagnosis(cohort)
	topCategory, topCount := "", 0
	for _, category := range DefaultCategories() {
		if n := len(groups[category]); n > topCount {
			topCategory, topCount = category, n
		}
	}
	if topCount > 0 {
		insights = append(insights, fmt.Sprintf(
			"%s is the most common probable diagnosis at %d%% of the cohort.",
			topCategory, percent(topCount, total)))
	}

	severe := 0
	highPain := 0
	withComorbidities := 0
	urgent := 0
	priority := 0
	for _, s := range cohort {
		if s.Severity == SeveritySevere {
			severe++
		}
		if clampPain(s.PainIntensity) >= 7 {
			highPain++
		}
		if len(s.Comorbidities) > 0 {
			withComorbidities++
		}
		if s.Timeframe == TimeframeUrgent {
			urgent++
		}
		if IsPriority(surveyRisk(s), th) {
			priority++
		}
	}

	if severe > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d%% of patients report severe symptoms.", percent(severe, total)))
	}
	if highPain > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d%% of patients report high pain levels (7 or above).", percent(highPain, total)))
	}
	if withComorbidities > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d%% of patients have at least one comorbidity.", percent(withComorbidities, total)))
	}
	if urgent > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d%% of patients want to resolve their condition urgently.", percent(urgent, total)))
	}
	if priority > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d%% of patients qualify as priority cases by risk index.", percent(priority, total)))
	}

	return insights
}

func percent(count, total int) int {
	return int(math.Round(100 * float64(count) / float64(total)))
}
