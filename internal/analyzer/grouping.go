package analyzer

import "strings"

// Probable-diagnosis category names. CategoryOther is the catch-all;
// every survey lands in exactly one category.
const (
	CategoryHerniaInguinal   = "Hernia Inguinal"
	CategoryHerniaUmbilical  = "Hernia Umbilical"
	CategoryHerniaIncisional = "Hernia Incisional"
	CategoryGallbladder      = "Vesícula"
	CategoryOther            = "Otro"
)

// DefaultCategories returns the clinic's category list in display order.
func DefaultCategories() []string {
	return []string{
		CategoryHerniaInguinal,
		CategoryHerniaUmbilical,
		CategoryHerniaIncisional,
		CategoryGallbladder,
		CategoryOther,
	}
}

// diagnosisKeywords maps free-text keywords to categories, in priority
// order: the first keyword found in the prior-diagnosis text wins.
// Matching is case-insensitive substring search, same as the intake
// team has always recorded diagnoses.
var diagnosisKeywords = []struct {
	keyword  string
	category string
}{
	{"inguinal", CategoryHerniaInguinal},
	{"umbilical", CategoryHerniaUmbilical},
	{"incisional", CategoryHerniaIncisional},
	{"vesícula", CategoryGallbladder},
	{"vesicula", CategoryGallbladder},
	{"biliar", CategoryGallbladder},
}

// GroupByProbableDiagnosis partitions surveys into probable-diagnosis
// categories. A prior free-text diagnosis takes precedence; otherwise
// the symptom heuristics decide. The result always contains every
// category key, so callers can render empty groups without nil checks.
// Nil entries in the input are skipped.
func GroupByProbableDiagnosis(surveys []*IntakeSurvey) map[string][]*IntakeSurvey {
	groups := make(map[string][]*IntakeSurvey, len(DefaultCategories()))
	for _, category := range DefaultCategories() {
		groups[category] = []*IntakeSurvey{}
	}

	for _, survey := range surveys {
		if survey == nil {
			continue
		}
		category := ClassifySurvey(survey)
		groups[category] = append(groups[category], survey)
	}

	return groups
}

// ClassifySurvey assigns a single survey to its probable-diagnosis
// category.
func ClassifySurvey(survey *IntakeSurvey) string {
	if detail := strings.ToLower(strings.TrimSpace(survey.DiagnosisDetail)); detail != "" {
		for _, entry := range diagnosisKeywords {
			if strings.Contains(detail, entry.keyword) {
				return entry.category
			}
		}
		return CategoryOther
	}

	symptoms := toSet(survey.Symptoms)
	switch {
	case symptoms[SymptomVisibleLump] && symptoms[SymptomExertionPain]:
		return CategoryHerniaInguinal
	case symptoms[SymptomVisibleLump]:
		return CategoryHerniaUmbilical
	case symptoms[SymptomPostMealPain] || symptoms[SymptomJaundice]:
		return CategoryGallbladder
	}
	return CategoryOther
}
