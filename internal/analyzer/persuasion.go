package analyzer

import (
	"sort"
	"strings"
)

// Strength ranks how compelling a persuasive point is.
type Strength string

const (
	StrengthHigh   Strength = "high"
	StrengthMedium Strength = "medium"
	StrengthLow    Strength = "low"
)

var strengthRank = map[Strength]int{
	StrengthHigh:   0,
	StrengthMedium: 1,
	StrengthLow:    2,
}

// PointCategory tags the angle a persuasive point argues from.
type PointCategory string

const (
	PointClinical  PointCategory = "clinical"
	PointQuality   PointCategory = "quality"
	PointEmotional PointCategory = "emotional"
	PointFinancial PointCategory = "financial"
	PointSocial    PointCategory = "social"
)

// PersuasivePoint is one talking point the physician can use when
// discussing the procedure with the patient.
type PersuasivePoint struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Category    PointCategory `json:"category"`
	Strength    Strength      `json:"strength"`
}

// genericPoints pad the result whenever fewer than 3 specific points
// fired, so the physician always has a minimum set to work with.
var genericPoints = []PersuasivePoint{
	{
		ID:          "expert_recommendation",
		Title:       "Expert recommendation",
		Description: "The surgical team's assessment is that treatment offers the best long-term outcome for this presentation.",
		Icon:        "award",
		Category:    PointClinical,
		Strength:    StrengthLow,
	},
	{
		ID:          "proven_outcomes",
		Title:       "Proven outcomes",
		Description: "The clinic's outcome record for this procedure is consistently favorable across age groups.",
		Icon:        "bar-chart",
		Category:    PointClinical,
		Strength:    StrengthLow,
	},
	{
		ID:          "personal_plan",
		Title:       "A plan built around you",
		Description: "Scheduling, recovery and follow-up adapt to the patient's own circumstances.",
		Icon:        "user-check",
		Category:    PointQuality,
		Strength:    StrengthLow,
	},
}

// GeneratePersuasivePoints derives ranked talking points from the
// survey, sorted by strength descending with stable ties. Whenever the
// survey carries any data the result has at least 3 points (padded
// with the generic expert-recommendation point); a survey with no data
// at all yields an empty slice.
func GeneratePersuasivePoints(patient *PatientRecord, survey *IntakeSurvey) ([]PersuasivePoint, error) {
	if patient == nil {
		return nil, ErrNilPatient
	}
	if survey == nil {
		return nil, ErrNilSurvey
	}
	if !hasSurveyData(survey) {
		return []PersuasivePoint{}, nil
	}

	points := []PersuasivePoint{}
	concerns := toSet(survey.Concerns)

	if survey.Severity == SeveritySevere {
		points = append(points, PersuasivePoint{
			ID:          "prevent_complications",
			Title:       "Prevent complications",
			Description: "Operating now avoids the emergency-surgery scenario severe symptoms can lead to.",
			Icon:        "shield",
			Category:    PointClinical,
			Strength:    StrengthHigh,
		})
	}

	if clampPain(survey.PainIntensity) >= 7 {
		points = append(points, PersuasivePoint{
			ID:          "pain_relief",
			Title:       "Lasting pain relief",
			Description: "The procedure resolves the cause of the pain instead of managing it indefinitely.",
			Icon:        "activity",
			Category:    PointClinical,
			Strength:    StrengthHigh,
		})
	}

	if survey.Limitation == LimitationModerate || survey.Limitation == LimitationSevere {
		points = append(points, PersuasivePoint{
			ID:          "regain_activity",
			Title:       "Regain daily activity",
			Description: "Most patients return to the activities the condition currently limits within weeks of surgery.",
			Icon:        "trending-up",
			Category:    PointQuality,
			Strength:    StrengthHigh,
		})
	}

	if concerns[ConcernProcedureFear] || concerns[ConcernAnesthesia] {
		points = append(points, PersuasivePoint{
			ID:          "routine_procedure",
			Title:       "A routine, well-understood procedure",
			Description: "This intervention is performed weekly at the clinic with a very low complication rate.",
			Icon:        "heart",
			Category:    PointEmotional,
			Strength:    StrengthMedium,
		})
	}

	if survey.InsuranceType != "" && survey.InsuranceType != InsuranceNone {
		points = append(points, PersuasivePoint{
			ID:          "coverage_available",
			Title:       "Your coverage applies",
			Description: "The patient's insurance covers a substantial part of the procedure; untreated progression usually costs more.",
			Icon:        "credit-card",
			Category:    PointFinancial,
			Strength:    StrengthMedium,
		})
	}

	if mentionsRecommendations(survey.ImportantFactors) {
		points = append(points, PersuasivePoint{
			ID:          "trusted_referrals",
			Title:       "Patients like you recommend it",
			Description: "The patient already values recommendations; connect them with references from treated patients.",
			Icon:        "users",
			Category:    PointSocial,
			Strength:    StrengthMedium,
		})
	}

	for _, filler := range genericPoints {
		if len(points) >= 3 {
			break
		}
		points = append(points, filler)
	}

	sort.SliceStable(points, func(i, j int) bool {
		return strengthRank[points[i].Strength] < strengthRank[points[j].Strength]
	})

	return points, nil
}

// hasSurveyData reports whether the survey carries any answer at all.
// An entirely blank survey generates no talking points.
func hasSurveyData(survey *IntakeSurvey) bool {
	return len(survey.Symptoms) > 0 ||
		survey.Severity != SeverityUnknown ||
		survey.PainIntensity > 0 ||
		survey.Duration != DurationUnknown ||
		survey.Limitation != LimitationUnknown ||
		len(survey.Comorbidities) > 0 ||
		survey.Timeframe != TimeframeUnknown ||
		len(survey.Concerns) > 0 ||
		survey.InsuranceType != "" ||
		len(survey.ImportantFactors) > 0 ||
		survey.DiagnosisDetail != ""
}

func mentionsRecommendations(factors []string) bool {
	for _, factor := range factors {
		f := strings.ToLower(factor)
		if strings.Contains(f, "recommend") || strings.Contains(f, "recomendacion") {
			return true
		}
	}
	return false
}
