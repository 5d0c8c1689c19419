package analyzer

// Band classifies a risk index for display. It never alters the score.
type Band string

const (
	BandHigh     Band = "High"
	BandModerate Band = "Moderate"
	BandLow      Band = "Low"
)

// Thresholds holds the clinical cutoffs used for banding and priority
// flagging. The defaults mirror the clinic's established values; they
// are configuration, not derived.
type Thresholds struct {
	HighBand          int `yaml:"high_band"`
	ModerateBand      int `yaml:"moderate_band"`
	PriorityThreshold int `yaml:"priority_threshold"`
}

// DefaultThresholds returns the clinic's standard cutoffs: band at
// 30/50, priority patients above 40.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HighBand:          50,
		ModerateBand:      30,
		PriorityThreshold: 40,
	}
}

// ComputeRiskIndex derives the additive risk index for one patient and
// their intake survey. The score is an open-ended non-negative
// integer; use RiskBand to classify it. Each rule is evaluated
// independently, so the result is deterministic and monotonic in every
// individual field.
func ComputeRiskIndex(patient *PatientRecord, survey *IntakeSurvey) (int, error) {
	if patient == nil {
		return 0, ErrNilPatient
	}
	if survey == nil {
		return 0, ErrNilSurvey
	}
	return ageRisk(patient.Age) + surveyRisk(survey), nil
}

func ageRisk(age int) int {
	switch {
	case age > 65:
		return 10
	case age > 50:
		return 5
	}
	return 0
}

// surveyRisk scores the survey-only rules. Cohort aggregation uses it
// directly since demographic data is not available per survey there.
func surveyRisk(survey *IntakeSurvey) int {
	score := 0

	score += severityWeights[survey.Severity]
	score += limitationWeights[survey.Limitation]
	score += durationWeights[survey.Duration]

	pain := clampPain(survey.PainIntensity)
	switch {
	case pain >= 8:
		score += 12
	case pain >= 5:
		score += 6
	}

	switch n := len(survey.Comorbidities); {
	case n > 2:
		score += 8
	case n > 0:
		score += 4
	}

	symptoms := toSet(survey.Symptoms)
	for code, weight := range symptomWeights {
		if symptoms[code] {
			score += weight
		}
	}

	if survey.Timeframe == TimeframeUrgent {
		score += 10
	}

	return score
}

// RiskBand classifies a risk index against the configured cutoffs.
func RiskBand(score int, th Thresholds) Band {
	switch {
	case score >= th.HighBand:
		return BandHigh
	case score >= th.ModerateBand:
		return BandModerate
	}
	return BandLow
}

// IsPriority reports whether a score flags the patient for priority
// handling.
func IsPriority(score int, th Thresholds) bool {
	return score > th.PriorityThreshold
}
