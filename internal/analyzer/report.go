package analyzer

// Report is the full analysis of one patient's intake survey: the risk
// index with its band, the probable-diagnosis category, and the three
// generated lists the consultation screen renders.
type Report struct {
	PatientID             string                   `json:"patient_id"`
	RiskScore             int                      `json:"risk_score"`
	RiskBand              Band                     `json:"risk_band"`
	Priority              bool                     `json:"priority"`
	ProbableDiagnosis     string                   `json:"probable_diagnosis"`
	ConversionProbability float64                  `json:"conversion_probability"`
	Insights              []Insight                `json:"insights"`
	Recommendations       []RecommendationCategory `json:"recommendations"`
	PersuasivePoints      []PersuasivePoint        `json:"persuasive_points"`
}

// BuildReport runs the full analysis pipeline over one patient/survey
// pair. It is a convenience composition of the individual generators
// and shares their failure semantics.
func BuildReport(patient *PatientRecord, survey *IntakeSurvey, conversionProbability float64, th Thresholds) (*Report, error) {
	score, err := ComputeRiskIndex(patient, survey)
	if err != nil {
		return nil, err
	}

	insights, err := GenerateInsights(patient, survey)
	if err != nil {
		return nil, err
	}

	recommendations, err := GenerateRecommendations(patient, survey, conversionProbability)
	if err != nil {
		return nil, err
	}

	points, err := GeneratePersuasivePoints(patient, survey)
	if err != nil {
		return nil, err
	}

	return &Report{
		PatientID:             patient.ID,
		RiskScore:             score,
		RiskBand:              RiskBand(score, th),
		Priority:              IsPriority(score, th),
		ProbableDiagnosis:     ClassifySurvey(survey),
		ConversionProbability: conversionProbability,
		Insights:              insights,
		Recommendations:       recommendations,
		PersuasivePoints:      points,
	}, nil
}
