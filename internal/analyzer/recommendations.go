package analyzer

// RecommendationCategory bundles action items for one aspect of the
// consultation.
type RecommendationCategory struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Items       []string `json:"items"`
}

// GenerateRecommendations produces up to four recommendation bundles
// for the consulting physician. Clinical, educational and logistical
// bundles appear only when something triggers them; the conversion
// strategy bundle is always present and branches on the supplied
// conversion probability (0.7 and 0.4 are the branch points).
func GenerateRecommendations(patient *PatientRecord, survey *IntakeSurvey, conversionProbability float64) ([]RecommendationCategory, error) {
	if patient == nil {
		return nil, ErrNilPatient
	}
	if survey == nil {
		return nil, ErrNilSurvey
	}

	categories := []RecommendationCategory{}
	concerns := toSet(survey.Concerns)

	var clinical []string
	if survey.Severity == SeveritySevere {
		clinical = append(clinical, "Prioritize evaluation: reported severity is in the highest bracket.")
	}
	if clampPain(survey.PainIntensity) >= 8 {
		clinical = append(clinical, "Address pain management options for the waiting period before surgery.")
	}
	if len(survey.Comorbidities) > 2 {
		clinical = append(clinical, "Request pre-operative workup early given the number of comorbidities.")
	}
	if survey.Limitation == LimitationSevere || survey.Limitation == LimitationModerate {
		clinical = append(clinical, "Document the functional limitation; it strengthens the surgical indication.")
	}
	if len(clinical) > 0 {
		categories = append(categories, RecommendationCategory{
			ID:          "clinical",
			Title:       "Clinical",
			Description: "Clinical follow-up for this consultation",
			Icon:        "stethoscope",
			Items:       clinical,
		})
	}

	var educational []string
	if concerns[ConcernProcedureFear] || concerns[ConcernAnesthesia] {
		educational = append(educational, "Prepare visual material explaining the procedure and anesthesia protocol.")
	}
	if concerns[ConcernDoubtsNecessity] {
		educational = append(educational, "Bring the imaging/findings that support the indication and review them together.")
	}
	if len(educational) > 0 {
		categories = append(categories, RecommendationCategory{
			ID:          "educational",
			Title:       "Educational",
			Description: "Material to address the patient's doubts",
			Icon:        "book-open",
			Items:       educational,
		})
	}

	var logistical []string
	if concerns[ConcernRecoveryTime] || concerns[ConcernIncomeLoss] {
		logistical = append(logistical, "Present the expected recovery timeline and a return-to-work plan.")
	}
	if concerns[ConcernCost] || survey.InsuranceType == InsuranceNone {
		logistical = append(logistical, "Involve the administrative team for cost estimates and payment options.")
	}
	if survey.Timeframe == TimeframeUrgent {
		logistical = append(logistical, "Check operating-room availability within the next two weeks before the patient leaves.")
	}
	if len(logistical) > 0 {
		categories = append(categories, RecommendationCategory{
			ID:          "logistical",
			Title:       "Logistical",
			Description: "Coordination around scheduling and costs",
			Icon:        "clipboard-list",
			Items:       logistical,
		})
	}

	categories = append(categories, conversionStrategy(conversionProbability))
	return categories, nil
}

// conversionStrategy builds the always-present strategy bundle. High
// probability pushes toward closing, the middle band keeps a short
// leash, and low probability switches to a conservative follow-up.
func conversionStrategy(probability float64) RecommendationCategory {
	var items []string
	switch {
	case probability >= 0.7:
		items = []string{
			"Propose a concrete surgery date during this consultation.",
			"Hand over the pre-operative checklist and consent forms today.",
			"Confirm the support person and discharge logistics now.",
		}
	case probability >= 0.4:
		items = []string{
			"Schedule a follow-up call within one week.",
			"Offer a second opinion with another staff surgeon.",
			"Send a written summary of the indication and options discussed.",
		}
	default:
		items = []string{
			"Agree on a conservative management plan with a review in 4-6 weeks.",
			"Document symptom triggers the patient should watch for.",
			"Leave the door open: make clear scheduling remains available anytime.",
		}
	}

	return RecommendationCategory{
		ID:          "conversion_strategy",
		Title:       "Conversion strategy",
		Description: "Next steps toward a scheduling decision",
		Icon:        "trending-up",
		Items:       items,
	}
}
