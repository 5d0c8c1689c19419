package analyzer

import (
	"errors"
	"testing"
)

// TestGeneratePersuasivePoints_MinimumThree tests the padding guarantee:
// any survey with data yields at least 3 points
func TestGeneratePersuasivePoints_MinimumThree(t *testing.T) {
	patient := &PatientRecord{ID: "p-1"}

	testCases := []struct {
		name   string
		survey IntakeSurvey
	}{
		{"Only pain set", IntakeSurvey{PainIntensity: 3}},
		{"Only severity set", IntakeSurvey{Severity: SeverityMild}},
		{"Only one symptom", IntakeSurvey{Symptoms: []string{SymptomNausea}}},
		{"One strong trigger", IntakeSurvey{Severity: SeveritySevere}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			points, err := GeneratePersuasivePoints(patient, &tc.survey)
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if len(points) < 3 {
				t.Errorf("Expected at least 3 points, got %d", len(points))
			}
		})
	}
}

// TestGeneratePersuasivePoints_EmptySurvey tests that a blank survey
// produces no points at all
func TestGeneratePersuasivePoints_EmptySurvey(t *testing.T) {
	patient := &PatientRecord{ID: "p-2"}

	points, err := GeneratePersuasivePoints(patient, &IntakeSurvey{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if points == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(points) != 0 {
		t.Errorf("Expected no points for a blank survey, got %d", len(points))
	}
}

// TestGeneratePersuasivePoints_SortedByStrength tests descending strength order
func TestGeneratePersuasivePoints_SortedByStrength(t *testing.T) {
	patient := &PatientRecord{ID: "p-3"}
	survey := &IntakeSurvey{
		Severity:         SeveritySevere,
		PainIntensity:    8,
		Limitation:       LimitationModerate,
		Concerns:         []string{ConcernProcedureFear},
		InsuranceType:    InsurancePrivate,
		ImportantFactors: []string{"positive recommendations from friends"},
	}

	points, err := GeneratePersuasivePoints(patient, survey)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(points) != 6 {
		t.Fatalf("Expected 6 points, got %d", len(points))
	}

	for i := 1; i < len(points); i++ {
		if strengthRank[points[i].Strength] < strengthRank[points[i-1].Strength] {
			t.Errorf("Points not sorted by strength at position %d", i)
		}
	}

	// The three high-strength points precede the medium ones, in
	// generation order.
	expected := []string{"prevent_complications", "pain_relief", "regain_activity"}
	for i, id := range expected {
		if points[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, points[i].ID)
		}
	}
}

// TestGeneratePersuasivePoints_CategoryTriggers tests field-to-category mapping
func TestGeneratePersuasivePoints_CategoryTriggers(t *testing.T) {
	patient := &PatientRecord{ID: "p-4"}

	testCases := []struct {
		name     string
		survey   IntakeSurvey
		pointID  string
		category PointCategory
	}{
		{"Severe symptoms", IntakeSurvey{Severity: SeveritySevere}, "prevent_complications", PointClinical},
		{"Limited function", IntakeSurvey{Limitation: LimitationSevere}, "regain_activity", PointQuality},
		{"Procedure fear", IntakeSurvey{Concerns: []string{ConcernProcedureFear}}, "routine_procedure", PointEmotional},
		{"Has insurance", IntakeSurvey{InsuranceType: InsurancePublic}, "coverage_available", PointFinancial},
		{"Values referrals", IntakeSurvey{ImportantFactors: []string{"Recomendaciones positivas"}}, "trusted_referrals", PointSocial},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			points, err := GeneratePersuasivePoints(patient, &tc.survey)
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}

			found := false
			for _, p := range points {
				if p.ID == tc.pointID {
					found = true
					if p.Category != tc.category {
						t.Errorf("Expected category %s, got %s", tc.category, p.Category)
					}
				}
			}
			if !found {
				t.Errorf("Expected point %s to be generated", tc.pointID)
			}
		})
	}
}

// TestGeneratePersuasivePoints_NoInsuranceNoFinancialPoint tests the
// "none" insurance exclusion
func TestGeneratePersuasivePoints_NoInsuranceNoFinancialPoint(t *testing.T) {
	patient := &PatientRecord{ID: "p-5"}
	survey := &IntakeSurvey{InsuranceType: InsuranceNone}

	points, err := GeneratePersuasivePoints(patient, survey)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	for _, p := range points {
		if p.ID == "coverage_available" {
			t.Error("Expected no financial point for uninsured patient")
		}
	}
}

// TestGeneratePersuasivePoints_NilInputs tests fail-fast on missing entities
func TestGeneratePersuasivePoints_NilInputs(t *testing.T) {
	if _, err := GeneratePersuasivePoints(nil, &IntakeSurvey{}); !errors.Is(err, ErrNilPatient) {
		t.Errorf("Expected ErrNilPatient, got %v", err)
	}
	if _, err := GeneratePersuasivePoints(&PatientRecord{}, nil); !errors.Is(err, ErrNilSurvey) {
		t.Errorf("Expected ErrNilSurvey, got %v", err)
	}
}
