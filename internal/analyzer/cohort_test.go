package analyzer

import (
	"strings"
	"testing"
)

// TestGenerateCohortInsights_EmptyCohort tests the sentinel outcome
func TestGenerateCohortInsights_EmptyCohort(t *testing.T) {
	insights := GenerateCohortInsights(nil, DefaultThresholds())

	if len(insights) != 1 {
		t.Fatalf("Expected exactly one sentinel string, got %d", len(insights))
	}
	if insights[0] != EmptyCohortMessage {
		t.Errorf("Expected sentinel message, got %q", insights[0])
	}
}

// TestGenerateCohortInsights_SampleCohort tests the 10-survey scenario:
// 6 inguinal (60%), 3 severe (30%)
func TestGenerateCohortInsights_SampleCohort(t *testing.T) {
	var surveys []*IntakeSurvey
	for i := 0; i < 6; i++ {
		surveys = append(surveys, &IntakeSurvey{DiagnosisDetail: "hernia inguinal"})
	}
	for i := 0; i < 4; i++ {
		surveys = append(surveys, &IntakeSurvey{DiagnosisDetail: "gastritis"})
	}
	for i := 0; i < 3; i++ {
		surveys[i].Severity = SeveritySevere
	}

	insights := GenerateCohortInsights(surveys, DefaultThresholds())

	if !containsSentence(insights, "Hernia Inguinal") || !containsSentence(insights, "60%") {
		t.Errorf("Expected a sentence naming Hernia Inguinal at 60%%, got %v", insights)
	}
	if !containsSentence(insights, "30% of patients report severe symptoms") {
		t.Errorf("Expected 30%% severe sentence, got %v", insights)
	}
}

// TestGenerateCohortInsights_OmitsZeroMetrics tests that absent metrics
// produce no "0%" sentences
func TestGenerateCohortInsights_OmitsZeroMetrics(t *testing.T) {
	surveys := []*IntakeSurvey{
		{Severity: SeverityMild, PainIntensity: 2},
		{Severity: SeverityMild, PainIntensity: 1},
	}

	insights := GenerateCohortInsights(surveys, DefaultThresholds())

	for _, sentence := range insights {
		if strings.Contains(sentence, "0%") && !strings.Contains(sentence, "100%") {
			t.Errorf("Expected zero metrics to be omitted, got %q", sentence)
		}
		if strings.Contains(sentence, "severe") {
			t.Errorf("Expected no severe sentence for a mild cohort, got %q", sentence)
		}
	}

	// The most-common-diagnosis sentence is always present for a
	// non-empty cohort.
	if !containsSentence(insights, "most common") {
		t.Errorf("Expected most-common diagnosis sentence, got %v", insights)
	}
}

// TestGenerateCohortInsights_FullMetrics tests all sentences in order
func TestGenerateCohortInsights_FullMetrics(t *testing.T) {
	surveys := []*IntakeSurvey{
		{
			DiagnosisDetail: "vesicula",
			Severity:        SeveritySevere,
			PainIntensity:   9,
			Comorbidities:   []string{"diabetes"},
			Timeframe:       TimeframeUrgent,
			Duration:        DurationOverOneYear,
			Limitation:      LimitationSevere,
		},
		{
			DiagnosisDetail: "vesicula",
			Severity:        SeverityMild,
			PainIntensity:   2,
		},
	}

	insights := GenerateCohortInsights(surveys, DefaultThresholds())

	expectedOrder := []string{
		"most common",
		"severe symptoms",
		"high pain",
		"comorbidity",
		"urgently",
		"priority",
	}
	if len(insights) != len(expectedOrder) {
		t.Fatalf("Expected %d sentences, got %d: %v", len(expectedOrder), len(insights), insights)
	}
	for i, keyword := range expectedOrder {
		if !strings.Contains(insights[i], keyword) {
			t.Errorf("Sentence %d: expected keyword %q in %q", i, keyword, insights[i])
		}
	}
	for _, keyword := range []string{"Vesícula", "100%", "50%"} {
		if !containsSentence(insights, keyword) {
			t.Errorf("Expected %q somewhere in %v", keyword, insights)
		}
	}
}

// TestGenerateCohortInsights_SkipsNilSurveys tests nil tolerance
func TestGenerateCohortInsights_SkipsNilSurveys(t *testing.T) {
	insights := GenerateCohortInsights([]*IntakeSurvey{nil, nil}, DefaultThresholds())

	if len(insights) != 1 || insights[0] != EmptyCohortMessage {
		t.Errorf("Expected sentinel for all-nil input, got %v", insights)
	}
}

func containsSentence(insights []string, keyword string) bool {
	for _, sentence := range insights {
		if strings.Contains(sentence, keyword) {
			return true
		}
	}
	return false
}
