// Package analyzer implements the clinic's pre-consultation decision
// engine: risk scoring over intake surveys, probable-diagnosis
// grouping, and the insight/recommendation/persuasive-point
// generators consumed by the admission workflow.
//
// Every function in this package is pure and deterministic: no I/O, no
// shared state, safe for concurrent use. Unknown answer codes never
// raise errors; they simply contribute nothing to the result. A nil
// patient or survey is a caller bug and fails fast so that "no risk
// factors" can never be confused with "no data".
package analyzer

import (
	"errors"
	"strings"
)

var (
	// ErrNilPatient is returned when a patient record is required but absent.
	ErrNilPatient = errors.New("analyzer: nil patient record")

	// ErrNilSurvey is returned when an intake survey is required but absent.
	ErrNilSurvey = errors.New("analyzer: nil intake survey")
)

// Severity is the coded overall-symptom severity from the intake survey.
type Severity string

const (
	SeverityUnknown  Severity = ""
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// ParseSeverity maps a raw answer code to a Severity. Unrecognized
// codes map to SeverityUnknown rather than failing.
func ParseSeverity(code string) Severity {
	switch Severity(code) {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return Severity(code)
	}
	return SeverityUnknown
}

// Duration is the coded symptom-duration bucket.
type Duration string

const (
	DurationUnknown        Duration = ""
	DurationUnderOneMonth  Duration = "less_than_1_month"
	DurationOneToThree     Duration = "1_3_months"
	DurationThreeToSix     Duration = "3_6_months"
	DurationSixToTwelve    Duration = "6_12_months"
	DurationOverOneYear    Duration = "more_than_1_year"
)

// ParseDuration maps a raw answer code to a Duration bucket.
func ParseDuration(code string) Duration {
	switch Duration(code) {
	case DurationUnderOneMonth, DurationOneToThree, DurationThreeToSix,
		DurationSixToTwelve, DurationOverOneYear:
		return Duration(code)
	}
	return DurationUnknown
}

// Limitation is the coded functional-limitation level.
type Limitation string

const (
	LimitationUnknown  Limitation = ""
	LimitationNone     Limitation = "none"
	LimitationMild     Limitation = "mild"
	LimitationModerate Limitation = "moderate"
	LimitationSevere   Limitation = "severe"
)

// ParseLimitation maps a raw answer code to a Limitation level.
func ParseLimitation(code string) Limitation {
	switch Limitation(code) {
	case LimitationNone, LimitationMild, LimitationModerate, LimitationSevere:
		return Limitation(code)
	}
	return LimitationUnknown
}

// Timeframe is the patient's desired timeframe for treatment.
type Timeframe string

const (
	TimeframeUnknown      Timeframe = ""
	TimeframeUrgent       Timeframe = "urgent"
	TimeframeThirtyDays   Timeframe = "within_30_days"
	TimeframeNinetyDays   Timeframe = "within_90_days"
	TimeframeNoRush       Timeframe = "no_rush"
)

// ParseTimeframe maps a raw answer code to a Timeframe.
func ParseTimeframe(code string) Timeframe {
	switch Timeframe(code) {
	case TimeframeUrgent, TimeframeThirtyDays, TimeframeNinetyDays, TimeframeNoRush:
		return Timeframe(code)
	}
	return TimeframeUnknown
}

// PatientRecord is the demographic/clinical slice of a patient the
// analyzer needs. Callers map their storage models into this shape.
type PatientRecord struct {
	ID                string
	FullName          string
	Age               int
	ChronicConditions []string
	HasPriorDiagnosis bool
	DiagnosisDetail   string
}

// IntakeSurvey is the canonical pre-consultation questionnaire shape.
// Coded fields are parsed into their closed enumerations at the
// ingestion boundary; anything the parser did not recognize arrives
// here as the Unknown member and contributes zero weight.
type IntakeSurvey struct {
	ID               string
	PatientID        string
	Symptoms         []string
	Severity         Severity
	PainIntensity    int
	Duration         Duration
	Limitation       Limitation
	Comorbidities    []string
	Timeframe        Timeframe
	Concerns         []string
	InsuranceType    string
	ImportantFactors []string
	DiagnosisDetail  string
	SupportPerson    string
}

// clampPain bounds pain intensity to the questionnaire's 0-10 scale.
func clampPain(v int) int {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

// toSet lowercases and de-duplicates a code list for membership tests.
func toSet(values []string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key != "" {
			out[key] = true
		}
	}
	return out
}
