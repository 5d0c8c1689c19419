// Package config loads service configuration from environment variables
// and the clinical thresholds file.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vidasalud-clinic/admission-service/internal/analyzer"
)

// Config holds runtime configuration for the admission service
type Config struct {
	HTTPAddr                     string
	AnalysisCacheSize            int
	DefaultConversionProbability float64
	Thresholds                   analyzer.Thresholds
}

// Load reads configuration from environment variables, applying defaults
// for anything unset. The clinical thresholds file is optional; without
// it the clinic's standard cutoffs apply.
func Load() Config {
	cfg := Config{
		HTTPAddr:                     ":8080",
		AnalysisCacheSize:            256,
		DefaultConversionProbability: 0.5,
		Thresholds:                   analyzer.DefaultThresholds(),
	}

	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	}

	if sizeStr := os.Getenv("ANALYSIS_CACHE_SIZE"); sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil && size > 0 {
			cfg.AnalysisCacheSize = size
		}
	}

	if probStr := os.Getenv("DEFAULT_CONVERSION_PROBABILITY"); probStr != "" {
		if prob, err := strconv.ParseFloat(probStr, 64); err == nil && prob >= 0 && prob <= 1 {
			cfg.DefaultConversionProbability = prob
		}
	}

	if path := os.Getenv("CLINICAL_THRESHOLDS_FILE"); path != "" {
		thresholds, err := LoadThresholds(path)
		if err != nil {
			log.Printf("Warning: failed to load clinical thresholds from %s: %v", path, err)
			log.Println("Falling back to default thresholds")
		} else {
			cfg.Thresholds = thresholds
			log.Printf("✓ Loaded clinical thresholds from %s", path)
		}
	}

	return cfg
}

// thresholdsFile is the on-disk shape of the clinical thresholds config
type thresholdsFile struct {
	Thresholds analyzer.Thresholds `yaml:"thresholds"`
}

// LoadThresholds reads the clinical cutoffs from a YAML file. Fields
// missing from the file keep their default values.
func LoadThresholds(path string) (analyzer.Thresholds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return analyzer.Thresholds{}, fmt.Errorf("failed to read thresholds file: %w", err)
	}

	file := thresholdsFile{Thresholds: analyzer.DefaultThresholds()}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return analyzer.Thresholds{}, fmt.Errorf("failed to parse thresholds file: %w", err)
	}

	th := file.Thresholds
	if th.HighBand < th.ModerateBand {
		return analyzer.Thresholds{}, fmt.Errorf("invalid thresholds: high_band (%d) below moderate_band (%d)", th.HighBand, th.ModerateBand)
	}
	if th.ModerateBand < 0 || th.PriorityThreshold < 0 {
		return analyzer.Thresholds{}, fmt.Errorf("invalid thresholds: cutoffs must be non-negative")
	}

	return th, nil
}
