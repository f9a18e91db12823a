package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RuleFile is the on-disk policy document. Percentages are converted to basis points.
//
//	commission:
//	  rates:
//	    AFFILIATE: 5
//	    AGENT: 10
//	payout:
//	  threshold: 200000
type RuleFile struct {
	Commission struct {
		Rates map[string]float64 `yaml:"rates"`
	} `yaml:"commission"`
	Payout struct {
		Threshold int64 `yaml:"threshold"`
	} `yaml:"payout"`
}

func LoadRuleFile(path string) (RuleFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RuleFile{}, fmt.Errorf("read commission rules file: %w", err)
	}
	return ParseRuleFile(raw)
}

func ParseRuleFile(raw []byte) (RuleFile, error) {
	var f RuleFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return RuleFile{}, fmt.Errorf("parse commission rules file: %w", err)
	}
	for level, pct := range f.Commission.Rates {
		if pct < 0 || pct > 100 {
			return RuleFile{}, fmt.Errorf("commission rate for %s must be between 0 and 100, got %v", level, pct)
		}
	}
	if f.Payout.Threshold < 0 {
		return RuleFile{}, fmt.Errorf("payout threshold must not be negative, got %d", f.Payout.Threshold)
	}
	return f, nil
}

// ApplyTo overrides env defaults with the values present in the file.
func (f RuleFile) ApplyTo(cfg *Config) {
	for level, pct := range f.Commission.Rates {
		bps := int64(math.Round(pct * 100))
		switch strings.ToUpper(level) {
		case "AFFILIATE":
			cfg.Commission.AffiliateRateBps = bps
		case "AGENT":
			cfg.Commission.AgentRateBps = bps
		}
	}
	if f.Payout.Threshold > 0 {
		cfg.Payout.Threshold = f.Payout.Threshold
	}
}
