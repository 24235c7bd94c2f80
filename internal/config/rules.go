package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/HelpPal/tcap/internal/domain"
)

// LoadRules reads a regulatory rules file: the questionnaire catalog and
// the rent rounding correction lists. An empty path returns the built-in
// CTCAC defaults.
func LoadRules(path string) (*domain.Rules, error) {
	if path == "" {
		return domain.DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	rules := &domain.Rules{}
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	if err := validateRules(rules); err != nil {
		return nil, fmt.Errorf("rules validation failed: %w", err)
	}
	return rules, nil
}

func validateRules(rules *domain.Rules) error {
	q := &rules.Questions
	if len(q.Income) == 0 {
		return fmt.Errorf("no income questions defined")
	}
	known := map[int]bool{}
	for _, id := range q.Income {
		known[id] = true
	}
	// The category subsets must partition questions the income catalog
	// knows about; a typo here silently drops income from the totals.
	for name, subset := range map[string][]int{
		"employment_or_wages":          q.EmploymentOrWages,
		"social_security_and_pensions": q.SocialSecurityAndPension,
		"public_assistance_total":      q.PublicAssistanceTotal,
		"other_income":                 q.OtherIncome,
	} {
		for _, id := range subset {
			if !known[id] {
				return fmt.Errorf(
					"category subset %s references unknown question %d", name, id)
			}
		}
	}
	return nil
}
