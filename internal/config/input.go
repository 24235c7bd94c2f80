// Package config loads the YAML inputs of the certification engine: the
// application file describing a household and the regulatory rules file
// carrying the questionnaire catalog and rent rounding corrections.
package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/HelpPal/tcap/internal/domain"
)

// InputParser handles parsing of application input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an application from a YAML file, validates it and
// resolves each record's source reference to the owning resident's source.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Application, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var app domain.Application
	if err := yaml.Unmarshal(data, &app); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateApplication(&app); err != nil {
		return nil, fmt.Errorf("application validation failed: %w", err)
	}
	return &app, nil
}

// ValidateApplication validates the loaded application and wires record
// source references. Structural problems are errors; data-quality gaps the
// engine tolerates (a YTD record without an end date, an unknown source
// slug) are logged as warnings so an operator can fix the entry.
func (ip *InputParser) ValidateApplication(app *domain.Application) error {
	if app.County == "" {
		return fmt.Errorf("county is required")
	}
	if app.EffectiveDate.IsZero() {
		return fmt.Errorf("effective date is required")
	}
	if len(app.Residents) == 0 {
		return fmt.Errorf("at least one resident is required")
	}
	if app.NbBedrooms < 0 {
		return fmt.Errorf("bedroom count cannot be negative")
	}
	if app.Head() == nil {
		return fmt.Errorf("no resident is marked head of household")
	}

	for i := range app.Residents {
		if err := ip.validateResident(&app.Residents[i]); err != nil {
			return fmt.Errorf("resident %d (%s) validation failed: %w",
				i, app.Residents[i].FullName, err)
		}
	}
	return nil
}

func (ip *InputParser) validateResident(r *domain.Resident) error {
	if r.FullName == "" {
		return fmt.Errorf("full name is required")
	}
	if r.BirthDate.IsZero() {
		return fmt.Errorf("birth date is required")
	}
	if _, err := domain.ParseRelation(string(r.RelationToHead)); err != nil {
		return err
	}

	sources := map[string]*domain.Source{}
	for _, source := range r.Sources {
		if source.Slug == "" {
			return fmt.Errorf("source %q needs a slug", source.Name)
		}
		if _, exists := sources[source.Slug]; exists {
			return fmt.Errorf("duplicate source slug %q", source.Slug)
		}
		sources[source.Slug] = source
	}

	for j := range r.Income {
		if err := ip.validateIncomeRecord(&r.Income[j], sources); err != nil {
			return fmt.Errorf("income record %d: %w", j, err)
		}
	}
	for j := range r.Assets {
		if err := ip.validateAssetRecord(&r.Assets[j], sources); err != nil {
			return fmt.Errorf("asset record %d: %w", j, err)
		}
	}
	return nil
}

func (ip *InputParser) validateIncomeRecord(rec *domain.IncomeRecord, sources map[string]*domain.Source) error {
	if _, err := domain.ParseIncomeCategory(string(rec.Category)); err != nil {
		return err
	}
	if _, err := domain.ParseVerificationMethod(string(rec.Verified)); err != nil {
		return err
	}
	if _, err := domain.ParsePeriod(string(rec.Period)); err != nil {
		return err
	}
	if rec.Avg != "" {
		if _, err := domain.ParsePeriod(string(rec.Avg)); err != nil {
			return fmt.Errorf("averaging period: %w", err)
		}
	}
	if rec.Amount < 0 {
		return fmt.Errorf("amount cannot be negative")
	}
	rec.Source = resolveSource(rec.SourceSlug, sources, rec.Group)

	// The annualizer reports these at computation time; flag them early so
	// the operator can fix the entry before certifying.
	if rec.Verified == domain.VerifiedYearToDate && rec.EndsAt == nil {
		log.Warn().Str("group", rec.Group).
			Msg("year-to-date income record without an end date")
	}
	if rec.Period == domain.PeriodOther && rec.NbDays() == 0 {
		log.Warn().Str("group", rec.Group).
			Msg("date-range income record without a date range")
	}
	return nil
}

func (ip *InputParser) validateAssetRecord(rec *domain.AssetRecord, sources map[string]*domain.Source) error {
	if _, err := domain.ParseAssetCategory(string(rec.Category)); err != nil {
		return err
	}
	if _, err := domain.ParseVerificationMethod(string(rec.Verified)); err != nil {
		return err
	}
	if rec.Amount < 0 {
		return fmt.Errorf("amount cannot be negative")
	}
	if rec.InterestRate < 0 {
		return fmt.Errorf("interest rate cannot be negative")
	}
	rec.Source = resolveSource(rec.SourceSlug, sources, rec.Slug)
	return nil
}

func resolveSource(slug string, sources map[string]*domain.Source, record string) *domain.Source {
	if slug == "" {
		return nil
	}
	source, ok := sources[slug]
	if !ok {
		log.Warn().Str("source", slug).Str("record", record).
			Msg("record references an undeclared source")
		return nil
	}
	return source
}
