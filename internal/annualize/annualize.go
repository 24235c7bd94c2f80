package annualize

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/HelpPal/tcap/internal/domain"
)

// Data-validity errors. They abort the computation of a single verification
// method, never the household; the greater-of selector downgrades them to a
// zero contribution.
var (
	ErrUnsupportedPeriod = errors.New("unsupported period")
	ErrZeroDayRange      = errors.New("zero days in period date range")
	ErrMissingEndsAt     = errors.New("income record without an ends_at in YTD calculation")
)

// AnnualIncome annualizes one record according to its period unit.
//
// Hourly and daily rates are first extended over the averaging period
// (amount x periods-per-average / 100), then over the year. Fixed periods
// multiply by the periods-per-year invariant. Date-range records pro-rate
// the amount over the days covered. Tax-return amounts are already annual.
func AnnualIncome(rec *domain.IncomeRecord) (int64, error) {
	if rec.Verified == domain.VerifiedTaxReturn {
		return rec.Amount, nil
	}
	switch rec.Period {
	case domain.PeriodHourly, domain.PeriodDaily:
		avgPerYear, err := nbNaturalPeriods(rec)
		if err != nil {
			return 0, err
		}
		return rec.Amount * rec.PeriodPerAvg / 100 * avgPerYear / 100, nil
	case domain.PeriodWeekly, domain.PeriodBiWeekly, domain.PeriodSemiMonthly,
		domain.PeriodMonthly, domain.PeriodYearly:
		avgPerYear, err := nbNaturalPeriods(rec)
		if err != nil {
			return 0, err
		}
		return rec.Amount * avgPerYear / 100, nil
	case domain.PeriodOther:
		nbDays := rec.NbDays()
		if nbDays == 0 {
			return 0, ErrZeroDayRange
		}
		avgPerYear, err := nbNaturalPeriods(rec)
		if err != nil {
			return 0, err
		}
		return rec.Amount * avgPerYear / nbDays / 100, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedPeriod, rec.Period)
}

// Annualize produces one annual figure for a list of records sharing a
// verification method.
func Annualize(records []domain.IncomeRecord, verified domain.VerificationMethod) (int64, error) {
	switch verified {
	case domain.VerifiedYearToDate:
		return annualizeYearToDate(records)
	case domain.VerifiedPeriodToDate:
		return annualizePeriodToDate(records)
	case domain.VerifiedTaxReturn:
		return annualizeTaxReturn(records), nil
	}
	// Direct calculation for tenant-declared or third-party records.
	return annualizeDirect(records)
}

// annualizeDirect sums each record's individually annualized amount.
func annualizeDirect(records []domain.IncomeRecord) (int64, error) {
	var annual int64
	for i := range records {
		amount, err := AnnualIncome(&records[i])
		if err != nil {
			return 0, err
		}
		annual += amount
	}
	return annual, nil
}

// annualizeYearToDate keeps, per category, only the record with the latest
// ends_at and sums their annualized amounts. Two records sharing the same
// ends_at date keep the larger one; duplicate entries for the same source
// are a known data-entry hazard.
func annualizeYearToDate(records []domain.IncomeRecord) (int64, error) {
	lasts := map[domain.IncomeCategory]*domain.IncomeRecord{}
	for i := range records {
		rec := &records[i]
		last, ok := lasts[rec.Category]
		if !ok {
			lasts[rec.Category] = rec
			last = rec
		}
		if last.EndsAt == nil || rec.EndsAt == nil {
			log.Warn().Str("group", rec.Group).
				Msg("income record without an ends_at in YTD calculation")
			return 0, ErrMissingEndsAt
		}
		if last.EndsAt.Before(*rec.EndsAt) {
			lasts[rec.Category] = rec
		} else if sameDate(*last.EndsAt, *rec.EndsAt) {
			lastAnnual, err := AnnualIncome(last)
			if err != nil {
				return 0, err
			}
			recAnnual, err := AnnualIncome(rec)
			if err != nil {
				return 0, err
			}
			if lastAnnual < recAnnual {
				lasts[rec.Category] = rec
			}
		}
	}
	var annual int64
	for _, rec := range lasts {
		amount, err := AnnualIncome(rec)
		if err != nil {
			return 0, err
		}
		annual += amount
	}
	return annual, nil
}

// annualizePeriodToDate sums, per category, the raw amounts and the
// fraction of a year each record covers, then divides the one by the other.
// Categories whose fraction sums to zero are skipped with a warning rather
// than failing the computation.
func annualizePeriodToDate(records []domain.IncomeRecord) (int64, error) {
	amounts := map[domain.IncomeCategory]int64{}
	yearlyFractions := map[domain.IncomeCategory]float64{}
	for i := range records {
		rec := &records[i]
		total, err := totalNaturalPeriods(rec)
		if err != nil {
			return 0, err
		}
		amounts[rec.Category] += rec.Amount
		yearlyFractions[rec.Category] += float64(rec.NbDays()) * 100.0 / float64(total)
	}
	var annual float64
	for category, amount := range amounts {
		if yearlyFractions[category] > 0 {
			annual += float64(amount) / yearlyFractions[category]
		} else {
			log.Warn().Str("category", string(category)).
				Strs("groups", recordGroups(records)).
				Msg("divide by zero in PTD calculation")
		}
	}
	return int64(annual), nil
}

// annualizeTaxReturn sums raw amounts verbatim; tax figures are already
// annual.
func annualizeTaxReturn(records []domain.IncomeRecord) int64 {
	var annual int64
	for i := range records {
		annual += records[i].Amount
	}
	return annual
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func recordGroups(records []domain.IncomeRecord) []string {
	groups := make([]string, 0, len(records))
	for i := range records {
		groups = append(groups, records[i].Group)
	}
	return groups
}
