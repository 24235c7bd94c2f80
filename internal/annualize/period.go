// Package annualize converts partially verified income records into annual
// figures. All period counts are scaled by 100 (52.00 weeks -> 5200) and all
// amounts are integer cents, so every computation is exact integer
// arithmetic except the period-to-date fractions, which follow the published
// calculation sheet.
package annualize

import (
	"fmt"
	"time"

	"github.com/HelpPal/tcap/internal/domain"
)

// DaysInYear returns 366 for Gregorian leap years, else 365.
func DaysInYear(year int) int64 {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}

func timeOrNow(at *time.Time) time.Time {
	if at == nil || at.IsZero() {
		return time.Now().UTC()
	}
	return *at
}

// TotalNaturalPeriodsPerYear is the invariant number of periods in a year,
// scaled by 100. For the date-range "other" period it depends on the
// reference date's year. Hourly and daily are not natural periods and are
// rejected; callers must resolve them through the record's averaging period
// first.
func TotalNaturalPeriodsPerYear(period domain.Period, timeAt *time.Time) (int64, error) {
	switch period {
	case domain.PeriodWeekly:
		return 5200, nil
	case domain.PeriodBiWeekly:
		return 2600, nil
	case domain.PeriodSemiMonthly:
		return 2400, nil
	case domain.PeriodMonthly:
		return 1200, nil
	case domain.PeriodYearly:
		return 100, nil
	case domain.PeriodOther:
		return DaysInYear(timeOrNow(timeAt).Year()) * 100, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedPeriod, period)
}

// naturalPeriod resolves the period used for the natural-count lookup.
// Hourly, daily and weekly rates are averaged over the declared averaging
// period.
func naturalPeriod(rec *domain.IncomeRecord) domain.Period {
	switch rec.Period {
	case domain.PeriodHourly, domain.PeriodDaily, domain.PeriodWeekly:
		return rec.AveragingPeriod()
	}
	return rec.Period
}

// totalNaturalPeriods is the invariant periods-per-year count for a record.
func totalNaturalPeriods(rec *domain.IncomeRecord) (int64, error) {
	return TotalNaturalPeriodsPerYear(naturalPeriod(rec), rec.EndsAt)
}

// nbNaturalPeriods is the number of periods the position is actually worked
// out of a year: the natural count, unless a smaller explicit override was
// entered. The override never exceeds the natural maximum.
func nbNaturalPeriods(rec *domain.IncomeRecord) (int64, error) {
	total, err := totalNaturalPeriods(rec)
	if err != nil {
		return 0, err
	}
	if rec.AvgPerYear > 0 && rec.AvgPerYear < total {
		return rec.AvgPerYear, nil
	}
	return total, nil
}
