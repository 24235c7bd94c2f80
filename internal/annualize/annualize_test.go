package annualize

import (
	"errors"
	"testing"
	"time"

	"github.com/HelpPal/tcap/internal/domain"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestTotalNaturalPeriodsPerYear(t *testing.T) {
	tests := []struct {
		name   string
		period domain.Period
		timeAt *time.Time
		want   int64
	}{
		{"weekly", domain.PeriodWeekly, nil, 5200},
		{"bi-weekly", domain.PeriodBiWeekly, nil, 2600},
		{"semi-monthly", domain.PeriodSemiMonthly, nil, 2400},
		{"monthly", domain.PeriodMonthly, nil, 1200},
		{"yearly", domain.PeriodYearly, nil, 100},
		{"other leap year", domain.PeriodOther, date(2024, time.June, 1), 36600},
		{"other regular year", domain.PeriodOther, date(2023, time.June, 1), 36500},
		{"other century non-leap", domain.PeriodOther, date(2100, time.June, 1), 36500},
		{"other cuadricentennial leap", domain.PeriodOther, date(2000, time.June, 1), 36600},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := TotalNaturalPeriodsPerYear(tc.period, tc.timeAt)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestTotalNaturalPeriodsPerYearRejectsHourly(t *testing.T) {
	for _, period := range []domain.Period{domain.PeriodHourly, domain.PeriodDaily, domain.Period("fortnightly")} {
		if _, err := TotalNaturalPeriodsPerYear(period, nil); !errors.Is(err, ErrUnsupportedPeriod) {
			t.Errorf("period %q: expected ErrUnsupportedPeriod, got %v", period, err)
		}
	}
}

func TestAnnualIncomeMonthly(t *testing.T) {
	// $5,000.00 per month -> $60,000.00 per year.
	rec := domain.IncomeRecord{
		Category: domain.CategoryRegular,
		Verified: domain.VerifiedTenant,
		Period:   domain.PeriodMonthly,
		Amount:   500000,
	}
	got, err := AnnualIncome(&rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 6000000 {
		t.Errorf("got %d, want 6000000", got)
	}
}

func TestAnnualIncomeHourly(t *testing.T) {
	// $15.00/hour, 40.00 hours weekly -> $600/week -> $31,200/year.
	rec := domain.IncomeRecord{
		Category:     domain.CategoryRegular,
		Verified:     domain.VerifiedEmployer,
		Period:       domain.PeriodHourly,
		Avg:          domain.PeriodWeekly,
		PeriodPerAvg: 4000,
		Amount:       1500,
	}
	got, err := AnnualIncome(&rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3120000 {
		t.Errorf("got %d, want 3120000", got)
	}
}

func TestAnnualIncomeHourlyDefaultsToWeeklyAveraging(t *testing.T) {
	rec := domain.IncomeRecord{
		Period:       domain.PeriodHourly,
		PeriodPerAvg: 4000,
		Amount:       1500,
	}
	got, err := AnnualIncome(&rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3120000 {
		t.Errorf("got %d, want 3120000", got)
	}
}

func TestAnnualIncomeAvgPerYearOverride(t *testing.T) {
	// Seasonal work: paid weekly but only 40.00 weeks out of the year.
	rec := domain.IncomeRecord{
		Period:     domain.PeriodWeekly,
		Amount:     100000,
		AvgPerYear: 4000,
	}
	got, err := AnnualIncome(&rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4000000 {
		t.Errorf("got %d, want 4000000", got)
	}

	// An override above the natural maximum is ignored.
	rec.AvgPerYear = 9900
	got, err = AnnualIncome(&rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5200000 {
		t.Errorf("got %d, want 5200000", got)
	}
}

func TestAnnualIncomeDateRange(t *testing.T) {
	// $3,000.00 over Jan 1 - Mar 1 of a leap year (61 days).
	rec := domain.IncomeRecord{
		Period:   domain.PeriodOther,
		Amount:   300000,
		StartsAt: date(2024, time.January, 1),
		EndsAt:   date(2024, time.March, 1),
	}
	got, err := AnnualIncome(&rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1800000 {
		t.Errorf("got %d, want 1800000", got)
	}
}

func TestAnnualIncomeZeroDayRange(t *testing.T) {
	rec := domain.IncomeRecord{
		Period: domain.PeriodOther,
		Amount: 300000,
	}
	if _, err := AnnualIncome(&rec); !errors.Is(err, ErrZeroDayRange) {
		t.Errorf("expected ErrZeroDayRange, got %v", err)
	}
}

func TestAnnualIncomeTaxReturnShortCircuitsPeriod(t *testing.T) {
	// A tax return figure is already annual regardless of the period unit.
	rec := domain.IncomeRecord{
		Verified: domain.VerifiedTaxReturn,
		Period:   domain.PeriodOther,
		Amount:   4200000,
	}
	got, err := AnnualIncome(&rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4200000 {
		t.Errorf("got %d, want 4200000", got)
	}
}

func TestAnnualizeDirectSumsRecords(t *testing.T) {
	records := []domain.IncomeRecord{
		{Category: domain.CategoryRegular, Period: domain.PeriodMonthly, Amount: 500000},
		{Category: domain.CategoryOvertime, Period: domain.PeriodMonthly, Amount: 50000},
	}
	got, err := Annualize(records, domain.VerifiedTenant)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 6600000 {
		t.Errorf("got %d, want 6600000", got)
	}
}

func TestAnnualizeTaxReturnIsPureSum(t *testing.T) {
	records := []domain.IncomeRecord{
		{Category: domain.CategoryRegular, Verified: domain.VerifiedTaxReturn, Amount: 1234567},
		{Category: domain.CategoryBonuses, Verified: domain.VerifiedTaxReturn, Amount: 7654321},
	}
	got, err := Annualize(records, domain.VerifiedTaxReturn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := records[0].Amount + records[1].Amount; got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}

func TestAnnualizeYearToDateKeepsLatest(t *testing.T) {
	records := []domain.IncomeRecord{
		{
			Category: domain.CategoryRegular,
			Verified: domain.VerifiedYearToDate,
			Period:   domain.PeriodOther,
			Amount:   300000,
			StartsAt: date(2024, time.January, 1),
			EndsAt:   date(2024, time.March, 1),
		},
		{
			Category: domain.CategoryRegular,
			Verified: domain.VerifiedYearToDate,
			Period:   domain.PeriodOther,
			Amount:   600000,
			StartsAt: date(2024, time.January, 1),
			EndsAt:   date(2024, time.June, 1),
		},
	}
	got, err := Annualize(records, domain.VerifiedYearToDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Only the June record contributes: 153 days covered.
	want, err := AnnualIncome(&records[1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}

func TestAnnualizeYearToDateTieKeepsLarger(t *testing.T) {
	records := []domain.IncomeRecord{
		{
			Category: domain.CategoryRegular,
			Verified: domain.VerifiedYearToDate,
			Period:   domain.PeriodOther,
			Amount:   300000,
			StartsAt: date(2024, time.January, 1),
			EndsAt:   date(2024, time.June, 1),
		},
		{
			Category: domain.CategoryRegular,
			Verified: domain.VerifiedYearToDate,
			Period:   domain.PeriodOther,
			Amount:   600000,
			StartsAt: date(2024, time.January, 1),
			EndsAt:   date(2024, time.June, 1),
		},
	}
	got, err := Annualize(records, domain.VerifiedYearToDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := AnnualIncome(&records[1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}

func TestAnnualizeYearToDateSumsAcrossCategories(t *testing.T) {
	records := []domain.IncomeRecord{
		{
			Category: domain.CategoryRegular,
			Verified: domain.VerifiedYearToDate,
			Period:   domain.PeriodOther,
			Amount:   300000,
			StartsAt: date(2023, time.January, 1),
			EndsAt:   date(2023, time.March, 31),
		},
		{
			Category: domain.CategoryOvertime,
			Verified: domain.VerifiedYearToDate,
			Period:   domain.PeriodOther,
			Amount:   30000,
			StartsAt: date(2023, time.January, 1),
			EndsAt:   date(2023, time.March, 31),
		},
	}
	got, err := Annualize(records, domain.VerifiedYearToDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, _ := AnnualIncome(&records[0])
	second, _ := AnnualIncome(&records[1])
	if got != first+second {
		t.Errorf("got %d, want %d", got, first+second)
	}
}

func TestAnnualizeYearToDateMissingEndsAt(t *testing.T) {
	records := []domain.IncomeRecord{
		{
			Category: domain.CategoryRegular,
			Verified: domain.VerifiedYearToDate,
			Period:   domain.PeriodOther,
			Amount:   300000,
		},
	}
	if _, err := Annualize(records, domain.VerifiedYearToDate); !errors.Is(err, ErrMissingEndsAt) {
		t.Errorf("expected ErrMissingEndsAt, got %v", err)
	}
}

func TestAnnualizePeriodToDate(t *testing.T) {
	// Two pay stubs of $3,000.00 each over 61 days of a leap year: one
	// sixth of a year apiece, so the year extrapolates to $18,000.00.
	stub := domain.IncomeRecord{
		Category: domain.CategoryRegular,
		Verified: domain.VerifiedPeriodToDate,
		Period:   domain.PeriodOther,
		Amount:   300000,
		StartsAt: date(2024, time.January, 1),
		EndsAt:   date(2024, time.March, 1),
	}
	second := stub
	second.StartsAt = date(2024, time.March, 2)
	second.EndsAt = date(2024, time.May, 1)

	got, err := Annualize([]domain.IncomeRecord{stub, second}, domain.VerifiedPeriodToDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1800000 {
		t.Errorf("got %d, want 1800000", got)
	}
}

func TestAnnualizePeriodToDateSkipsZeroFraction(t *testing.T) {
	records := []domain.IncomeRecord{
		{
			Category: domain.CategoryRegular,
			Verified: domain.VerifiedPeriodToDate,
			Period:   domain.PeriodOther,
			Amount:   300000,
			// No date range: the category's fraction sums to zero and is
			// skipped, not fatal.
		},
	}
	got, err := Annualize(records, domain.VerifiedPeriodToDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestGreaterOfPicksHighestMethod(t *testing.T) {
	verifications := map[domain.VerificationMethod][]domain.IncomeRecord{
		domain.VerifiedTenant: {
			{Category: domain.CategoryRegular, Period: domain.PeriodMonthly, Amount: 400000},
		},
		domain.VerifiedTaxReturn: {
			{Category: domain.CategoryRegular, Verified: domain.VerifiedTaxReturn, Amount: 5200000},
		},
	}
	if got := GreaterOf(verifications); got != 5200000 {
		t.Errorf("got %d, want 5200000", got)
	}

	// Adding a lower method never changes the result.
	verifications[domain.VerifiedEmployer] = []domain.IncomeRecord{
		{Category: domain.CategoryRegular, Period: domain.PeriodMonthly, Amount: 100000},
	}
	if got := GreaterOf(verifications); got != 5200000 {
		t.Errorf("got %d, want 5200000 after adding a lower method", got)
	}

	// Adding a higher one always wins.
	verifications[domain.VerifiedPeriodToDate] = []domain.IncomeRecord{
		{
			Category: domain.CategoryRegular,
			Period:   domain.PeriodOther,
			Amount:   600000,
			StartsAt: date(2023, time.January, 1),
			EndsAt:   date(2023, time.January, 31),
		},
	}
	higher, err := Annualize(verifications[domain.VerifiedPeriodToDate], domain.VerifiedPeriodToDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if higher <= 5200000 {
		t.Fatalf("test setup: expected PTD above 5200000, got %d", higher)
	}
	if got := GreaterOf(verifications); got != higher {
		t.Errorf("got %d, want %d", got, higher)
	}
}

func TestGreaterOfSkipsBogusMethods(t *testing.T) {
	verifications := map[domain.VerificationMethod][]domain.IncomeRecord{
		// Zero-day range raises inside the annualizer; the method is
		// excluded, not fatal.
		domain.VerifiedTenant: {
			{Category: domain.CategoryRegular, Period: domain.PeriodOther, Amount: 9900000},
		},
		domain.VerifiedEmployer: {
			{Category: domain.CategoryRegular, Period: domain.PeriodMonthly, Amount: 100000},
		},
	}
	if got := GreaterOf(verifications); got != 1200000 {
		t.Errorf("got %d, want 1200000", got)
	}
}

func TestGreaterOfAllMethodsBogus(t *testing.T) {
	verifications := map[domain.VerificationMethod][]domain.IncomeRecord{
		domain.VerifiedYearToDate: {
			{Category: domain.CategoryRegular, Period: domain.PeriodOther, Amount: 300000},
		},
	}
	if got := GreaterOf(verifications); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestGreaterOfAssets(t *testing.T) {
	assets := []domain.AssetRecord{
		{Category: domain.AssetChecking, Verified: domain.VerifiedTenant, Amount: 50000},
		{Category: domain.AssetChecking, Verified: domain.VerifiedEmployer, Amount: 80000},
		{Category: domain.AssetChecking, Verified: domain.VerifiedTenant, Amount: 80000},
	}
	got := GreaterOfAssets(assets)
	if got == nil {
		t.Fatal("expected an asset, got nil")
	}
	// Ties keep the first encountered.
	if got != &assets[1] {
		t.Errorf("expected the first 80000 asset, got %+v", got)
	}

	if GreaterOfAssets(nil) != nil {
		t.Error("expected nil for an empty group")
	}
}
