package limits

import (
	"fmt"
	"io"
	"time"

	"github.com/HelpPal/tcap/internal/domain"
	"github.com/HelpPal/tcap/internal/humanize"
)

// incomeTiers are the AMI percentages the CTCAC income tables publish rows
// for. Only 100, 60 and 50 carry figures here; deeper targeting tiers are
// printed as empty rows to keep the table shape of the published PDFs.
var incomeTiers = []int64{100, 60, 55, 50, 45, 40, 35, 30}

// ExportIncomeLevels renders the income limits in force at the effective
// date, one block per county with one row per AMI tier and one column per
// family size, mirroring the CTCAC income limit tables.
func (s *Store) ExportIncomeLevels(w io.Writer, effectiveDate time.Time) error {
	for _, name := range s.CountyNames("") {
		current := s.CurrentIncomeLimits(name, effectiveDate)
		if len(current) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n", name); err != nil {
			return err
		}
		for _, tier := range incomeTiers {
			fmt.Fprintf(w, "%d%% Income Level", tier)
			if tier == 100 || tier == 60 || tier == 50 {
				for _, limit := range current {
					fmt.Fprintf(w, "\t%6s",
						humanize.AsMoney(limit.AsPercent(tier), false))
				}
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

// ExportRentLevels renders the rent limits in force at the effective date
// for California counties, one row per tier and one column per bedroom
// count. The 60% tier applies the county rounding corrections, matching
// the published CTCAC rent tables dollar for dollar.
func (s *Store) ExportRentLevels(w io.Writer, effectiveDate time.Time, rounding *domain.RentRounding) error {
	for _, name := range s.CountyNames("CA") {
		current := s.CurrentRentLimits(name, effectiveDate)
		if len(current) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n", name); err != nil {
			return err
		}
		for _, tier := range incomeTiers {
			fmt.Fprintf(w, "%d%% Rent Level", tier)
			if tier == 100 || tier == 60 || tier == 50 {
				for _, limit := range current {
					fmt.Fprintf(w, "\t%9s",
						humanize.AsMoney(limit.AsPercent(tier, rounding), false))
				}
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}
