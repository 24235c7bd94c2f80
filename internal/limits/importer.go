package limits

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/HelpPal/tcap/internal/domain"
)

// Column names of the HUD "Section 8 Income Limits" dataset.
var incomeColumns = []string{
	"State_Alpha", "fips2010", "cbsasub", "Metro_Area_Name",
	"County_Name", "metro", "l50_1",
}

// Column names of the HUD MTSP dataset, minus the year-stamped limit base
// (lim50_YYp1) which depends on the effective date.
var rentColumns = []string{
	"stusps", "county_name", "fips2010", "cbsasub", "areaname", "metro",
}

type columnIndex map[string]int

func indexColumns(headers, names []string) (columnIndex, error) {
	cols := columnIndex{}
	for _, name := range names {
		found := -1
		for i, header := range headers {
			if header == name {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("missing column %q in dataset header", name)
		}
		cols[name] = found
	}
	return cols, nil
}

// ImportIncomeLevels loads a HUD Section 8 income limits CSV into the
// store, stamping every created limit with createdAt (the publication's
// effective date). HUD publishes the very-low (50%) figure; the 100% base
// is twice that, stored in cents. Family sizes 1 through 7 are imported.
func (s *Store) ImportIncomeLevels(r io.Reader, createdAt time.Time) error {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read income levels: %w", err)
	}
	return s.loadIncomeLevels(rows, createdAt)
}

func (s *Store) loadIncomeLevels(rows [][]string, createdAt time.Time) error {
	if len(rows) == 0 {
		return fmt.Errorf("empty income levels dataset")
	}
	cols, err := indexColumns(rows[0], incomeColumns)
	if err != nil {
		return err
	}
	limitBase := cols["l50_1"]
	for linenum, row := range rows[1:] {
		county := s.UpsertCounty(domain.County{
			Region:        row[cols["State_Alpha"]],
			FIPS2010:      row[cols["fips2010"]],
			Name:          row[cols["County_Name"]],
			CBSASub:       row[cols["cbsasub"]],
			MetroAreaName: row[cols["Metro_Area_Name"]],
			IsMetro:       row[cols["metro"]] == "1",
		})
		for familySize := 1; familySize <= maxFamilySize; familySize++ {
			veryLow, err := strconv.ParseInt(row[limitBase+familySize-1], 10, 64)
			if err != nil {
				return fmt.Errorf("line %d: bad income limit for %s family of %d: %w",
					linenum+2, county.Name, familySize, err)
			}
			s.Income = append(s.Income, domain.IncomeLimit{
				CreatedAt:  createdAt,
				County:     county.Name,
				FamilySize: familySize,
				FullAmount: veryLow * 2 * 100,
			})
		}
		log.Debug().Int("line", linenum+2).Str("county", county.Name).
			Msg("imported income levels")
	}
	return nil
}

// ImportRentLevels loads a HUD MTSP rent limits CSV into the store,
// keeping California rows only (the CTCAC tables this serves are CA).
// Without computeLimits the dataset's lim50_YYpN columns already are the
// 60% monthly rent limits per bedroom count; the 100% base is
// limit*100/60. With computeLimits the columns are annual per-person
// income levels and the 60% limit is derived: occupancy is interpolated
// across person counts (1.5 persons per bedroom), then a 30% rent burden
// at 120% of the very-low level, monthly.
func (s *Store) ImportRentLevels(r io.Reader, createdAt time.Time, computeLimits bool) error {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read rent levels: %w", err)
	}
	return s.loadRentLevels(rows, createdAt, computeLimits)
}

func (s *Store) loadRentLevels(rows [][]string, createdAt time.Time, computeLimits bool) error {
	if len(rows) == 0 {
		return fmt.Errorf("empty rent levels dataset")
	}
	cols, err := indexColumns(rows[0], rentColumns)
	if err != nil {
		return err
	}
	limitColumn := fmt.Sprintf("lim50_%sp1", createdAt.Format("06"))
	limitCols, err := indexColumns(rows[0], []string{limitColumn})
	if err != nil {
		return err
	}
	limitBase := limitCols[limitColumn]

	for linenum, row := range rows[1:] {
		if row[cols["stusps"]] != "CA" {
			continue
		}
		county := s.UpsertCounty(domain.County{
			Region:        row[cols["stusps"]],
			FIPS2010:      row[cols["fips2010"]],
			Name:          row[cols["county_name"]],
			CBSASub:       row[cols["cbsasub"]],
			MetroAreaName: row[cols["areaname"]],
			IsMetro:       row[cols["metro"]] == "1",
		})
		levels, err := occupancyLevels(row, limitBase, computeLimits)
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", linenum+2, county.Name, err)
		}
		for nbBedrooms := 0; nbBedrooms <= maxBedrooms; nbBedrooms++ {
			var fullAmount int64
			if computeLimits {
				// 30% of 120% of the very-low income level, monthly,
				// truncated to whole dollars at each step like the
				// published tables.
				limit60 := levels[nbBedrooms].
					Mul(decimal.NewFromFloat(1.2)).
					Mul(decimal.NewFromFloat(0.3)).
					Div(decimal.NewFromInt(12)).IntPart()
				fullAmount = decimal.NewFromInt(limit60 * 100).
					Div(decimal.NewFromInt(60)).IntPart()
			} else {
				fullAmount = levels[nbBedrooms].IntPart() * 100 / 60
			}
			s.Rent = append(s.Rent, domain.RentLimit{
				CreatedAt:  createdAt,
				County:     county.Name,
				NbBedrooms: nbBedrooms,
				FullAmount: fullAmount * 100,
			})
		}
		log.Debug().Int("line", linenum+2).Str("county", county.Name).
			Msg("imported rent levels")
	}
	return nil
}

// occupancyLevels returns the per-bedroom limit column values. The direct
// dataset carries one column per bedroom count; the computed dataset
// carries per-person income levels, interpolated at the half-person marks
// of the 1.5-persons-per-bedroom occupancy standard.
func occupancyLevels(row []string, limitBase int, computeLimits bool) ([]decimal.Decimal, error) {
	nbColumns := maxBedrooms + 1
	if computeLimits {
		nbColumns = 9
	}
	persons := make([]decimal.Decimal, nbColumns)
	for i := 0; i < nbColumns; i++ {
		value, err := strconv.ParseInt(row[limitBase+i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad limit column %d: %w", i, err)
		}
		persons[i] = decimal.NewFromInt(value)
	}
	if !computeLimits {
		return persons, nil
	}
	// Occupancy runs 1 person for a studio plus 1.5 per bedroom; the
	// half-person marks average the two surrounding person columns.
	two := decimal.NewFromInt(2)
	return []decimal.Decimal{
		persons[0],
		persons[0].Add(persons[1]).Div(two),
		persons[2],
		persons[3].Add(persons[4]).Div(two),
		persons[5],
		persons[6].Add(persons[7]).Div(two),
	}, nil
}
