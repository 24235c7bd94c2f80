package certify

import (
	"sort"

	"github.com/HelpPal/tcap/internal/annualize"
	"github.com/HelpPal/tcap/internal/domain"
)

// AssetGroup holds one (source, category) group of a resident's asset
// records. Several records in a group are competing verifications of the
// same asset; the greater-of rule picks one.
type AssetGroup struct {
	Key      string
	Source   *domain.Source
	Category domain.AssetCategory
	Records  []domain.AssetRecord
}

// AggregateAssets groups a resident's asset records by source then
// category, ordered by question, source, category and verification method.
// Records without a source share a synthetic no-source bucket.
func AggregateAssets(r *domain.Resident) []*AssetGroup {
	records := make([]domain.AssetRecord, len(r.Assets))
	copy(records, r.Assets)
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].QuestionID != records[j].QuestionID {
			return records[i].QuestionID < records[j].QuestionID
		}
		iKey, jKey := records[i].Source.GroupKey(), records[j].Source.GroupKey()
		if iKey != jKey {
			return iKey < jKey
		}
		if records[i].Category != records[j].Category {
			return records[i].Category < records[j].Category
		}
		return records[i].Verified.Rank() < records[j].Verified.Rank()
	})

	type groupKey struct {
		source   string
		category domain.AssetCategory
	}
	var groups []*AssetGroup
	byKey := map[groupKey]*AssetGroup{}
	for i := range records {
		rec := &records[i]
		key := groupKey{source: rec.Source.GroupKey(), category: rec.Category}
		group, ok := byKey[key]
		if !ok {
			group = &AssetGroup{
				Key:      key.source,
				Source:   rec.Source,
				Category: rec.Category,
			}
			byKey[key] = group
			groups = append(groups, group)
		}
		group.Records = append(group.Records, *rec)
	}
	return groups
}

// SelectedAssets returns the greater-of pick of every group, the records
// whose amounts and returns make it onto the certification.
func SelectedAssets(groups []*AssetGroup) []*domain.AssetRecord {
	var selected []*domain.AssetRecord
	for _, group := range groups {
		if asset := annualize.GreaterOfAssets(group.Records); asset != nil {
			selected = append(selected, asset)
		}
	}
	return selected
}

// CashValueOfAssets sums the cash value of the selected asset of every
// group.
func CashValueOfAssets(groups []*AssetGroup) int64 {
	var total int64
	for _, asset := range SelectedAssets(groups) {
		total += asset.Amount
	}
	return total
}

// AnnualIncomeFromAssets sums the actual yearly return of the selected
// asset of every group.
func AnnualIncomeFromAssets(groups []*AssetGroup) int64 {
	var total int64
	for _, asset := range SelectedAssets(groups) {
		total += asset.AnnualIncome()
	}
	return total
}

// imputedAssetThreshold is the household cash value, in cents, above which
// HUD imputes a passbook return on assets.
const imputedAssetThreshold = 500000

// imputedPassbookRate is the imputed annual return in basis points (0.06%).
const imputedPassbookRate = 6

// ImputedIncomeFromAssets returns the passbook-rate income imputed on the
// household's total cash value: zero below the $5,000 threshold, otherwise
// the cash value at the imputed rate.
func ImputedIncomeFromAssets(cashValue int64) int64 {
	if cashValue < imputedAssetThreshold {
		return 0
	}
	return cashValue * imputedPassbookRate / 10000
}
