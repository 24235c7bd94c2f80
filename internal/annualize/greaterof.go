package annualize

import (
	"github.com/rs/zerolog/log"

	"github.com/HelpPal/tcap/internal/domain"
)

// GreaterOf applies the regulatory greater-of rule across verification
// methods for one source: every method present is annualized and the
// highest figure wins. A method whose records cannot be annualized is
// excluded with a warning instead of failing the household computation;
// when no method succeeds the source contributes zero.
func GreaterOf(verifications map[domain.VerificationMethod][]domain.IncomeRecord) int64 {
	var result int64
	for verified, records := range verifications {
		annual, err := Annualize(records, verified)
		if err != nil {
			log.Warn().Err(err).Str("verified", string(verified)).
				Strs("groups", recordGroups(records)).
				Msg("skipping verification method with bogus records")
			continue
		}
		if annual > result {
			result = annual
		}
	}
	return result
}

// GreaterOfAssets returns the asset with the largest cash value in a group,
// keeping the first encountered on ties. Nil for an empty group.
func GreaterOfAssets(assets []domain.AssetRecord) *domain.AssetRecord {
	var result *domain.AssetRecord
	for i := range assets {
		if result == nil || assets[i].Amount > result.Amount {
			result = &assets[i]
		}
	}
	return result
}
