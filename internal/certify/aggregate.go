// Package certify turns a household application into the figures a tenant
// income certification reports: per-resident and household category totals,
// income from assets, and the comparison against published limits.
//
// All figures are derived, recomputed on demand from the records supplied,
// and deterministic for a given snapshot. Nothing here mutates its inputs.
package certify

import (
	"sort"

	"github.com/HelpPal/tcap/internal/annualize"
	"github.com/HelpPal/tcap/internal/domain"
)

// SourceBucket holds one source's income records for a single question,
// split by verification method. The method map feeds the greater-of
// selector directly.
type SourceBucket struct {
	Key     string
	Source  *domain.Source
	Methods map[domain.VerificationMethod][]domain.IncomeRecord
}

// QuestionBucket holds the source buckets of one questionnaire question, in
// source order.
type QuestionBucket struct {
	QuestionID int
	Sources    []*SourceBucket

	byKey map[string]*SourceBucket
}

func (b *QuestionBucket) source(rec *domain.IncomeRecord) *SourceBucket {
	key := rec.Source.GroupKey()
	bucket, ok := b.byKey[key]
	if !ok {
		bucket = &SourceBucket{
			Key:     key,
			Source:  rec.Source,
			Methods: map[domain.VerificationMethod][]domain.IncomeRecord{},
		}
		b.byKey[key] = bucket
		b.Sources = append(b.Sources, bucket)
	}
	return bucket
}

// IncomeAggregate is the three-level question -> source -> verification
// method grouping of one resident's income records.
type IncomeAggregate struct {
	Questions []*QuestionBucket

	byID map[int]*QuestionBucket
}

// AggregateIncome groups a resident's income records ordered by question,
// source and verification method. Records without a source share a
// synthetic no-source bucket; records on questions outside the catalog are
// ignored.
func AggregateIncome(r *domain.Resident, catalog *domain.Questions) *IncomeAggregate {
	agg := &IncomeAggregate{byID: map[int]*QuestionBucket{}}
	for _, id := range catalog.Income {
		bucket := &QuestionBucket{
			QuestionID: id,
			byKey:      map[string]*SourceBucket{},
		}
		agg.byID[id] = bucket
		agg.Questions = append(agg.Questions, bucket)
	}

	records := make([]domain.IncomeRecord, len(r.Income))
	copy(records, r.Income)
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].QuestionID != records[j].QuestionID {
			return records[i].QuestionID < records[j].QuestionID
		}
		iKey, jKey := records[i].Source.GroupKey(), records[j].Source.GroupKey()
		if iKey != jKey {
			return iKey < jKey
		}
		return records[i].Verified.Rank() < records[j].Verified.Rank()
	})

	for i := range records {
		rec := &records[i]
		question, ok := agg.byID[rec.QuestionID]
		if !ok {
			continue
		}
		bucket := question.source(rec)
		bucket.Methods[rec.Verified] = append(bucket.Methods[rec.Verified], *rec)
	}
	return agg
}

// SumGreaterOf computes the annual income over a question subset: buckets
// belonging to the same source are first merged across the subset's
// questions, the greater-of rule then applies once per source, and the
// per-source figures are summed. Merging first matters when one source
// answers several questions (e.g. N/A placeholders); applying greater-of
// per question would double count it.
func (a *IncomeAggregate) SumGreaterOf(questions []int) int64 {
	var order []string
	merged := map[string]map[domain.VerificationMethod][]domain.IncomeRecord{}
	for _, id := range questions {
		question, ok := a.byID[id]
		if !ok {
			continue
		}
		for _, src := range question.Sources {
			methods, ok := merged[src.Key]
			if !ok {
				methods = map[domain.VerificationMethod][]domain.IncomeRecord{}
				merged[src.Key] = methods
				order = append(order, src.Key)
			}
			for verified, records := range src.Methods {
				methods[verified] = append(methods[verified], records...)
			}
		}
	}

	var total int64
	for _, key := range order {
		total += annualize.GreaterOf(merged[key])
	}
	return total
}
