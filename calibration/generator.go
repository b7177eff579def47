package calibration

import (
	"github.com/sirupsen/logrus"

	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/plan"
)

// PredicateConfiguration names one point of the permutation space spec
// §4.6 enumerates. GeneratePredicatePermutations emits these in the
// lexicographic order of these fields, in declaration order: TableName,
// RowCountBucket, DataType, Encoding, Selectivity, ReferenceColumn,
// Functor. Within each field, values are ordered by their position in the
// caller's tables slice or in the Config, not by value; no sort is applied.
type PredicateConfiguration struct {
	TableName       string
	RowCountBucket  uint64
	DataType        sql.DataType
	Encoding        sql.EncodingType
	Selectivity     float64
	ReferenceColumn bool
	Functor         FunctorFamily
}

// GeneratedPlan is the LQP fragment(s) produced for one PredicateConfiguration:
// a PredicateNode over a plain table scan, and optionally a second
// PredicateNode over an index-scan-tagged leaf (spec §4.6 "the generator
// optionally produces an index-scan variant as a side-by-side alternative
// plan").
type GeneratedPlan struct {
	Configuration PredicateConfiguration
	Scan          *plan.PredicateNode
	IndexScan     *plan.PredicateNode
}

// familiesForReferenceColumn partitions the seven functor families by
// whether their comparison partner is itself a catalog column
// ("reference column") or a generated literal — the "reference-column-or-not"
// axis spec §4.6 names. Order within each half preserves
// AllFunctorFamilies' declaration order, which is the order the generator
// emits the Functor field in.
func familiesForReferenceColumn(referenceColumn bool) []FunctorFamily {
	if referenceColumn {
		return []FunctorFamily{BetweenColumnColumn, ColumnColumn, EquiOnStrings}
	}
	return []FunctorFamily{BetweenValueValue, ColumnValue, Like, Or}
}

// GeneratePredicatePermutations emits the Cartesian product of valid
// permutations over tables × cfg's axes as PredicateConfiguration-tagged
// LQP fragments, in the fixed lexicographic field order documented on
// PredicateConfiguration. The sequence of PredicateConfiguration values is a
// pure function of (tables, cfg): given the same catalog, table list, and
// configuration, it returns an identical ordered sequence of configurations
// on every call (spec §8 scenario 7). The GeneratedPlan LQP fragments
// themselves are not identical call to call: plan.NewStoredTable mints a
// fresh node identity for each leaf, so compare .Configuration rather than
// the plan nodes when asserting determinism.
func GeneratePredicatePermutations(catalog sql.Catalog, tables []TableRowCount, cfg *Config) ([]GeneratedPlan, error) {
	var out []GeneratedPlan
	for _, t := range tables {
		spec, ok := catalog.Table(t.TableName)
		if !ok {
			logrus.WithField("table", t.TableName).Warn("calibration: table not found in catalog, skipping")
			continue
		}
		for _, bucket := range cfg.RowCountBuckets {
			for _, dataType := range cfg.dataTypes() {
				for _, encoding := range cfg.encodings() {
					for _, selectivity := range cfg.SelectivityPoints {
						for _, referenceColumn := range referenceColumnAxis(cfg) {
							for _, family := range familiesForReferenceColumn(referenceColumn) {
								plans, err := buildGeneratedPlan(spec, PredicateConfiguration{
									TableName:       t.TableName,
									RowCountBucket:  bucket,
									DataType:        dataType,
									Encoding:        encoding,
									Selectivity:     selectivity,
									ReferenceColumn: referenceColumn,
									Functor:         family,
								})
								if err != nil {
									return nil, err
								}
								if plans != nil {
									out = append(out, *plans)
								}
							}
						}
					}
				}
			}
		}
	}
	return out, nil
}

// referenceColumnAxis returns cfg.ReferenceColumn, or {false, true} when
// the config leaves the axis unset, so a minimal config still exercises
// both functor halves.
func referenceColumnAxis(cfg *Config) []bool {
	if len(cfg.ReferenceColumn) > 0 {
		return cfg.ReferenceColumn
	}
	return []bool{false, true}
}

// buildGeneratedPlan runs the configuration's functor over a fresh
// StoredTable leaf and, if the functor produced a predicate, wires the
// plain-scan and index-scan PredicateNode variants. It returns a nil
// *GeneratedPlan (not an error) when the functor skips.
func buildGeneratedPlan(table sql.TableSpecification, cfg PredicateConfiguration) (*GeneratedPlan, error) {
	scanLeaf := plan.NewStoredTable(table)
	filter, ok, err := buildPredicate(cfg.Functor, scanLeaf, cfg.DataType, cfg.Encoding, cfg.Selectivity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	scan := plan.NewPredicate(filter, scanLeaf)

	indexLeaf := plan.NewStoredTable(table)
	indexLeaf.IsIndexScan = true
	indexFilter, indexOK, err := buildPredicate(cfg.Functor, indexLeaf, cfg.DataType, cfg.Encoding, cfg.Selectivity)
	if err != nil {
		return nil, err
	}
	var indexScan *plan.PredicateNode
	if indexOK {
		indexScan = plan.NewPredicate(indexFilter, indexLeaf)
	}

	return &GeneratedPlan{Configuration: cfg, Scan: scan, IndexScan: indexScan}, nil
}
