package calibration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/plan"
)

func fixtureCatalog() sql.Catalog {
	return sql.NewStaticCatalog(sql.TableSpecification{
		Name:     "orders",
		RowCount: 10000,
		Columns: []sql.ColumnSpecification{
			{Name: "id", DataType: sql.Long, Encoding: sql.Unencoded},
			{Name: "amount", DataType: sql.Double, Encoding: sql.Unencoded},
			{Name: "status", DataType: sql.String, Encoding: sql.Dictionary},
		},
		Constraints: []sql.ColumnIndexSet{sql.NewColumnIndexSet(0)},
	})
}

func fixtureConfig() *Config {
	return &Config{
		DataTypes:         []string{"double", "string"},
		Encodings:         []string{"unencoded", "dictionary"},
		SelectivityPoints: []float64{0.1, 0.5},
		ReferenceColumn:   []bool{false, true},
		RowCountBuckets:   []uint64{1000, 100000},
	}
}

// TestGeneratePredicatePermutationsIsDeterministic is §8 scenario 7: given
// fixed (tables, config), the generator returns an identical ordered
// sequence on every call.
func TestGeneratePredicatePermutationsIsDeterministic(t *testing.T) {
	catalog := fixtureCatalog()
	tables := []TableRowCount{{TableName: "orders", RowCount: 10000}}
	cfg := fixtureConfig()

	first, err := GeneratePredicatePermutations(catalog, tables, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := GeneratePredicatePermutations(catalog, tables, cfg)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, first[i].Configuration, second[i].Configuration)
	}
}

func TestGeneratePredicatePermutationsSkipsMissingTable(t *testing.T) {
	catalog := fixtureCatalog()
	tables := []TableRowCount{{TableName: "does_not_exist", RowCount: 1}}
	cfg := fixtureConfig()

	plans, err := GeneratePredicatePermutations(catalog, tables, cfg)
	require.NoError(t, err)
	require.Empty(t, plans)
}

func TestGeneratePredicatePermutationsProducesIndexScanVariant(t *testing.T) {
	catalog := fixtureCatalog()
	tables := []TableRowCount{{TableName: "orders", RowCount: 10000}}
	cfg := fixtureConfig()

	plans, err := GeneratePredicatePermutations(catalog, tables, cfg)
	require.NoError(t, err)

	found := false
	for _, p := range plans {
		if p.IndexScan != nil {
			found = true
			leaf, ok := p.IndexScan.Left().(*plan.StoredTableNode)
			require.True(t, ok)
			require.True(t, leaf.IsIndexScan)
		}
	}
	require.True(t, found, "at least one generated plan should carry an index-scan variant")
}

func TestEquiOnStringsSkipsNonStringDataType(t *testing.T) {
	catalog := fixtureCatalog()
	tables := []TableRowCount{{TableName: "orders", RowCount: 10000}}
	cfg := &Config{
		DataTypes:         []string{"double"},
		Encodings:         []string{"unencoded"},
		SelectivityPoints: []float64{0.5},
		ReferenceColumn:   []bool{true},
		RowCountBuckets:   []uint64{1000},
	}

	plans, err := GeneratePredicatePermutations(catalog, tables, cfg)
	require.NoError(t, err)
	for _, p := range plans {
		require.NotEqual(t, EquiOnStrings, p.Configuration.Functor)
	}
}
