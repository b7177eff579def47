package calibration

// TableRowCount is one entry of the "(table_name, row_count)" input the
// generator consumes (spec §4.6). GeneratePredicatePermutations does not
// read RowCount: it enumerates every Config.RowCountBuckets entry for each
// table, and RowCount does not override the catalog's own row count.
type TableRowCount struct {
	TableName string
	RowCount  uint64
}
