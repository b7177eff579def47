package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hyriseql/lqp/calibration"
	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

// This is an example of how to drive the calibration generator end to end:
// load a table catalog and a calibration.Config, generate every valid
// predicate permutation, and print each one's LQP description.
//
// > calibrate --config calibration.yaml --table orders:100000 --table lineitem:6000000

var (
	configPath string
	tableFlags tableList
)

// tableList accumulates repeated --table name:row_count flags.
type tableList []calibration.TableRowCount

func (t *tableList) String() string {
	return fmt.Sprintf("%v", []calibration.TableRowCount(*t))
}

func (t *tableList) Set(value string) error {
	sep := -1
	for i := len(value) - 1; i >= 0; i-- {
		if value[i] == ':' {
			sep = i
			break
		}
	}
	if sep <= 0 {
		return fmt.Errorf("invalid --table value %q, expected name:row_count", value)
	}
	name := value[:sep]
	var rowCount uint64
	if _, err := fmt.Sscanf(value[sep+1:], "%d", &rowCount); err != nil {
		return fmt.Errorf("invalid --table value %q, expected name:row_count: %w", value, err)
	}
	*t = append(*t, calibration.TableRowCount{TableName: name, RowCount: rowCount})
	return nil
}

func main() {
	flag.StringVar(&configPath, "config", "", "path to the calibration config YAML file")
	flag.Var(&tableFlags, "table", "name:row_count pair, repeatable")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if configPath == "" || len(tableFlags) == 0 {
		fmt.Fprintln(os.Stderr, "usage: calibrate --config calibration.yaml --table name:row_count [--table name:row_count ...]")
		os.Exit(2)
	}

	cfg, err := calibration.LoadConfig(configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load calibration config")
	}

	catalog := demoCatalog(tableFlags)

	plans, err := calibration.GeneratePredicatePermutations(catalog, tableFlags, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to generate predicate permutations")
	}

	logrus.WithField("count", len(plans)).Info("generated predicate permutations")
	for _, p := range plans {
		fmt.Printf("%s/%s/%s/%v: %s\n",
			p.Configuration.TableName, p.Configuration.DataType, p.Configuration.Functor,
			p.Configuration.Selectivity, p.Scan.Description(expression.Detailed))
		if p.IndexScan != nil {
			fmt.Printf("  index-scan: %s\n", p.IndexScan.Description(expression.Detailed))
		}
	}
}

// demoCatalog builds a StaticCatalog with one wide synthetic table per
// requested table name, so the CLI is runnable without a real catalog
// backend wired up. Each table carries one column of every non-Null
// sql.DataType (the numeric columns unencoded, the string column
// dictionary-encoded and nullable), plus a declared unique constraint on its
// first column.
func demoCatalog(tables []calibration.TableRowCount) sql.Catalog {
	specs := make([]sql.TableSpecification, 0, len(tables))
	for _, t := range tables {
		specs = append(specs, sql.TableSpecification{
			Name:     t.TableName,
			RowCount: t.RowCount,
			Columns: []sql.ColumnSpecification{
				{Name: "id", DataType: sql.Long, Encoding: sql.Unencoded},
				{Name: "amount", DataType: sql.Double, Encoding: sql.Unencoded},
				{Name: "quantity", DataType: sql.Int, Encoding: sql.Unencoded},
				{Name: "rate", DataType: sql.Float, Encoding: sql.Unencoded},
				{Name: "label", DataType: sql.String, Encoding: sql.Dictionary, Nullable: true},
			},
			Constraints: []sql.ColumnIndexSet{sql.NewColumnIndexSet(0)},
		})
	}
	return sql.NewStaticCatalog(specs...)
}
