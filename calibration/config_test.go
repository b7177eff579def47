package calibration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyriseql/lqp/sql"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "calibration.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigParsesYAML(t *testing.T) {
	path := writeConfigFile(t, `
data_types: [int, string]
encodings: [unencoded, dictionary]
selectivity_points: [0.1, 0.5, 0.9]
reference_column: [false, true]
row_count_buckets: [1000, 1000000]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, []string{"int", "string"}, cfg.DataTypes)
	require.Equal(t, []uint64{1000, 1000000}, cfg.RowCountBuckets)
}

func TestLoadConfigRejectsUnknownDataType(t *testing.T) {
	path := writeConfigFile(t, `
data_types: [not_a_type]
encodings: [unencoded]
selectivity_points: [0.5]
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigRejectsUnknownEncoding(t *testing.T) {
	path := writeConfigFile(t, `
data_types: [int]
encodings: [not_an_encoding]
selectivity_points: [0.5]
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigRequiresSelectivityPoint(t *testing.T) {
	path := writeConfigFile(t, `
data_types: [int]
encodings: [unencoded]
selectivity_points: []
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestConfigDataTypesAndEncodingsResolveInOrder(t *testing.T) {
	cfg := &Config{
		DataTypes: []string{"string", "int"},
		Encodings: []string{"dictionary", "unencoded"},
	}
	require.Equal(t, []sql.DataType{sql.String, sql.Int}, cfg.dataTypes())
	require.Equal(t, []sql.EncodingType{sql.Dictionary, sql.Unencoded}, cfg.encodings())
}
