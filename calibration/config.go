package calibration

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/hyriseql/lqp/sql"
)

// Config enumerates the calibration generator's permutation space (spec
// §4.6): the data types, encoding combinations, selectivity points,
// reference-column-or-not flags, and row-count buckets whose Cartesian
// product GeneratePredicatePermutations walks. It is loaded from YAML, the
// teacher's own configuration format.
type Config struct {
	DataTypes         []string  `yaml:"data_types"`
	Encodings         []string  `yaml:"encodings"`
	SelectivityPoints []float64 `yaml:"selectivity_points"`
	ReferenceColumn   []bool    `yaml:"reference_column"`
	RowCountBuckets   []uint64  `yaml:"row_count_buckets"`
}

var dataTypeByName = map[string]sql.DataType{
	"null":   sql.Null,
	"int":    sql.Int,
	"long":   sql.Long,
	"float":  sql.Float,
	"double": sql.Double,
	"string": sql.String,
}

var encodingByName = map[string]sql.EncodingType{
	"unencoded":               sql.Unencoded,
	"dictionary":              sql.Dictionary,
	"run-length":              sql.RunLength,
	"frame-of-reference":      sql.FrameOfReference,
	"lz4":                     sql.LZ4,
	"fixed-string-dictionary": sql.FixedStringDictionary,
}

// LoadConfig reads and validates a Config from a YAML file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"data_types":  cfg.DataTypes,
		"encodings":   cfg.Encodings,
		"selectivity": cfg.SelectivityPoints,
		"row_buckets": cfg.RowCountBuckets,
	}).Debug("calibration config loaded")
	return &cfg, nil
}

// Validate checks that every named data type and encoding is one this core
// actually knows about, failing fast on a typo'd config rather than
// silently skipping every permutation that references it.
func (c *Config) Validate() error {
	for _, dt := range c.DataTypes {
		if _, ok := dataTypeByName[dt]; !ok {
			return sql.ErrNotImplemented.New("unknown data type in calibration config: " + dt)
		}
	}
	for _, enc := range c.Encodings {
		if _, ok := encodingByName[enc]; !ok {
			return sql.ErrNotImplemented.New("unknown encoding in calibration config: " + enc)
		}
	}
	if len(c.SelectivityPoints) == 0 {
		return sql.ErrInvariantViolation.New("calibration config must declare at least one selectivity point")
	}
	return nil
}

// dataTypes resolves the configured data type names to sql.DataType, in
// the config's declared order (the order in which
// GeneratePredicatePermutations enumerates them, spec §4.6).
func (c *Config) dataTypes() []sql.DataType {
	out := make([]sql.DataType, len(c.DataTypes))
	for i, name := range c.DataTypes {
		out[i] = dataTypeByName[name]
	}
	return out
}

func (c *Config) encodings() []sql.EncodingType {
	out := make([]sql.EncodingType, len(c.Encodings))
	for i, name := range c.Encodings {
		out[i] = encodingByName[name]
	}
	return out
}
