package sql

// DataType is the closed set of scalar column types the LQP layer reasons
// about. It is a label only: the physical representation of values lives in
// the storage layer, out of scope here.
type DataType uint8

const (
	Null DataType = iota
	Int
	Long
	Float
	Double
	String
)

var dataTypeNames = [...]string{
	Null:   "null",
	Int:    "int",
	Long:   "long",
	Float:  "float",
	Double: "double",
	String: "string",
}

func (t DataType) String() string {
	if int(t) < len(dataTypeNames) {
		return dataTypeNames[t]
	}
	return "unknown"
}

// IsNumeric reports whether t participates in the numeric compatibility
// family (see expression.Compatible).
func (t DataType) IsNumeric() bool {
	switch t {
	case Int, Long, Float, Double:
		return true
	default:
		return false
	}
}

// IsString reports whether t is the string type.
func (t DataType) IsString() bool {
	return t == String
}
