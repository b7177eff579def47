package sql

// EncodingType tags how a column's values are physically stored. It is
// opaque at the LQP layer — a label carried on column metadata and nothing
// more, per spec §1 (storage encodings are out of scope here beyond their
// identity as tags).
type EncodingType uint8

const (
	Unencoded EncodingType = iota
	Dictionary
	RunLength
	FrameOfReference
	LZ4
	FixedStringDictionary
)

var encodingTypeNames = [...]string{
	Unencoded:             "unencoded",
	Dictionary:            "dictionary",
	RunLength:             "run-length",
	FrameOfReference:      "frame-of-reference",
	LZ4:                   "lz4",
	FixedStringDictionary: "fixed-string-dictionary",
}

func (e EncodingType) String() string {
	if int(e) < len(encodingTypeNames) {
		return encodingTypeNames[e]
	}
	return "unknown"
}

// AllEncodingTypes lists every known encoding tag, in declaration order.
// The calibration generator does not use it; it enumerates only the
// encodings named in its Config (§4.6).
func AllEncodingTypes() []EncodingType {
	return []EncodingType{
		Unencoded,
		Dictionary,
		RunLength,
		FrameOfReference,
		LZ4,
		FixedStringDictionary,
	}
}
