package plan

import "github.com/mitchellh/hashstructure"

// hashOf hashes a plain data struct of kind-and-scalars, the same pattern
// expression.hashOf uses for shallow_hash (spec §4.2 "incorporates kind
// and kind-specific scalars ... but not inputs").
func hashOf(v interface{}) uint64 {
	h, err := hashstructure.Hash(v, nil)
	if err != nil {
		return 0
	}
	return h
}
