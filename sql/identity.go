package sql

import uuid "github.com/satori/go.uuid"

// NodeID is the stable identity of an LQP node. §3 specifies identity by
// pointer/handle rather than by value; a NodeID gives that handle a value
// that is safe to use as a map key, to log, and to carry inside an
// LQPColumn back-reference without pinning the referenced node in memory
// the way a Go pointer would. The teacher's engine reaches for
// satori/go.uuid for exactly this kind of stable object identity.
type NodeID uuid.UUID

// NilNodeID is the zero NodeID, used as the sentinel "no node" value.
var NilNodeID NodeID

// NewNodeID mints a fresh, globally unique node identity.
func NewNodeID() NodeID {
	return NodeID(uuid.NewV4())
}

func (id NodeID) String() string {
	return uuid.UUID(id).String()
}

// IdentityMapping rewrites node identities during a structural copy (§3,
// §9 "Back-references in LQPColumn"). Looking up an identity not present in
// the mapping is expected to return the identity unchanged — deep_copy
// callers populate the mapping only for nodes that are actually being
// cloned; shared, un-copied children keep their identity.
type IdentityMapping map[NodeID]NodeID

// Resolve returns the mapped identity for id, or id itself if the mapping
// does not mention it.
func (m IdentityMapping) Resolve(id NodeID) NodeID {
	if m == nil {
		return id
	}
	if mapped, ok := m[id]; ok {
		return mapped
	}
	return id
}

// AllocateCopy returns the identity a ShallowCopy of the node identified by
// id should use: if mapping already records a replacement for id (because
// the caller is driving a larger structural copy and pre-seeded it, or
// because this same node was already copied once), that replacement is
// reused so every reference to the original resolves consistently.
// Otherwise a fresh identity is minted and, when mapping is non-nil,
// recorded for subsequent lookups.
func (m IdentityMapping) AllocateCopy(id NodeID) NodeID {
	if m != nil {
		if mapped, ok := m[id]; ok {
			return mapped
		}
	}
	fresh := NewNodeID()
	if m != nil {
		m[id] = fresh
	}
	return fresh
}
