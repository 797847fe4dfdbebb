package domain

// Account is an opaque account identifier. The zero value is the null
// account, which can never own, approve, or receive anything.
type Account string

const NullAccount Account = ""

func (a Account) IsNull() bool {
	return a == NullAccount
}

// ItemID identifies one item in a ledger. For artworks this is the
// content identifier of the minted piece.
type ItemID uint64

// Capability identifies a feature set a registry can be probed for
// before a caller commits to a transfer.
type Capability uint32

const (
	// CapabilityIntrospection is the capability-query mechanism itself.
	CapabilityIntrospection Capability = 0x01ffc9a7

	// CapabilityItemRegistry is the owner/approval/operator/transfer
	// surface of an item ledger.
	CapabilityItemRegistry Capability = 0x80ac58cd
)

// SupportsCapability reports whether this registry implements the given
// capability set.
func SupportsCapability(c Capability) bool {
	switch c {
	case CapabilityIntrospection, CapabilityItemRegistry:
		return true
	}
	return false
}
