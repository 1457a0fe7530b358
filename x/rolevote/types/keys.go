package types

const (
	// ModuleName defines the module name
	ModuleName = "rolevote"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// ContractName identifies the module on the info query surface.
	ContractName = "dao-voting-nft-roles"

	// ContractVersion is reported by the info query.
	ContractVersion = "2.4.0"
)

// Store key prefixes
var (
	// ConfigKey stores the finalized module config.
	ConfigKey = []byte{0x01}

	// DaoKey stores the owning DAO address.
	DaoKey = []byte{0x02}

	// PendingCreationKey holds the single pending collection-creation record
	// while the module waits for the instantiation reply.
	PendingCreationKey = []byte{0x03}

	// TokensKeyPrefix is the prefix for role tokens keyed by token id.
	TokensKeyPrefix = []byte{0x05}

	// PowerKeyPrefix is the prefix for per-owner power snapshots.
	PowerKeyPrefix = []byte{0x10}

	// TotalPowerKeyPrefix is the prefix for aggregate power snapshots.
	TotalPowerKeyPrefix = []byte{0x11}
)
