package types

const (
	// ModuleName defines the module name
	ModuleName = "tokenvote"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// ContractName identifies the module on the info query surface.
	ContractName = "dao-voting-token-staked"

	// ContractVersion is reported by the info query.
	ContractVersion = "2.4.0"
)

// Store key prefixes
var (
	// ConfigKey stores the finalized module config.
	ConfigKey = []byte{0x01}

	// DaoKey stores the owning DAO address.
	DaoKey = []byte{0x02}

	// PendingCreationKey holds the single pending token-creation record
	// while the module waits for the issuer instantiation reply.
	PendingCreationKey = []byte{0x03}

	// IssuerKey stores the token-factory issuer contract address.
	IssuerKey = []byte{0x04}

	// StakedKeyPrefix is the prefix for per-staker balances.
	StakedKeyPrefix = []byte{0x05}

	// ClaimsKeyPrefix is the prefix for per-staker unbonding claims.
	ClaimsKeyPrefix = []byte{0x06}

	// ActiveThresholdKey stores the optional activation threshold.
	ActiveThresholdKey = []byte{0x07}

	// PowerKeyPrefix is the prefix for per-staker power snapshots.
	PowerKeyPrefix = []byte{0x10}

	// TotalPowerKeyPrefix is the prefix for aggregate power snapshots.
	TotalPowerKeyPrefix = []byte{0x11}
)
