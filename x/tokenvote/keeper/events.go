package keeper

// Event type constants
const (
	EventTypeInitialized            = "token_voting_initialized"
	EventTypeTokenCreationRequested = "token_creation_requested"
	EventTypeFinalized              = "token_voting_finalized"
	EventTypeConfigUpdated          = "token_voting_config_updated"
	EventTypeStake                  = "stake"
	EventTypeUnstake                = "unstake"
	EventTypeClaim                  = "claim"

	// Attribute keys
	AttributeKeyDao             = "dao"
	AttributeKeyDenom           = "denom"
	AttributeKeySubdenom        = "subdenom"
	AttributeKeyIssuer          = "issuer"
	AttributeKeyStaker          = "staker"
	AttributeKeyAmount          = "amount"
	AttributeKeyReleaseHeight   = "release_height"
	AttributeKeyUnbondingBlocks = "unbonding_blocks"
)
