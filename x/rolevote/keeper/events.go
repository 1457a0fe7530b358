package keeper

// Event type constants
const (
	EventTypeInitialized                 = "role_voting_initialized"
	EventTypeCollectionCreationRequested = "collection_creation_requested"
	EventTypeFinalized                   = "role_voting_finalized"
	EventTypeMintToken                   = "mint_role_token"
	EventTypeTransferToken               = "transfer_role_token"
	EventTypeBurnToken                   = "burn_role_token"
	EventTypeUpdateTokenWeight           = "update_role_token_weight"

	// Attribute keys
	AttributeKeyDao        = "dao"
	AttributeKeyCollection = "collection"
	AttributeKeyTokenID    = "token_id"
	AttributeKeyOwner      = "owner"
	AttributeKeyNewOwner   = "new_owner"
	AttributeKeyWeight     = "weight"
)
