package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ismellike/dao-contracts/x/rolevote/types"
)

// collectionInstantiateMsg is the init payload sent to a freshly stored role
// NFT collection contract. The module mints the initial tokens itself once
// the reply delivers the collection address.
type collectionInstantiateMsg struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Initialize runs the module's one-time setup. Attaching to an existing
// collection finalizes the config immediately; provisioning a new collection
// emits an instantiation request and leaves the module pending until the
// reply arrives through OnInstantiateReply.
func (k Keeper) Initialize(ctx context.Context, msg types.MsgInitialize) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	if _, err := k.Config.Get(ctx); err == nil {
		return types.ErrAlreadyConfigured
	}
	if pending, err := k.getPending(ctx); err != nil {
		return err
	} else if pending != nil {
		return types.ErrAlreadyConfigured
	}

	dao, err := types.ValidateAddress(msg.Dao)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "dao: %s", err)
	}
	if err := k.Dao.Set(ctx, dao); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if existing := msg.Nft.Existing; existing != nil {
		address, err := types.ValidateAddress(existing.Address)
		if err != nil {
			return errorsmod.Wrapf(types.ErrInvalidAddress, "existing collection: %s", err)
		}
		if err := k.setConfig(ctx, types.Config{NftAddress: address}); err != nil {
			return err
		}

		k.logger.Info("role voting initialized", "collection", address, "dao", dao)
		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			EventTypeInitialized,
			sdk.NewAttribute(AttributeKeyDao, dao),
			sdk.NewAttribute(AttributeKeyCollection, address),
		))
		return nil
	}

	collection := msg.Nft.New
	if k.instantiator == nil {
		return fmt.Errorf("contract instantiator is not configured for collection creation")
	}

	initMsg, err := json.Marshal(collectionInstantiateMsg{
		Name:   collection.Name,
		Symbol: collection.Symbol,
	})
	if err != nil {
		return err
	}

	label := collection.Label
	if label == "" {
		label = fmt.Sprintf("%s-roles", collection.Symbol)
	}
	if err := k.instantiator.Instantiate(ctx, collection.CodeID, label, initMsg); err != nil {
		return fmt.Errorf("requesting collection instantiation: %w", err)
	}

	pending := types.PendingCreation{
		CodeID:        collection.CodeID,
		InitialTokens: collection.InitialTokens,
	}
	if err := k.setPending(ctx, pending); err != nil {
		return err
	}

	k.logger.Info("collection creation requested", "name", collection.Name, "code_id", collection.CodeID)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		EventTypeCollectionCreationRequested,
		sdk.NewAttribute(AttributeKeyDao, dao),
	))
	return nil
}

// OnInstantiateReply finalizes a pending collection creation with the
// address carried by the host runtime's reply payload, then mints the
// initial token list against the new collection. At most one creation is
// ever pending, so a reply without one is rejected outright.
func (k Keeper) OnInstantiateReply(ctx context.Context, payload []byte) error {
	pending, err := k.getPending(ctx)
	if err != nil {
		return err
	}
	if pending == nil {
		return types.ErrUnexpectedReply
	}

	var reply types.InstantiateReply
	if err := json.Unmarshal(payload, &reply); err != nil {
		return errorsmod.Wrap(types.ErrMalformedReplyPayload, err.Error())
	}
	if strings.TrimSpace(reply.ContractAddress) == "" {
		return types.ErrMalformedReplyPayload
	}
	address, err := types.ValidateAddress(reply.ContractAddress)
	if err != nil {
		return errorsmod.Wrap(types.ErrMalformedReplyPayload, err.Error())
	}

	if err := k.setConfig(ctx, types.Config{NftAddress: address}); err != nil {
		return err
	}
	if err := k.Pending.Remove(ctx); err != nil {
		return err
	}

	for _, initial := range pending.InitialTokens {
		owner, err := types.ValidateAddress(initial.Owner)
		if err != nil {
			return errorsmod.Wrapf(types.ErrInvalidAddress, "token %s owner: %s", initial.TokenID, err)
		}
		token := types.RoleToken{
			TokenID:  initial.TokenID,
			Owner:    owner,
			Weight:   initial.Weight,
			Role:     initial.Role,
			TokenURI: initial.TokenURI,
		}
		if err := k.mintToken(ctx, token); err != nil {
			return err
		}
	}

	k.logger.Info("role voting finalized", "collection", address, "initial_tokens", len(pending.InitialTokens))
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		EventTypeFinalized,
		sdk.NewAttribute(AttributeKeyCollection, address),
	))
	return nil
}
