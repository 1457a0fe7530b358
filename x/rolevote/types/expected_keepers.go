package types

import (
	"context"
)

// ContractInstantiator emits a contract-instantiation sub-message to the
// host runtime. The created contract's address arrives later through the
// module's reply handler; dispatch itself is outside this module.
type ContractInstantiator interface {
	Instantiate(ctx context.Context, codeID uint64, label string, msg []byte) error
}
