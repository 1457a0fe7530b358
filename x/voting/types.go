// Package voting holds the query types shared by every voting-power module.
// A DAO core contract talks to its voting module exclusively through this
// surface, so the modules keep it identical regardless of how power is
// derived.
package voting

import (
	"cosmossdk.io/math"
)

// VotingPowerAtHeightResponse reports a member's power at a given height.
type VotingPowerAtHeightResponse struct {
	Power  math.Int `json:"power"`
	Height uint64   `json:"height"`
}

// TotalPowerAtHeightResponse reports the aggregate power at a given height.
type TotalPowerAtHeightResponse struct {
	Power  math.Int `json:"power"`
	Height uint64   `json:"height"`
}

// InfoResponse identifies a module and its version.
type InfoResponse struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}
