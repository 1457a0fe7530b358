// Package snapshots provides a height-indexed ledger of voting power.
//
// Values are recorded as sparse (height, value) points: a point is written
// only when the value changes, and the value effective at height H is the
// value of the latest point at or before H. Writing twice at the same height
// overwrites the earlier point, so one block always yields one point.
package snapshots

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Ledger tracks per-subject and aggregate power values over block heights.
type Ledger struct {
	// points maps (subject, height) to the subject's power at that height.
	points collections.Map[collections.Pair[string, uint64], math.Int]
	// total maps height to the aggregate power at that height.
	total collections.Map[uint64, math.Int]
}

// NewLedger registers the ledger collections on the given schema builder.
// The name must be unique within the schema.
func NewLedger(sb *collections.SchemaBuilder, pointsPrefix, totalPrefix collections.Prefix, name string) Ledger {
	return Ledger{
		points: collections.NewMap(
			sb,
			pointsPrefix,
			name+"_points",
			collections.PairKeyCodec(collections.StringKey, collections.Uint64Key),
			sdk.IntValue,
		),
		total: collections.NewMap(
			sb,
			totalPrefix,
			name+"_total",
			collections.Uint64Key,
			sdk.IntValue,
		),
	}
}

// Record writes the subject's power value at the given height, replacing any
// point already recorded at that height.
func (l Ledger) Record(ctx context.Context, subject string, height uint64, value math.Int) error {
	return l.points.Set(ctx, collections.Join(subject, height), value)
}

// RecordTotal writes the aggregate power value at the given height, replacing
// any point already recorded at that height.
func (l Ledger) RecordTotal(ctx context.Context, height uint64, value math.Int) error {
	return l.total.Set(ctx, height, value)
}

// Add shifts the subject's power by delta at the given height and returns the
// resulting value. The new point is the latest recorded value plus delta, so
// repeated writes within one height compose instead of clobbering each other.
func (l Ledger) Add(ctx context.Context, subject string, height uint64, delta math.Int) (math.Int, error) {
	current, err := l.Latest(ctx, subject)
	if err != nil {
		return math.Int{}, err
	}
	updated := current.Add(delta)
	if err := l.Record(ctx, subject, height, updated); err != nil {
		return math.Int{}, err
	}
	return updated, nil
}

// AddToTotal shifts the aggregate power by delta at the given height. Every
// writer must route aggregate changes through this method so that two
// subsystems touching the same height merge their deltas rather than one
// overwrite silently dropping the other.
func (l Ledger) AddToTotal(ctx context.Context, height uint64, delta math.Int) (math.Int, error) {
	current, err := l.LatestTotal(ctx)
	if err != nil {
		return math.Int{}, err
	}
	updated := current.Add(delta)
	if err := l.RecordTotal(ctx, height, updated); err != nil {
		return math.Int{}, err
	}
	return updated, nil
}

// ValueAt returns the subject's power at the given height: the value of the
// latest point recorded at or before it. Subjects with no history have zero
// power; lookups never fail for unknown subjects.
func (l Ledger) ValueAt(ctx context.Context, subject string, height uint64) (math.Int, error) {
	rng := collections.NewPrefixedPairRange[string, uint64](subject).
		EndInclusive(height).
		Descending()
	return l.firstPoint(ctx, rng)
}

// Latest returns the subject's power at the greatest recorded height, or zero
// if the subject has no history.
func (l Ledger) Latest(ctx context.Context, subject string) (math.Int, error) {
	rng := collections.NewPrefixedPairRange[string, uint64](subject).Descending()
	return l.firstPoint(ctx, rng)
}

// TotalAt returns the aggregate power at the given height.
func (l Ledger) TotalAt(ctx context.Context, height uint64) (math.Int, error) {
	rng := new(collections.Range[uint64]).EndInclusive(height).Descending()
	return l.firstTotal(ctx, rng)
}

// LatestTotal returns the aggregate power at the greatest recorded height.
func (l Ledger) LatestTotal(ctx context.Context) (math.Int, error) {
	rng := new(collections.Range[uint64]).Descending()
	return l.firstTotal(ctx, rng)
}

func (l Ledger) firstPoint(ctx context.Context, rng collections.Ranger[collections.Pair[string, uint64]]) (math.Int, error) {
	value := math.ZeroInt()
	err := l.points.Walk(ctx, rng, func(_ collections.Pair[string, uint64], v math.Int) (bool, error) {
		value = v
		return true, nil
	})
	if err != nil {
		return math.Int{}, err
	}
	return value, nil
}

func (l Ledger) firstTotal(ctx context.Context, rng collections.Ranger[uint64]) (math.Int, error) {
	value := math.ZeroInt()
	err := l.total.Walk(ctx, rng, func(_ uint64, v math.Int) (bool, error) {
		value = v
		return true, nil
	})
	if err != nil {
		return math.Int{}, err
	}
	return value, nil
}
