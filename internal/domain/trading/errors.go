package trading

import "errors"

var (
	// ErrNoProfit indicates the destination bid does not exceed the origin ask.
	ErrNoProfit = errors.New("no profit: sell price does not exceed buy price")

	// ErrBelowProfitFloor indicates per-unit profit is under the fixed screening floor.
	ErrBelowProfitFloor = errors.New("profit per unit below screening floor")

	// ErrNoUnitVolume indicates catalog metadata reported a non-positive unit volume,
	// so cargo capacity cannot constrain the trade.
	ErrNoUnitVolume = errors.New("item has no unit volume")

	// ErrNoCapacity indicates neither cargo space nor order liquidity allows
	// moving even a single unit.
	ErrNoCapacity = errors.New("no units can be moved")

	// ErrInvalidCargoCapacity indicates the caller-supplied cargo capacity is invalid.
	ErrInvalidCargoCapacity = errors.New("cargo capacity must be positive")
)
