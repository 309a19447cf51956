package holdem

import "fmt"

const maxSeats = 9

// Config is validated once by NewGame and never mutated afterwards.
type Config struct {
	GameID        string
	SmallBlind    int64
	BigBlind      int64
	StartingStack int64

	// Seed drives the shuffle rng. Zero means seed from the clock.
	Seed int64
}

func (c Config) validate() error {
	if c.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive, got %d", c.SmallBlind)
	}
	if c.BigBlind < c.SmallBlind {
		return fmt.Errorf("big blind %d below small blind %d", c.BigBlind, c.SmallBlind)
	}
	if c.StartingStack < c.BigBlind {
		return fmt.Errorf("starting stack %d below big blind %d", c.StartingStack, c.BigBlind)
	}
	return nil
}

// DefaultConfig 默认盲注结构 10/20, 起始筹码 2000
func DefaultConfig() Config {
	return Config{
		SmallBlind:    10,
		BigBlind:      20,
		StartingStack: 2000,
	}
}
