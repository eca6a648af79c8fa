package core

// RuntimeConfig contains the resolved settings a new board is built from.
type RuntimeConfig struct {
	Size int   // Board dimension (cells per side)
	Seed int64 // RNG seed for deterministic spawns, 0 means time based
}
