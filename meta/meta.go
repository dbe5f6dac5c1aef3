// meta/meta.go
package meta

// POSITIONS_DIR defines where position files are read and written.
const POSITIONS_DIR = "positions"

// EXPERIMENTS_DIR defines where benchmark records are written.
const EXPERIMENTS_DIR = "experiments"

// DEFAULT_DEPTH defines the depth of the positions evaluated by default.
const DEFAULT_DEPTH = 15

// MIN_DEPTH defines the shallowest depth benchmarked and generated.
const MIN_DEPTH = DEFAULT_DEPTH

// MAX_DEPTH defines the deepest depth benchmarked and generated.
const MAX_DEPTH = 30

// SEED defines the default random seed.
const SEED = 42

// SEED_POSITIONS defines the number of random positions written at MIN_DEPTH.
const SEED_POSITIONS = 20
