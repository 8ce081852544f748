package trait

// Stream offsets. Each trait forks its own PRNG stream at
// normalized+offset; the table is the auditable half of the parity
// contract with the on-chain mirror. Never renumber.
const (
	OffsetFoldCount   = 11
	OffsetStrategy    = 101
	OffsetRenderMode  = 211
	OffsetPalette     = 307
	OffsetPaper       = 401
	OffsetDirection   = 503
	OffsetMargin      = 601
	OffsetWeightRange = 701
	OffsetCreaseLines = 809
	OffsetHitCounts   = 907

	// Simulation-side streams, owned by the fold engine but listed here so
	// the full offset table lives in one place.
	OffsetReduction   = 1013
	OffsetWaveform    = 1103
	OffsetFocal       = 1201
	OffsetOrientation = 1301
	OffsetWalk        = 1409
)
