package pim

// POPCNT implementation, software fallback for bits.OnesCount32-equivalent
// behavior kept inline so the bitmap arithmetic in bitmapIndexedNode stays
// self-contained and doesn't pull in a dependency for one instruction's
// worth of logic.
//
// Copied from https://github.com/jddixon/xlUtil_go/blob/master/popCount.go,
// MIT licensed.
const (
	octoFives  = uint32(0x55555555)
	octoThrees = uint32(0x33333333)
	octoOnes   = uint32(0x01010101)
	octoFs     = uint32(0x0f0f0f0f)
)

// popcount32 returns the number of set bits in n. Also copied from the
// xlUtil_go source above.
func popcount32(n uint32) uint {
	n = n - ((n >> 1) & octoFives)
	n = (n & octoThrees) + ((n >> 2) & octoThrees)
	return uint((((n + (n >> 4)) & octoFs) * octoOnes) >> 24)
}
