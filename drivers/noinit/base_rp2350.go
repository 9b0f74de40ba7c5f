//go:build rp2350

package noinit

// Base is the first reserved byte: the top of SCRATCH_Y (0x20081000..0x20082000).
const Base = 0x20082000 - Size
