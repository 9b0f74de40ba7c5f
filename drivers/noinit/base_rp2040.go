//go:build rp2040

package noinit

// Base is the first reserved byte: the top of SCRATCH_Y (0x20041000..0x20042000).
const Base = 0x20042000 - Size
