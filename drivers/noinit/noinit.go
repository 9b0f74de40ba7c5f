// Package noinit exposes a few bytes of RAM that survive a reset.
//
// The cells sit at the very top of SCRATCH_Y. They keep their contents only
// while the supply capacitor holds the SRAM up; after a longer outage they
// read back as an arbitrary pattern, which is what the decay flag relies on.
//
// Linker precondition: the board's linker script must end the stack and the
// .bss/.data sections below Base so the runtime never clears or reuses the
// cells. cmd/offtime-fw/noinit.ld checks this at link time. Brown-out
// detection should be enabled so that a reset happens while the SRAM
// contents are still meaningful.
package noinit

// Size is the number of reserved bytes.
const Size = 16
