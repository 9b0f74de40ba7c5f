//go:build !(profile_nanjg6_memory || profile_basic4 || profile_volatile4)

package config

// SelectedName is the profile compiled into the firmware.
const SelectedName = "nanjg6"
