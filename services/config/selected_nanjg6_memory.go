//go:build profile_nanjg6_memory

package config

const SelectedName = "nanjg6_memory"
