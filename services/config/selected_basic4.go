//go:build profile_basic4

package config

const SelectedName = "basic4"
