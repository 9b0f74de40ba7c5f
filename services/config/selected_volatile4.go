//go:build profile_volatile4

package config

const SelectedName = "volatile4"
