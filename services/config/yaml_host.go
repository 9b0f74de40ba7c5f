//go:build !(rp2040 || rp2350)

package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"offtime-go/errcode"
	"offtime-go/types"
)

// profileFile is the on-disk form: an optional embedded base plus overrides.
type profileFile struct {
	Base          string `yaml:"base"`
	types.Profile `yaml:",inline"`
}

// ParseYAML decodes a profile. With "base: <name>" the named embedded profile
// is loaded first and the file's fields override it; a modes list replaces
// the base's modes wholesale. Unknown keys are rejected.
func ParseYAML(b []byte) (*types.Profile, error) {
	var head struct {
		Base string `yaml:"base"`
	}
	if err := yaml.Unmarshal(b, &head); err != nil {
		return nil, &errcode.E{C: errcode.InvalidProfile, Op: "config.ParseYAML", Err: err}
	}

	var f profileFile
	if head.Base != "" {
		base, ok := EmbeddedProfileLookup(head.Base)
		if !ok {
			return nil, &errcode.E{C: errcode.UnknownProfile, Op: "config.ParseYAML", Msg: head.Base}
		}
		f.Profile = *clone(base)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, &errcode.E{C: errcode.InvalidProfile, Op: "config.ParseYAML", Err: err}
	}

	p := f.Profile
	Canonicalize(&p)
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadYAML reads and parses a profile file.
func LoadYAML(path string) (*types.Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "config.LoadYAML", Msg: path, Err: err}
	}
	return ParseYAML(b)
}
