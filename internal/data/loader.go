// Package data loads authored game data: affix templates, item bases and skills.
//
// Defaults are embedded from defaults/*.yaml; callers may load their own files
// with the same schema through the Load* functions.
package data

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var defaults embed.FS

// decodeStrict decodes a YAML document rejecting unknown fields.
func decodeStrict(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func openDefault(name string) (io.Reader, error) {
	raw, err := defaults.ReadFile("defaults/" + name)
	if err != nil {
		return nil, fmt.Errorf("reading embedded %s: %w", name, err)
	}
	return bytes.NewReader(raw), nil
}

// Set bundles everything the game needs from authored data.
type Set struct {
	Affixes *AffixData
	Bases   *BaseData
	Skills  *SkillData
}

// LoadDefaults loads the embedded data set.
func LoadDefaults() (*Set, error) {
	return load(openDefault)
}

// LoadDir loads affixes.yaml, bases.yaml and skills.yaml from dir.
// Files missing from dir fall back to the embedded defaults.
func LoadDir(dir string) (*Set, error) {
	return load(func(name string) (io.Reader, error) {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if os.IsNotExist(err) {
				slog.Info("data file not found, using embedded default", "file", name, "dir", dir)
				return openDefault(name)
			}
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		return bytes.NewReader(raw), nil
	})
}

func load(open func(name string) (io.Reader, error)) (*Set, error) {
	r, err := open("affixes.yaml")
	if err != nil {
		return nil, err
	}
	affixes, err := LoadAffixes(r)
	if err != nil {
		return nil, fmt.Errorf("loading affix templates: %w", err)
	}

	if r, err = open("bases.yaml"); err != nil {
		return nil, err
	}
	bases, err := LoadBases(r)
	if err != nil {
		return nil, fmt.Errorf("loading item bases: %w", err)
	}

	if r, err = open("skills.yaml"); err != nil {
		return nil, err
	}
	skills, err := LoadSkills(r)
	if err != nil {
		return nil, fmt.Errorf("loading skills: %w", err)
	}

	for _, b := range bases.All() {
		if b.Skill != "" && skills.Registry.Get(b.Skill) == nil {
			return nil, fmt.Errorf("base %q grants unknown skill %q", b.ID, b.Skill)
		}
	}

	slog.Info("loaded game data",
		"affixes", affixes.Pool.Len(),
		"bases", len(bases.All()),
		"skills", len(skills.Registry.IDs()))
	return &Set{Affixes: affixes, Bases: bases, Skills: skills}, nil
}
