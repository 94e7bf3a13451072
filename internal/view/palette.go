package view

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Palette holds the color tables both coloring policies draw from.
// Values are CSS hex colors.
type Palette struct {
	// Aliases maps row-level named color keys to hex values.
	Aliases map[string]string `yaml:"aliases"`
	// People maps a person to their default bar color.
	People map[string]string `yaml:"people"`
	// Statuses maps a status to its bar color (status policy).
	Statuses map[string]string `yaml:"statuses"`
	// Milestone is the accent used for milestone markers, and for
	// milestone bars under the status policy.
	Milestone string `yaml:"milestone"`
	// Fallback is used when nothing else matches.
	Fallback string `yaml:"fallback"`
}

// DefaultPalette returns the built-in tables. The person and status keys
// mirror the teams and statuses the schedule sheet has carried so far;
// deployments with different vocabulary override them via PALETTE_PATH.
func DefaultPalette() *Palette {
	return &Palette{
		Aliases: map[string]string{
			"red":    "#e53935",
			"blue":   "#1e88e5",
			"green":  "#43a047",
			"yellow": "#fdd835",
			"orange": "#fb8c00",
			"purple": "#8e24aa",
			"pink":   "#d81b60",
			"brown":  "#6d4c41",
			"cyan":   "#00acc1",
			"gray":   "#9e9e9e",
			"grey":   "#9e9e9e",
		},
		People: map[string]string{
			"RD": "#3f51b5",
			"UI": "#00897b",
			"QA": "#fb8c00",
			"PM": "#8e24aa",
			"OP": "#6d4c41",
		},
		Statuses: map[string]string{
			"未開始":  "#90a4ae",
			"進行中":  "#1e88e5",
			"已完成":  "#43a047",
			"延遲":   "#e53935",
			"重要會議": "#d50000",
		},
		Milestone: "#d50000",
		Fallback:  "#607d8b",
	}
}

// LoadPalette reads a YAML override file and merges it onto the defaults.
// Only the keys the file names are replaced; everything else keeps its
// built-in value.
func LoadPalette(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette file: %w", err)
	}

	var override Palette
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse palette file: %w", err)
	}

	p := DefaultPalette()
	for k, v := range override.Aliases {
		p.Aliases[k] = v
	}
	for k, v := range override.People {
		p.People[k] = v
	}
	for k, v := range override.Statuses {
		p.Statuses[k] = v
	}
	if override.Milestone != "" {
		p.Milestone = override.Milestone
	}
	if override.Fallback != "" {
		p.Fallback = override.Fallback
	}
	return p, nil
}
