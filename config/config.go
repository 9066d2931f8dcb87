// Package config decodes a TOML model document into the constructor
// arguments mcda.NewModel expects, generalizing stacktower's
// BurntSushi/toml manifest decoding (pkg/deps/rust/cargo.go,
// pkg/deps/python/poetry.go: os.ReadFile + toml.Unmarshal into a private
// wire struct, then translate into the caller's domain types) from
// dependency manifests to decision-model definitions.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/mcda"
)

// document is the TOML wire shape:
//
//	[[criteria]]
//	name = "price"
//	maximize = false
//	kind = "absolute"
//	min = 100
//	max = 1000
//
//	[[criteria]]
//	name = "quality"
//	maximize = true
//	kind = "ordinal"
//	values = ["low", "medium", "high"]
//
//	[alternatives.A]
//	price = 500
//	quality = "medium"
//
//	[[preferences]]
//	criterion1 = "quality"
//	criterion2 = "price"
//	equivalent = false
type document struct {
	Criteria     []criterionRow         `toml:"criteria"`
	Alternatives map[string]alternative `toml:"alternatives"`
	Preferences  []preferenceRow        `toml:"preferences"`
}

type criterionRow struct {
	Name     string   `toml:"name"`
	Maximize bool     `toml:"maximize"`
	Kind     string   `toml:"kind"`
	Min      float64  `toml:"min"`
	Max      float64  `toml:"max"`
	Values   []string `toml:"values"`
}

type alternative map[string]interface{}

type preferenceRow struct {
	Criterion1 string `toml:"criterion1"`
	Criterion2 string `toml:"criterion2"`
	Equivalent bool   `toml:"equivalent"`
}

// Load reads and decodes the TOML document at path, returning the three
// inputs mcda.NewModel expects.
func Load(path string) ([]mcda.Criterion, mcda.AlternativeMatrix, []mcda.Preference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, nil, nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	criteria, err := decodeCriteria(doc.Criteria)
	if err != nil {
		return nil, nil, nil, err
	}

	matrix, err := decodeAlternatives(doc.Alternatives, criteria)
	if err != nil {
		return nil, nil, nil, err
	}

	preferences, err := decodePreferences(doc.Preferences)
	if err != nil {
		return nil, nil, nil, err
	}

	return criteria, matrix, preferences, nil
}

func decodeCriteria(rows []criterionRow) ([]mcda.Criterion, error) {
	out := make([]mcda.Criterion, 0, len(rows))
	for _, r := range rows {
		var (
			c   mcda.Criterion
			err error
		)
		switch r.Kind {
		case "absolute":
			c, err = mcda.NewAbsolute(r.Name, r.Maximize, r.Min, r.Max)
		case "ordinal":
			c, err = mcda.NewOrdinal(r.Name, r.Maximize, r.Values)
		default:
			return nil, fmt.Errorf("config: criterion %q: unknown kind %q (want \"absolute\" or \"ordinal\")", r.Name, r.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("config: criterion %q: %w", r.Name, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// decodeAlternatives resolves each cell's type from the owning criterion's
// kind, mirroring the Validator's absolute/ordinal dispatch rather than
// trusting the TOML value's own Go type.
func decodeAlternatives(rows map[string]alternative, criteria []mcda.Criterion) (mcda.AlternativeMatrix, error) {
	kindOf := make(map[string]mcda.Criterion, len(criteria))
	for _, c := range criteria {
		kindOf[c.Name] = c
	}

	matrix := make(mcda.AlternativeMatrix, len(rows))
	for id, cells := range rows {
		row := make(mcda.Row, len(cells))
		for name, raw := range cells {
			c, ok := kindOf[name]
			if !ok {
				return nil, fmt.Errorf("config: alternative %q: undeclared criterion %q", id, name)
			}
			cell, err := decodeCell(id, name, c, raw)
			if err != nil {
				return nil, err
			}
			row[name] = cell
		}
		matrix[id] = row
	}
	return matrix, nil
}

func decodeCell(altID, name string, c mcda.Criterion, raw interface{}) (mcda.Cell, error) {
	if c.IsOrdinal() {
		s, ok := raw.(string)
		if !ok {
			return mcda.Cell{}, fmt.Errorf("config: alternative %q: criterion %q expects a category string, got %T", altID, name, raw)
		}
		return mcda.CategoryCell(s), nil
	}

	switch v := raw.(type) {
	case int64:
		return mcda.NumberCell(float64(v)), nil
	case float64:
		return mcda.NumberCell(v), nil
	default:
		return mcda.Cell{}, fmt.Errorf("config: alternative %q: criterion %q expects a number, got %T", altID, name, raw)
	}
}

func decodePreferences(rows []preferenceRow) ([]mcda.Preference, error) {
	out := make([]mcda.Preference, 0, len(rows))
	for _, r := range rows {
		p, err := mcda.NewPreference(r.Criterion1, r.Criterion2, r.Equivalent)
		if err != nil {
			return nil, fmt.Errorf("config: preference %q/%q: %w", r.Criterion1, r.Criterion2, err)
		}
		out = append(out, p)
	}
	return out, nil
}
