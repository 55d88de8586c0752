// Package catalog reads skill definitions from HJSON documents and turns them
// into registered skills.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hjson/hjson-go/v4"
	"github.com/nathfavour/habilidades/pkg/skills"
)

const (
	KindCurrency = "divisas"
	KindList     = "lista"
)

//go:embed default.hjson
var defaultCatalog []byte

// Definition describes one skill. Rate and Inverse only apply to currencies;
// with Inverse set the skill converts at 1/Rate.
type Definition struct {
	Kind        string  `json:"kind"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Rate        float64 `json:"rate,omitempty"`
	Inverse     bool    `json:"inverse,omitempty"`
}

type Catalog struct {
	Skills []Definition `json:"skills"`
}

// Parse decodes an HJSON document. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	var raw interface{}
	if err := hjson.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	// Round-trip through JSON to get strict struct decoding.
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.DisallowUnknownFields()
	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &c, nil
}

// Load reads the catalog at path, or the built-in one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Build instantiates every definition in order. Name uniqueness is left to
// skills.NewRegistry.
func (c *Catalog) Build() ([]skills.Skill, error) {
	out := make([]skills.Skill, 0, len(c.Skills))
	for i, d := range c.Skills {
		s, err := d.build()
		if err != nil {
			return nil, fmt.Errorf("skill #%d (%s): %w", i, d.Name, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (d Definition) build() (skills.Skill, error) {
	switch d.Kind {
	case KindCurrency:
		if d.Rate < 0 {
			return nil, fmt.Errorf("rate must not be negative, got %v", d.Rate)
		}
		rate := d.Rate
		if d.Inverse {
			if rate == 0 {
				return nil, fmt.Errorf("inverse currency needs a rate")
			}
			rate = 1 / rate
		}
		return skills.NewCurrency(d.Name, d.Description, rate), nil
	case KindList:
		if d.Rate != 0 || d.Inverse {
			return nil, fmt.Errorf("%s skills take no rate", KindList)
		}
		return skills.NewShoppingList(d.Name, d.Description), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", d.Kind)
	}
}
