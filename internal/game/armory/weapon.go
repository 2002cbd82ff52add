// Package armory provides the static weapon table and its display listing.
// The table is fixed at construction and never mutated at runtime.
package armory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// WeaponDef is one row of the weapon table.
type WeaponDef struct {
	// Name is the weapon's display name.
	Name string `yaml:"name"`
	// Bearer is the character the weapon is paired with.
	Bearer string `yaml:"bearer"`
	// Condition is a free-form wear description ("pristine", "rusted", ...).
	Condition string `yaml:"condition"`
}

// Validate checks that the row satisfies its invariants.
//
// Postcondition: Returns nil iff all fields are non-empty.
func (w WeaponDef) Validate() error {
	var errs []string
	if w.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if w.Bearer == "" {
		errs = append(errs, "bearer must not be empty")
	}
	if w.Condition == "" {
		errs = append(errs, "condition must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon %q: %s", w.Name, strings.Join(errs, "; "))
	}
	return nil
}

// DisplayLine renders the row as a human-readable listing line.
func (w WeaponDef) DisplayLine() string {
	return fmt.Sprintf("%s (carried by %s): %s", w.Name, w.Bearer, w.Condition)
}

// Catalog holds an ordered, immutable weapon table.
type Catalog struct {
	weapons []WeaponDef
}

// NewCatalog creates a Catalog over its own copy of defs; later mutation of
// the caller's slice does not reach the catalog.
func NewCatalog(defs ...WeaponDef) *Catalog {
	cp := make([]WeaponDef, len(defs))
	copy(cp, defs)
	return &Catalog{weapons: cp}
}

// DefaultCatalog returns the stock three-row table used when no content
// directory is configured.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		WeaponDef{Name: "Maul", Bearer: "Brick", Condition: "worn"},
		WeaponDef{Name: "Longbow", Bearer: "Mordecai", Condition: "pristine"},
		WeaponDef{Name: "Dagger", Bearer: "Mordecai", Condition: "rusted"},
	)
}

// List returns the display lines in table order. Repeated calls return
// equal sequences; listing advances no internal state.
//
// Postcondition: len(List()) equals the number of table rows.
func (c *Catalog) List() []string {
	lines := make([]string, len(c.weapons))
	for i, w := range c.weapons {
		lines[i] = w.DisplayLine()
	}
	return lines
}

// Len returns the number of rows in the table.
func (c *Catalog) Len() int { return len(c.weapons) }

// LoadWeapons reads all *.yaml files from dir, parses each as a list of
// WeaponDef rows, validates them, and returns a Catalog over the collected
// rows in file order.
//
// Precondition: dir is a readable directory path.
// Postcondition: Returns a Catalog of valid rows or the first encountered error.
func LoadWeapons(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadWeapons: cannot read directory %q: %w", dir, err)
	}

	var weapons []WeaponDef
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadWeapons: cannot read file %q: %w", path, err)
		}
		var rows []WeaponDef
		if err := yaml.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("LoadWeapons: cannot parse file %q: %w", path, err)
		}
		for _, w := range rows {
			if err := w.Validate(); err != nil {
				return nil, fmt.Errorf("LoadWeapons: invalid weapon in %q: %w", path, err)
			}
		}
		weapons = append(weapons, rows...)
	}
	return NewCatalog(weapons...), nil
}
