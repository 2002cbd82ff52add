// Package character defines character templates and pure copy-with-overrides
// creation. Templates are plain value types; a derived character is a full
// value copy of its template with a subset of fields overridden, so no
// mutation of the copy can reach the source.
package character

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template describes a character archetype.
//
// HealthRechargePerMinute == 0 marks the basic variant; a positive value
// marks the recharging variant and changes the Describe output.
type Template struct {
	Name           string `yaml:"name"`
	Race           string `yaml:"race"`
	PreferredArmor string `yaml:"preferred_armor"`
	// HealthRechargePerMinute is the passive HP regained per minute.
	HealthRechargePerMinute int `yaml:"health_recharge_per_minute"`
}

// HasRecharge reports whether this template belongs to the recharging variant.
func (t Template) HasRecharge() bool {
	return t.HealthRechargePerMinute > 0
}

// Validate checks that the template satisfies basic invariants.
//
// Postcondition: Returns nil iff Name and Race are non-empty and the
// recharge rate is non-negative.
func (t Template) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("character template: name must not be empty")
	}
	if t.Race == "" {
		return fmt.Errorf("character template %q: race must not be empty", t.Name)
	}
	if t.HealthRechargePerMinute < 0 {
		return fmt.Errorf("character template %q: health_recharge_per_minute must be >= 0", t.Name)
	}
	return nil
}

// Override mutates a copy of a Template during CloneWith. Overrides never
// see the original.
type Override func(*Template)

// WithName overrides the character name.
func WithName(name string) Override {
	return func(t *Template) { t.Name = name }
}

// WithRace overrides the character race.
func WithRace(race string) Override {
	return func(t *Template) { t.Race = race }
}

// WithPreferredArmor overrides the preferred armor.
func WithPreferredArmor(armor string) Override {
	return func(t *Template) { t.PreferredArmor = armor }
}

// WithRecharge overrides the passive recharge rate. A rate of 0 demotes the
// copy to the basic variant.
func WithRecharge(perMinute int) Override {
	return func(t *Template) { t.HealthRechargePerMinute = perMinute }
}

// CloneWith returns a full value copy of t with the given overrides applied
// in order.
//
// Postcondition: The receiver is unchanged regardless of the overrides.
func (t Template) CloneWith(overrides ...Override) Template {
	cp := t
	for _, o := range overrides {
		o(&cp)
	}
	return cp
}

// Describe formats the deterministic display line for the character.
// The recharging variant includes the recharge rate; the basic variant
// omits it.
//
// Postcondition: Returns a non-empty string for a validated template.
func (t Template) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s the %s, prefers %s armor", t.Name, t.Race, t.PreferredArmor)
	if t.HasRecharge() {
		fmt.Fprintf(&b, ", recharges %d HP/min", t.HealthRechargePerMinute)
	}
	return b.String()
}

// Defaults returns the stock templates used when no content directory is
// configured. The driver clones the first entry to derive its second
// character.
func Defaults() []Template {
	return []Template{
		{
			Name:           "Brick",
			Race:           "Ogre",
			PreferredArmor: "scrap plate",
		},
	}
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed
// templates.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or
// validate failure; on error, the partial result is discarded.
func LoadTemplates(dir string) ([]Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading character dir %q: %w", dir, err)
	}

	var templates []Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		var tmpl Template
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := tmpl.Validate(); err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}
