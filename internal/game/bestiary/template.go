package bestiary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Template defines the display properties of a monster kind, loadable
// from YAML.
type Template struct {
	Kind        string `yaml:"kind"` // "guardian", "bandit", or "spider"
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Level       int    `yaml:"level"`
	MaxHP       int    `yaml:"max_hp"`
}

// ParseKind maps a template kind string to a Kind.
//
// Postcondition: Returns the Kind and true for "guardian", "bandit", or
// "spider"; (0, false) otherwise.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "guardian":
		return KindGuardian, true
	case "bandit":
		return KindBandit, true
	case "spider":
		return KindSpider, true
	default:
		return 0, false
	}
}

// Validate checks that the template satisfies basic invariants.
//
// Postcondition: Returns nil iff Kind parses, Name is non-empty,
// Level >= 1, and MaxHP >= 1.
func (t Template) Validate() error {
	if _, ok := ParseKind(t.Kind); !ok {
		return fmt.Errorf("monster template: kind must be one of [guardian, bandit, spider], got %q", t.Kind)
	}
	if t.Name == "" {
		return fmt.Errorf("monster template %q: name must not be empty", t.Kind)
	}
	if t.Level < 1 {
		return fmt.Errorf("monster template %q: level must be >= 1", t.Kind)
	}
	if t.MaxHP < 1 {
		return fmt.Errorf("monster template %q: max_hp must be >= 1", t.Kind)
	}
	return nil
}

// Instance is a live monster stamped from a template for one arena run.
type Instance struct {
	// ID uniquely identifies this runtime instance.
	ID string
	// Kind is the monster kind resolved for this slot.
	Kind Kind
	// Name is copied from the template for display.
	Name string
	// Description is copied from the template.
	Description string
	// CurrentHP starts at the template's MaxHP.
	CurrentHP int
	// MaxHP is copied from the template.
	MaxHP int
	// Level is copied from the template.
	Level int
}

// Describe returns the instance's deterministic display line.
func (i *Instance) Describe() string {
	return fmt.Sprintf("%s %q (level %d, %d HP): %s", i.Kind, i.Name, i.Level, i.MaxHP, i.Description)
}

// Roster resolves arena slot indices to monster templates.
type Roster struct {
	byKind map[Kind]Template
}

// NewRoster builds a Roster from templates. Later templates for the same
// kind replace earlier ones, so loaded content overrides defaults.
//
// Precondition: every template must pass Validate.
func NewRoster(templates ...Template) (*Roster, error) {
	byKind := make(map[Kind]Template, len(templates))
	for _, tmpl := range templates {
		if err := tmpl.Validate(); err != nil {
			return nil, err
		}
		k, _ := ParseKind(tmpl.Kind)
		byKind[k] = tmpl
	}
	for _, k := range []Kind{KindGuardian, KindBandit, KindSpider} {
		if _, ok := byKind[k]; !ok {
			return nil, fmt.Errorf("roster: missing template for kind %s", k)
		}
	}
	return &Roster{byKind: byKind}, nil
}

// Spawn resolves index to a Kind and stamps a fresh Instance from that
// kind's template. Like Resolve, Spawn is total over all indices.
//
// Postcondition: Returns a non-nil Instance with a unique ID and
// CurrentHP == MaxHP.
func (r *Roster) Spawn(index int) *Instance {
	k := Resolve(index)
	tmpl := r.byKind[k]
	return &Instance{
		ID:          uuid.NewString(),
		Kind:        k,
		Name:        tmpl.Name,
		Description: tmpl.Description,
		CurrentHP:   tmpl.MaxHP,
		MaxHP:       tmpl.MaxHP,
		Level:       tmpl.Level,
	}
}

// DefaultTemplates returns the stock templates covering all three kinds.
func DefaultTemplates() []Template {
	return []Template{
		{Kind: "guardian", Name: "Vault Guardian", Description: "an armored sentinel of the old vault", Level: 4, MaxHP: 40},
		{Kind: "bandit", Name: "Gully Bandit", Description: "a knife-happy drifter", Level: 2, MaxHP: 16},
		{Kind: "spider", Name: "Pit Spider", Description: "a fist-sized lurker from the dark", Level: 1, MaxHP: 8},
	}
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed
// monster templates.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or
// validate failure; on error, the partial result is discarded.
func LoadTemplates(dir string) ([]Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading monster dir %q: %w", dir, err)
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
