package armory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayLine(t *testing.T) {
	w := WeaponDef{Name: "Maul", Bearer: "Brick", Condition: "worn"}
	assert.Equal(t, "Maul (carried by Brick): worn", w.DisplayLine())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, WeaponDef{Name: "Maul", Bearer: "Brick", Condition: "worn"}.Validate())
	assert.Error(t, WeaponDef{Bearer: "Brick", Condition: "worn"}.Validate())
	assert.Error(t, WeaponDef{Name: "Maul", Condition: "worn"}.Validate())
	assert.Error(t, WeaponDef{Name: "Maul", Bearer: "Brick"}.Validate())
}

func TestDefaultCatalogList(t *testing.T) {
	c := DefaultCatalog()
	lines := c.List()
	require.Len(t, lines, 3)
	assert.Equal(t, "Maul (carried by Brick): worn", lines[0])
	assert.Equal(t, "Longbow (carried by Mordecai): pristine", lines[1])
	assert.Equal(t, "Dagger (carried by Mordecai): rusted", lines[2])
}

// List is deterministic and idempotent: repeated calls yield equal output.
func TestListIdempotent(t *testing.T) {
	c := DefaultCatalog()
	first := c.List()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.List())
	}
}

func TestCatalogCopiesInput(t *testing.T) {
	defs := []WeaponDef{{Name: "Maul", Bearer: "Brick", Condition: "worn"}}
	c := NewCatalog(defs...)
	defs[0].Name = "Club"
	assert.Equal(t, "Maul (carried by Brick): worn", c.List()[0])
}

func TestLoadWeapons(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "weapons.yaml"), []byte(`
- name: Pike
  bearer: Wren
  condition: nicked
- name: Sling
  bearer: Wren
  condition: frayed
`), 0644)
	require.NoError(t, err)

	c, err := LoadWeapons(dir)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "Pike (carried by Wren): nicked", c.List()[0])
}

func TestLoadWeaponsInvalidRow(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "weapons.yaml"), []byte(`
- name: Pike
  bearer: Wren
`), 0644)
	require.NoError(t, err)

	_, err = LoadWeapons(dir)
	assert.Error(t, err)
}
