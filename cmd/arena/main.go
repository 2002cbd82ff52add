// Package main provides the arena binary: a fixed fight narrative that
// exercises the character, armory, bestiary, and fight engines and journals
// its checkpoints.
package main

import (
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/config"
	"github.com/cory-johannsen/arena/internal/game/armory"
	"github.com/cory-johannsen/arena/internal/game/bestiary"
	"github.com/cory-johannsen/arena/internal/game/character"
	"github.com/cory-johannsen/arena/internal/game/fight"
	"github.com/cory-johannsen/arena/internal/journal"
	"github.com/cory-johannsen/arena/internal/observability"
	"github.com/cory-johannsen/arena/internal/scripting"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = built-in defaults")
	charactersDir := flag.String("characters-dir", "", "path to character template YAML directory; overrides config")
	weaponsDir := flag.String("weapons-dir", "", "path to weapon YAML directory; overrides config")
	monstersDir := flag.String("monsters-dir", "", "path to monster template YAML directory; overrides config")
	flavorScript := flag.String("flavor-script", "", "path to Lua flavor script; overrides config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *charactersDir != "" {
		cfg.Content.CharactersDir = *charactersDir
	}
	if *weaponsDir != "" {
		cfg.Content.WeaponsDir = *weaponsDir
	}
	if *monstersDir != "" {
		cfg.Content.MonstersDir = *monstersDir
	}
	if *flavorScript != "" {
		cfg.Content.FlavorScript = *flavorScript
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("arena run failed", zap.Error(err))
	}
}

// run executes the fixed narrative: journal the initial save, describe the
// characters, list the weapons, journal the settings, present the monsters,
// then fight forward and undo.
func run(cfg config.Config, logger *zap.Logger) error {
	jrnl := journal.Shared()

	// Characters: the first template is the prototype; the second fighter
	// is a full value copy with overridden fields.
	templates := character.Defaults()
	if cfg.Content.CharactersDir != "" {
		loaded, err := character.LoadTemplates(cfg.Content.CharactersDir)
		if err != nil {
			return fmt.Errorf("loading character templates: %w", err)
		}
		if len(loaded) > 0 {
			templates = loaded
		}
		logger.Info("loaded character templates",
			zap.String("dir", cfg.Content.CharactersDir),
			zap.Int("count", len(loaded)),
		)
	}
	base := templates[0]
	rival := base.CloneWith(
		character.WithName("Mordecai"),
		character.WithRace("Elf"),
		character.WithPreferredArmor("moss weave"),
		character.WithRecharge(5),
	)

	// Weapons.
	catalog := armory.DefaultCatalog()
	if cfg.Content.WeaponsDir != "" {
		loaded, err := armory.LoadWeapons(cfg.Content.WeaponsDir)
		if err != nil {
			return fmt.Errorf("loading weapons: %w", err)
		}
		if loaded.Len() > 0 {
			catalog = loaded
		}
		logger.Info("loaded weapon definitions",
			zap.String("dir", cfg.Content.WeaponsDir),
			zap.Int("count", loaded.Len()),
		)
	}

	// Monsters.
	monsterTemplates := bestiary.DefaultTemplates()
	if cfg.Content.MonstersDir != "" {
		loaded, err := bestiary.LoadTemplates(cfg.Content.MonstersDir)
		if err != nil {
			return fmt.Errorf("loading monster templates: %w", err)
		}
		monsterTemplates = append(monsterTemplates, loaded...)
		logger.Info("loaded monster templates",
			zap.String("dir", cfg.Content.MonstersDir),
			zap.Int("count", len(loaded)),
		)
	}
	roster, err := bestiary.NewRoster(monsterTemplates...)
	if err != nil {
		return fmt.Errorf("building monster roster: %w", err)
	}

	// Optional flavor script.
	var flavor *scripting.Flavor
	if cfg.Content.FlavorScript != "" {
		flavor, err = scripting.LoadFlavor(cfg.Content.FlavorScript, 0)
		if err != nil {
			return fmt.Errorf("loading flavor script: %w", err)
		}
		defer flavor.Close()
		logger.Info("loaded flavor script", zap.String("path", cfg.Content.FlavorScript))
	}

	plan, err := fight.ParsePlan(cfg.Game.HitPlan)
	if err != nil {
		return fmt.Errorf("parsing hit plan: %w", err)
	}

	// Narrative.
	jrnl.Write("Initial Save")

	fmt.Println("Fighters:")
	fmt.Println("  " + base.Describe())
	fmt.Println("  " + rival.Describe())

	fmt.Println("Weapons:")
	for _, line := range catalog.List() {
		fmt.Println("  " + line)
	}

	jrnl.Write("Save Settings")

	fmt.Println("Monsters:")
	for index := 0; index <= 3; index++ {
		monster := roster.Spawn(index)
		fmt.Printf("  [%d] %s\n", index, monster.Describe())
		if flavor != nil {
			if line, ok := flavor.Intro(monster.Name); ok {
				fmt.Println("      " + line)
			}
		}
	}

	seq := fight.NewSequence(plan...)
	logger.Info("fight sequence built",
		zap.String("sequence_id", seq.ID()),
		zap.Int("hits", len(plan)),
		zap.Int("weapon_power", cfg.Game.WeaponPower),
	)

	var acc fight.Accumulator

	fmt.Println("Fight:")
	for _, ev := range seq.Apply(&acc, false) {
		fmt.Println("  " + ev.Label)
	}
	fmt.Printf("Total damage: %d\n", fight.DisplayDamage(acc.Damage(), cfg.Game.WeaponPower))

	seq.Reverse()

	fmt.Println("Undo:")
	for _, ev := range seq.Apply(&acc, true) {
		fmt.Println("  " + ev.Label)
	}
	fmt.Printf("Total damage: %d\n", fight.DisplayDamage(acc.Damage(), cfg.Game.WeaponPower))

	jrnl.Write("Save Fight Results")

	return nil
}
