package defs

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"spoon-defense/internal/config"
	"spoon-defense/internal/logging"
)

//go:embed data/*.json
var embedded embed.FS

const (
	EnemiesFile = "enemies.json"
	TowersFile  = "towers.json"
	WavesFile   = "waves.json"
	EconomyFile = "economy.json"
)

// Economy holds the run-level numbers that are authored with the tables.
type Economy struct {
	StartingGold int      `json:"starting_gold" jsonschema:"minimum=0"`
	BaseHealth   int      `json:"base_health" jsonschema:"minimum=1"`
	TowerOrder   []string `json:"tower_order" jsonschema:"minItems=1,description=Tower ids in selection order"`
}

// Catalog is the immutable set of definitions a run is played with.
type Catalog struct {
	Enemies map[string]EnemyDefinition
	Towers  map[string]TowerDefinition
	Waves   []WaveDefinition
	Economy Economy
}

// Default returns the catalog authored with the game.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded catalog: %w", err)
	}
	return Load(sub)
}

// MustDefault is Default for callers that cannot recover from a broken build.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadDir reads a catalog from a directory on disk.
func LoadDir(path string) (*Catalog, error) {
	return Load(os.DirFS(path))
}

// Load reads and validates the four catalog files from fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	var enemyDefs []EnemyDefinition
	if err := readJSON(fsys, EnemiesFile, &enemyDefs); err != nil {
		return nil, err
	}
	var towerDefs []TowerDefinition
	if err := readJSON(fsys, TowersFile, &towerDefs); err != nil {
		return nil, err
	}
	c := &Catalog{
		Enemies: make(map[string]EnemyDefinition, len(enemyDefs)),
		Towers:  make(map[string]TowerDefinition, len(towerDefs)),
	}
	if err := readJSON(fsys, WavesFile, &c.Waves); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, EconomyFile, &c.Economy); err != nil {
		return nil, err
	}

	for _, def := range enemyDefs {
		if def.Boss != nil && def.Boss.ReinforcementID == "" {
			def.Boss.ReinforcementID = config.DefaultReinforcementID
		}
		c.Enemies[def.ID] = def
	}
	for _, def := range towerDefs {
		c.Towers[def.ID] = def
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	logging.Debugf("Loaded %d enemy, %d tower and %d wave definitions", len(c.Enemies), len(c.Towers), len(c.Waves))
	return c, nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}

// Enemy looks up an enemy definition.
func (c *Catalog) Enemy(id string) (*EnemyDefinition, bool) {
	def, ok := c.Enemies[id]
	if !ok {
		return nil, false
	}
	return &def, true
}

// Tower looks up a tower definition.
func (c *Catalog) Tower(id string) (*TowerDefinition, bool) {
	def, ok := c.Towers[id]
	if !ok {
		return nil, false
	}
	return &def, true
}

// TowerOrder returns tower ids in selection order.
func (c *Catalog) TowerOrder() []string {
	return c.Economy.TowerOrder
}

// Validate checks cross references and value ranges. All problems are
// reported together.
func (c *Catalog) Validate() error {
	var errs []error
	if len(c.Waves) == 0 {
		errs = append(errs, errors.New("no waves defined"))
	}
	if len(c.Economy.TowerOrder) == 0 {
		errs = append(errs, errors.New("tower_order is empty"))
	}
	if c.Economy.BaseHealth <= 0 {
		errs = append(errs, fmt.Errorf("base_health must be positive, got %d", c.Economy.BaseHealth))
	}
	if c.Economy.StartingGold < 0 {
		errs = append(errs, fmt.Errorf("starting_gold must not be negative, got %d", c.Economy.StartingGold))
	}
	for _, id := range c.Economy.TowerOrder {
		if _, ok := c.Towers[id]; !ok {
			errs = append(errs, fmt.Errorf("tower_order references unknown tower %q", id))
		}
	}

	for id, e := range c.Enemies {
		if e.MaxHealth <= 0 {
			errs = append(errs, fmt.Errorf("enemy %q: max_health must be positive", id))
		}
		if e.Speed <= 0 {
			errs = append(errs, fmt.Errorf("enemy %q: speed must be positive", id))
		}
		if e.Boss != nil {
			if _, ok := c.Enemies[e.Boss.ReinforcementID]; !ok {
				errs = append(errs, fmt.Errorf("enemy %q: unknown reinforcement %q", id, e.Boss.ReinforcementID))
			}
			if e.Boss.VortexCooldownMs <= 0 || e.Boss.SlamCooldownMs <= 0 || e.Boss.SplinterCooldownMs <= 0 {
				errs = append(errs, fmt.Errorf("enemy %q: boss cooldowns must be positive", id))
			}
		}
	}

	for id, t := range c.Towers {
		if t.FireRate <= 0 {
			errs = append(errs, fmt.Errorf("tower %q: fire_rate must be positive", id))
		}
		if t.ProjectileSpeed <= 0 {
			errs = append(errs, fmt.Errorf("tower %q: projectile_speed must be positive", id))
		}
		if t.SlowPct < 0 || t.SlowPct > 1 {
			errs = append(errs, fmt.Errorf("tower %q: slow_pct must be within [0,1]", id))
		}
	}

	for i, w := range c.Waves {
		if len(w.Groups) == 0 {
			errs = append(errs, fmt.Errorf("wave %d has no groups", i+1))
		}
		for _, g := range w.Groups {
			if _, ok := c.Enemies[g.EnemyID]; !ok {
				errs = append(errs, fmt.Errorf("wave %d references unknown enemy %q", i+1, g.EnemyID))
			}
			if g.Count <= 0 {
				errs = append(errs, fmt.Errorf("wave %d: group %q count must be positive", i+1, g.EnemyID))
			}
			if g.SpawnIntervalMs < 0 {
				errs = append(errs, fmt.Errorf("wave %d: group %q has negative interval", i+1, g.EnemyID))
			}
		}
	}
	return errors.Join(errs...)
}

// IsBossWave reports whether wave index releases a boss.
func (c *Catalog) IsBossWave(index int) bool {
	if index < 0 || index >= len(c.Waves) {
		return false
	}
	for _, g := range c.Waves[index].Groups {
		if def, ok := c.Enemy(g.EnemyID); ok && def.IsBoss() {
			return true
		}
	}
	return false
}
