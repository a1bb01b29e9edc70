package defs

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSchemasCoverEveryCatalogFile(t *testing.T) {
	schemas := Schemas()
	want := map[string][]string{
		EnemiesFile: {"EnemyDefinition", "max_health"},
		TowersFile:  {"TowerDefinition", "fire_rate", "projectile_speed"},
		WavesFile:   {"WaveDefinition"},
		EconomyFile: {"starting_gold", "tower_order"},
	}
	for file, fields := range want {
		schema, ok := schemas[file]
		if !ok {
			t.Fatalf("no schema for %s", file)
		}
		data, err := json.Marshal(schema)
		if err != nil {
			t.Fatalf("marshal %s: %v", file, err)
		}
		for _, f := range fields {
			if !strings.Contains(string(data), f) {
				t.Fatalf("%s schema does not mention %q", file, f)
			}
		}
	}
	if len(schemas) != len(want) {
		t.Fatalf("got %d schemas want %d", len(schemas), len(want))
	}
}
