package defs

import (
	"github.com/invopop/jsonschema"
)

// Schemas returns a JSON schema per catalog file, keyed by file name, so
// authored tables can be checked in an editor before the loader sees them.
func Schemas() map[string]*jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}
	build := func(v any, title, description string) *jsonschema.Schema {
		schema := reflector.Reflect(v)
		schema.Title = title
		schema.Description = description
		return schema
	}
	return map[string]*jsonschema.Schema{
		EnemiesFile: build(new([]EnemyDefinition), "Spoon Defense Enemies", "Enemy kinds, including bosses and their abilities"),
		TowersFile:  build(new([]TowerDefinition), "Spoon Defense Towers", "Buildable tower kinds"),
		WavesFile:   build(new([]WaveDefinition), "Spoon Defense Waves", "Ordered waves of spawn groups"),
		EconomyFile: build(new(Economy), "Spoon Defense Economy", "Starting gold, base health and tower order"),
	}
}
