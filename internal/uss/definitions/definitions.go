// Package definitions holds the read-only USS vocabulary: unit families,
// named color keywords, and the function names the value model dispatches
// on. The vocabulary is process-wide immutable data; construct one
// Definitions via Default (or Load in tests) and share it by pointer.
package definitions

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"ussls.dev/ussls/internal/collections"
)

//go:embed data/vocabulary.yaml
var vocabularyYAML []byte

// vocabulary mirrors the embedded YAML document
type vocabulary struct {
	Units struct {
		Length []string `yaml:"length"`
		Angle  []string `yaml:"angle"`
		Time   []string `yaml:"time"`
	} `yaml:"units"`
	Functions struct {
		Color    []string `yaml:"color"`
		Asset    []string `yaml:"asset"`
		Variable []string `yaml:"variable"`
	} `yaml:"functions"`
	NamedColors []string `yaml:"namedColors"`
}

// Definitions is the keyword/unit/function vocabulary shared by the value
// model and the matching engine. All sets are lowercase.
type Definitions struct {
	LengthUnits       collections.Set[string]
	AngleUnits        collections.Set[string]
	TimeUnits         collections.Set[string]
	ColorFunctions    collections.Set[string]
	AssetFunctions    collections.Set[string]
	VariableFunctions collections.Set[string]
	NamedColors       collections.Set[string]
}

// Load parses the embedded vocabulary into a fresh Definitions
func Load() (*Definitions, error) {
	var voc vocabulary
	if err := yaml.Unmarshal(vocabularyYAML, &voc); err != nil {
		return nil, fmt.Errorf("failed to parse embedded vocabulary: %w", err)
	}

	return &Definitions{
		LengthUnits:       collections.NewSet(voc.Units.Length...),
		AngleUnits:        collections.NewSet(voc.Units.Angle...),
		TimeUnits:         collections.NewSet(voc.Units.Time...),
		ColorFunctions:    collections.NewSet(voc.Functions.Color...),
		AssetFunctions:    collections.NewSet(voc.Functions.Asset...),
		VariableFunctions: collections.NewSet(voc.Functions.Variable...),
		NamedColors:       collections.NewSet(voc.NamedColors...),
	}, nil
}

var defaultDefinitions = sync.OnceValue(func() *Definitions {
	defs, err := Load()
	if err != nil {
		// The vocabulary is embedded at build time; failing to parse it
		// is a programming error, not a runtime condition.
		panic(fmt.Sprintf("definitions: %v", err))
	}
	return defs
})

// Default returns the shared process-wide vocabulary
func Default() *Definitions {
	return defaultDefinitions()
}
