package completion

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Generator produces a completion script for one shell
type Generator interface {
	Generate(programName string, data CompletionData) string
}

var generators = map[string]Generator{
	"bash": &BashGenerator{},
	"fish": &FishGenerator{},
}

// GetGenerator returns the generator for shell, or nil when shell is not supported
func GetGenerator(shell string) Generator {
	return generators[shell]
}

// Shells returns the supported shell names
func Shells() []string {
	shells := make([]string, 0, len(generators))
	for name := range generators {
		shells = append(shells, name)
	}
	sort.Strings(shells)

	return shells
}

// Generate returns the completion script of programName for shell
func Generate(shell, programName string, data CompletionData) (string, error) {
	g := GetGenerator(shell)
	if g == nil {
		return "", fmt.Errorf("unsupported shell %q (supported: %v)", shell, Shells())
	}

	return g.Generate(filepath.Base(programName), data), nil
}
