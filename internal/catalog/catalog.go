// Package catalog provides the built-in editor questionnaire.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/abhisek/edpick/internal/engine"
	"github.com/abhisek/edpick/internal/quizfile"
)

//go:embed editors.yaml
var editorsYAML []byte

// def is parsed once at init; an invalid embedded file is a build defect.
var def = mustParse(editorsYAML)

func mustParse(data []byte) quizfile.Definition {
	d, err := quizfile.Parse(data, quizfile.FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded questionnaire: %v", err))
	}
	return d
}

// Default returns a copy of the built-in editor questionnaire. Callers may
// modify it freely.
func Default() quizfile.Definition {
	return def.Clone()
}

// NewSession starts a fresh session over the built-in questionnaire.
func NewSession() (*engine.Session, error) {
	return def.NewSession()
}
