// Package script loads and runs YAML demo scripts against the list
// engine. A script names an initial list and a sequence of steps; the
// runner executes the steps in order and records a per-step outcome so
// absent values and out-of-range positions surface as messages instead
// of aborting the run.
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/slink/internal/errs"
)

// Step operations.
const (
	OpInsertHead   = "insert-head"
	OpInsertTail   = "insert-tail"
	OpInsertAfter  = "insert-after"
	OpInsertAt     = "insert-at"
	OpInsertSorted = "insert-sorted"
	OpRemoveValue  = "remove-value"
	OpRemoveAt     = "remove-at"
	OpFind         = "find"
	OpFirstCommon  = "first-common"
	OpLength       = "length"
	OpPrint        = "print"
)

var knownOps = map[string]bool{
	OpInsertHead:   true,
	OpInsertTail:   true,
	OpInsertAfter:  true,
	OpInsertAt:     true,
	OpInsertSorted: true,
	OpRemoveValue:  true,
	OpRemoveAt:     true,
	OpFind:         true,
	OpFirstCommon:  true,
	OpLength:       true,
	OpPrint:        true,
}

// Step is one operation of a script.
type Step struct {
	Op       string `yaml:"op"`
	Value    int    `yaml:"value"`
	Position int    `yaml:"position"`
	// After is the payload of the node an insert-after step splices
	// behind; the runner locates it with Find first.
	After int `yaml:"after"`
	// Values is the second list of a first-common step.
	Values []int `yaml:"values"`
}

// Script is a named sequence of steps over an initial list.
type Script struct {
	Name    string `yaml:"name"`
	Initial []int  `yaml:"initial"`
	Steps   []Step `yaml:"steps"`
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errs.NewScriptError("decoding script", err)
	}

	if err := validate(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewScriptError(fmt.Sprintf("reading script %s", path), err)
	}

	return Parse(data)
}

func validate(s *Script) error {
	if len(s.Steps) == 0 {
		return errs.NewScriptError("script has no steps", nil)
	}

	for i, step := range s.Steps {
		if !knownOps[step.Op] {
			return errs.NewScriptError(
				fmt.Sprintf("step %d: unknown op %q", i, step.Op), nil)
		}
		if step.Op == OpFirstCommon && len(step.Values) == 0 {
			return errs.NewScriptError(
				fmt.Sprintf("step %d: first-common requires values", i), nil)
		}
	}

	return nil
}
