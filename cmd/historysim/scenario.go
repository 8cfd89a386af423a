package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario is a scripted session read from YAML.
type Scenario struct {
	Name      string   `yaml:"name"`
	AppConfig string   `yaml:"appConfig"` // Relative to the scenario file
	Locale    string   `yaml:"locale"`
	Initial   []string `yaml:"initial"` // Pages present before the history attaches
	Steps     []Step   `yaml:"steps"`
}

// Step is one user or host action. Exactly one of the action fields is set.
type Step struct {
	Launch  string         `yaml:"launch,omitempty"`
	Push    string         `yaml:"push,omitempty"`
	Replace string         `yaml:"replace,omitempty"`
	Params  map[string]any `yaml:"params,omitempty"`
	Back    *int           `yaml:"back,omitempty"`
	Go      *int           `yaml:"go,omitempty"`
	Forward bool           `yaml:"forward,omitempty"`
	Show    bool           `yaml:"show,omitempty"`
	Stack   []string       `yaml:"stack,omitempty"` // Rewrite the stack and announce its top
}

var errAmbiguousStep = errors.New("step must set exactly one action")

// Kind names the action a step performs.
func (s Step) Kind() (string, error) {
	var kinds []string
	if s.Launch != "" {
		kinds = append(kinds, "launch")
	}
	if s.Push != "" {
		kinds = append(kinds, "push")
	}
	if s.Replace != "" {
		kinds = append(kinds, "replace")
	}
	if s.Back != nil {
		kinds = append(kinds, "back")
	}
	if s.Go != nil {
		kinds = append(kinds, "go")
	}
	if s.Forward {
		kinds = append(kinds, "forward")
	}
	if s.Show {
		kinds = append(kinds, "show")
	}
	if s.Stack != nil {
		kinds = append(kinds, "stack")
	}
	if len(kinds) != 1 {
		return "", fmt.Errorf("%w, got %v", errAmbiguousStep, kinds)
	}
	return kinds[0], nil
}

// LoadScenario reads and checks a scenario file. AppConfig is resolved
// against the scenario's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	for i, step := range sc.Steps {
		if _, err := step.Kind(); err != nil {
			return nil, fmt.Errorf("scenario %s step %d: %w", path, i+1, err)
		}
	}

	if sc.AppConfig != "" && !filepath.IsAbs(sc.AppConfig) {
		sc.AppConfig = filepath.Join(filepath.Dir(path), sc.AppConfig)
	}
	return &sc, nil
}
