package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/bifurc/internal/analysis"
	"github.com/san-kum/bifurc/internal/config"
	"github.com/san-kum/bifurc/internal/storage"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of sweeps.
type Scenario struct {
	Name        string
	Description string
	Steps       []ScenarioStep
}

// ScenarioStep is a single sweep. Its configuration starts from the named
// preset (or the defaults) and any sweep or render keys in the step
// override individual values.
type ScenarioStep struct {
	Name          string `yaml:"name"`
	Preset        string `yaml:"preset"`
	Save          bool   `yaml:"save"`
	config.Config `yaml:",inline"`
}

type rawScenario struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Steps       []yaml.Node `yaml:"steps"`
}

// LoadScenario loads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

// ParseScenario decodes a scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	var raw rawScenario
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	scenario := &Scenario{
		Name:        raw.Name,
		Description: raw.Description,
		Steps:       make([]ScenarioStep, 0, len(raw.Steps)),
	}

	for i := range raw.Steps {
		step, err := decodeStep(&raw.Steps[i])
		if err != nil {
			return nil, fmt.Errorf("scenario step %d: %w", i+1, err)
		}
		if step.Name == "" {
			step.Name = fmt.Sprintf("step-%d", i+1)
		}
		scenario.Steps = append(scenario.Steps, step)
	}
	return scenario, nil
}

// decodeStep decodes node twice: once to find the preset, then on top of
// that preset so unspecified keys keep its values.
func decodeStep(node *yaml.Node) (ScenarioStep, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := node.Decode(&head); err != nil {
		return ScenarioStep{}, err
	}

	base := config.DefaultConfig()
	if head.Preset != "" {
		if base = config.GetPreset(head.Preset); base == nil {
			return ScenarioStep{}, fmt.Errorf("unknown preset: %s (available: %v)", head.Preset, config.ListPresets())
		}
	}

	step := ScenarioStep{Config: *base}
	if err := node.Decode(&step); err != nil {
		return ScenarioStep{}, err
	}
	if err := step.Validate(); err != nil {
		return ScenarioStep{}, err
	}
	return step, nil
}

// StepResult is the outcome of one scenario step. RunID is empty unless the
// step was saved.
type StepResult struct {
	Name   string
	RunID  string
	Result *analysis.Result
}

// Renderer draws a finished sweep.
type Renderer func(rc config.RenderConfig, result *analysis.Result) error

// RunScenario executes all steps in order. Saved steps go to st, which may be
// nil when no step saves. render may be nil to skip drawing. The results of
// completed steps are returned along with the first error.
func RunScenario(ctx context.Context, scenario *Scenario, st *storage.Store, render Renderer) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		slog.Info("scenario step", "n", i+1, "of", len(scenario.Steps), "name", step.Name, "preset", step.Preset)

		sc := step.Sweep
		result, err := analysis.Run(ctx, analysis.Params{
			RMin:      sc.RMin,
			RMax:      sc.RMax,
			RSteps:    sc.RSteps,
			XIn:       sc.XIn,
			Transient: sc.Transient,
			Samples:   sc.Samples,
			Workers:   sc.Workers,
		})
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, step.Name, err)
		}

		sr := StepResult{Name: step.Name, Result: result}
		if step.Save {
			if st == nil {
				return results, fmt.Errorf("step %d (%s): save requested without a store", i+1, step.Name)
			}
			if err := st.Init(); err != nil {
				return results, err
			}
			sr.RunID, err = st.Save(storage.RunMetadata{
				Preset:         step.Preset,
				RMin:           sc.RMin,
				RMax:           sc.RMax,
				RSteps:         sc.RSteps,
				XIn:            sc.XIn,
				Transient:      sc.Transient,
				Samples:        sc.Samples,
				Workers:        sc.Workers,
				ElapsedSeconds: result.Elapsed.Seconds(),
			}, result.RVals, result.Outputs)
			if err != nil {
				return results, fmt.Errorf("step %d (%s) save: %w", i+1, step.Name, err)
			}
		}

		if render != nil {
			if err := render(step.Render, result); err != nil {
				return results, fmt.Errorf("step %d (%s) render: %w", i+1, step.Name, err)
			}
		}

		results = append(results, sr)
	}

	return results, nil
}
