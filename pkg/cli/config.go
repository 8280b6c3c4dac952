// This file loads workflow configuration files into the typed entities the
// compiler consumes. The boundary is deliberate: everything here may fail
// with file and position information, while pkg/workflow stays total and
// pure.

package cli

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ghagen/ghagen/pkg/logger"
	"github.com/ghagen/ghagen/pkg/workflow"
)

var configLog = logger.New("cli:config")

// WorkflowConfig is the YAML shape of one workflow configuration file.
type WorkflowConfig struct {
	Name         string            `yaml:"name"`
	Branches     []string          `yaml:"branches"`
	PREventTypes []string          `yaml:"pr-event-types"`
	Env          map[string]string `yaml:"env"`
	Sbt          string            `yaml:"sbt"`
	Jobs         []JobConfig       `yaml:"jobs"`
}

// JobConfig is the YAML shape of one job entry.
type JobConfig struct {
	ID     string             `yaml:"id"`
	Name   string             `yaml:"name"`
	Needs  []string           `yaml:"needs"`
	Cond   string             `yaml:"if"`
	OSes   []string           `yaml:"os"`
	Scalas []string           `yaml:"scala"`
	Javas  []string           `yaml:"java"`
	Matrix []MatrixAxisConfig `yaml:"matrix"`
	Env    map[string]string  `yaml:"env"`
	Steps  []StepConfig       `yaml:"steps"`
}

// MatrixAxisConfig is one extra matrix axis. Axes are a list, not a map,
// because their order in the file is the order they render.
type MatrixAxisConfig struct {
	Key    string   `yaml:"key"`
	Values []string `yaml:"values"`
}

// StepConfig is the YAML shape of one step. Exactly one of the kind fields
// (run, sbt, uses, checkout, setup-scala) must be set.
type StepConfig struct {
	Name       string            `yaml:"name"`
	Cond       string            `yaml:"if"`
	Env        map[string]string `yaml:"env"`
	Run        []string          `yaml:"run"`
	Sbt        []string          `yaml:"sbt"`
	Uses       *UsesConfig       `yaml:"uses"`
	Checkout   bool              `yaml:"checkout"`
	SetupScala bool              `yaml:"setup-scala"`
}

// UsesConfig identifies a third-party action pinned to a major version.
type UsesConfig struct {
	Owner   string            `yaml:"owner"`
	Repo    string            `yaml:"repo"`
	Version int               `yaml:"version"`
	With    map[string]string `yaml:"with"`
}

// LoadWorkflowConfig reads, validates, and decodes one configuration file
// into a compiler-ready workflow.
func LoadWorkflowConfig(path string) (*workflow.Workflow, error) {
	configLog.Printf("Loading workflow configuration from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if err := validateConfigDocument(data); err != nil {
		return nil, fmt.Errorf("invalid workflow configuration: %w", err)
	}

	var cfg WorkflowConfig
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return buildWorkflow(cfg)
}

// buildWorkflow translates the decoded config into entity values, applying
// the documented defaults (single-entry matrix axes, default PR event types,
// plain "sbt" invocation).
func buildWorkflow(cfg WorkflowConfig) (*workflow.Workflow, error) {
	prEventTypes := workflow.DefaultPREventTypes
	if cfg.PREventTypes != nil {
		prEventTypes = make([]workflow.PREventType, 0, len(cfg.PREventTypes))
		for _, token := range cfg.PREventTypes {
			eventType, err := workflow.ParsePREventType(token)
			if err != nil {
				return nil, err
			}
			prEventTypes = append(prEventTypes, eventType)
		}
	}

	jobs := make([]workflow.Job, 0, len(cfg.Jobs))
	for _, jobCfg := range cfg.Jobs {
		job, err := buildJob(jobCfg)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return &workflow.Workflow{
		Name:          cfg.Name,
		Branches:      cfg.Branches,
		PREventTypes:  prEventTypes,
		Env:           cfg.Env,
		Jobs:          jobs,
		SbtInvocation: cfg.Sbt,
	}, nil
}

func buildJob(cfg JobConfig) (workflow.Job, error) {
	job := workflow.NewJob(cfg.ID, cfg.Name)
	job.Needs = cfg.Needs
	job.Cond = cfg.Cond
	job.Env = cfg.Env
	if len(cfg.OSes) > 0 {
		job.OSes = cfg.OSes
	}
	if len(cfg.Scalas) > 0 {
		job.Scalas = cfg.Scalas
	}
	if len(cfg.Javas) > 0 {
		job.Javas = cfg.Javas
	}
	for _, axis := range cfg.Matrix {
		job.MatrixAdds = append(job.MatrixAdds, workflow.MatrixAxis{Key: axis.Key, Values: axis.Values})
	}

	for i, stepCfg := range cfg.Steps {
		step, err := buildStep(stepCfg)
		if err != nil {
			return workflow.Job{}, fmt.Errorf("job %q step %d: %w", cfg.ID, i+1, err)
		}
		job.Steps = append(job.Steps, step)
	}
	return job, nil
}

func buildStep(cfg StepConfig) (workflow.Step, error) {
	kinds := 0
	if cfg.Run != nil {
		kinds++
	}
	if cfg.Sbt != nil {
		kinds++
	}
	if cfg.Uses != nil {
		kinds++
	}
	if cfg.Checkout {
		kinds++
	}
	if cfg.SetupScala {
		kinds++
	}
	if kinds != 1 {
		return nil, fmt.Errorf("step must set exactly one of run, sbt, uses, checkout, setup-scala")
	}

	switch {
	case cfg.Run != nil:
		return workflow.RunStep{
			Commands: cfg.Run,
			Name:     cfg.Name,
			Cond:     cfg.Cond,
			Env:      cfg.Env,
		}, nil
	case cfg.Sbt != nil:
		return workflow.SbtStep{Commands: cfg.Sbt}, nil
	case cfg.Uses != nil:
		return workflow.UseStep{
			Owner:   cfg.Uses.Owner,
			Repo:    cfg.Uses.Repo,
			Version: cfg.Uses.Version,
			Params:  cfg.Uses.With,
			Env:     cfg.Env,
			Name:    cfg.Name,
		}, nil
	case cfg.Checkout:
		return workflow.CheckoutStep{}, nil
	default:
		return workflow.SetupScalaStep{}, nil
	}
}
