package workflow

import (
	"fmt"
	"strings"

	"github.com/ghagen/ghagen/pkg/logger"
)

var jobLog = logger.New("workflow:job")

// MatrixAxis is one extra build matrix dimension beyond os/scala/java.
// Axes render after the built-in ones, in the order the caller listed them,
// which is why this is a slice of pairs rather than a map.
type MatrixAxis struct {
	Key    string
	Values []string
}

// Job is a named unit of work instantiated over a build matrix.
//
// ID becomes the YAML map key for the job block and must be a legal
// identifier; the compiler renders it as given and performs no validation.
// Likewise Needs entries are rendered verbatim and are not checked against
// the ids of other jobs.
type Job struct {
	ID         string
	Name       string
	Steps      []Step
	OSes       []string
	Scalas     []string
	Javas      []string
	Env        map[string]string
	Cond       string // optional Actions expression guarding the whole job
	Needs      []string
	MatrixAdds []MatrixAxis
}

// NewJob constructs a job with the default single-entry matrix axes
// (ubuntu-latest, Scala 2.13.1, AdoptOpenJDK 8). Callers adjust fields on the
// returned value before compiling.
func NewJob(id, name string, steps ...Step) Job {
	return Job{
		ID:     id,
		Name:   name,
		Steps:  steps,
		OSes:   []string{"ubuntu-latest"},
		Scalas: []string{"2.13.1"},
		Javas:  []string{"adopt@1.8"},
	}
}

// CompileJob renders a complete job block keyed by the job id. Steps compile
// in their given order and are separated by exactly one blank line. When the
// matrix spans more than one operating system, every run step gets an
// explicit shell: bash line; the default shell differs across runners.
func CompileJob(job Job, sbtInvocation string) string {
	jobLog.Printf("Compiling job %q with %d steps", job.ID, len(job.Steps))

	var body strings.Builder
	body.WriteString("name: " + job.Name)
	if len(job.Needs) > 0 {
		body.WriteString("\nneeds: " + compileList(job.Needs))
	}
	if job.Cond != "" {
		body.WriteString("\nif: " + job.Cond)
	}
	body.WriteString("\nstrategy:\n  matrix:")
	fmt.Fprintf(&body, "\n    os: %s", compileList(job.OSes))
	fmt.Fprintf(&body, "\n    scala: %s", compileList(job.Scalas))
	fmt.Fprintf(&body, "\n    java: %s", compileList(job.Javas))
	for _, axis := range job.MatrixAdds {
		fmt.Fprintf(&body, "\n    %s: %s", axis.Key, compileList(axis.Values))
	}
	body.WriteString("\nruns-on: ${{ matrix.os }}")
	if env := compileEnv(job.Env, "env"); env != "" {
		body.WriteString("\n" + env)
	}

	declareShell := len(job.OSes) > 1
	steps := make([]string, 0, len(job.Steps))
	for _, step := range job.Steps {
		steps = append(steps, CompileStep(step, sbtInvocation, declareShell))
	}
	body.WriteString("\nsteps:\n" + indent(strings.Join(steps, "\n\n"), 1))

	return job.ID + ":\n" + indent(body.String(), 1)
}
