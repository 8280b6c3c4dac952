package workflow

import (
	"fmt"
	"strings"

	"github.com/ghagen/ghagen/pkg/logger"
)

var stepLog = logger.New("workflow:step")

// Step is one unit of work within a job. The set of step kinds is closed:
// RunStep, UseStep, SbtStep, CheckoutStep, SetupScalaStep.
type Step interface {
	isStep()
}

// RunStep executes one or more shell command lines.
type RunStep struct {
	Commands []string
	Name     string // optional, "" renders no name: line
	Cond     string // optional Actions expression, "" renders no if: line
	Env      map[string]string
}

// UseStep invokes a third-party action pinned to a major version tag.
type UseStep struct {
	Owner   string
	Repo    string
	Version int
	Params  map[string]string
	Env     map[string]string
	Name    string
}

// SbtStep runs a list of sbt commands in one shell invocation, against the
// Scala version selected by the build matrix.
type SbtStep struct {
	Commands []string
}

// CheckoutStep checks out the current branch. Expands to a fixed UseStep.
type CheckoutStep struct{}

// SetupScalaStep installs Java and Scala. Expands to a fixed UseStep.
type SetupScalaStep struct{}

func (RunStep) isStep()        {}
func (UseStep) isStep()        {}
func (SbtStep) isStep()        {}
func (CheckoutStep) isStep()   {}
func (SetupScalaStep) isStep() {}

// CompileStep renders a step as one YAML sequence item starting with "- ",
// continuation lines indented two spaces past the item marker.
//
// sbtInvocation is the shell invocation used to launch the build tool; it is
// only consulted for SbtStep. declareShell forces an explicit shell: bash
// line on run steps, which jobs request when their matrix spans more than one
// operating system.
func CompileStep(step Step, sbtInvocation string, declareShell bool) string {
	switch s := step.(type) {
	case RunStep:
		return compileRun(s, declareShell)
	case SbtStep:
		command := sbtInvocation + " ++${{ matrix.scala }} " + joinSbtCommands(s.Commands)
		return compileRun(RunStep{Commands: []string{command}}, declareShell)
	case UseStep:
		return compileUse(s)
	case CheckoutStep:
		return compileUse(UseStep{
			Owner:   "actions",
			Repo:    "checkout",
			Version: 2,
			Name:    "Checkout current branch (fast)",
		})
	case SetupScalaStep:
		return compileUse(UseStep{
			Owner:   "olafurpg",
			Repo:    "setup-scala",
			Version: 5,
			Name:    "Setup Java and Scala",
			Params:  map[string]string{"java-version": "${{ matrix.java }}"},
		})
	}
	stepLog.Printf("Unknown step kind %T, rendering nothing", step)
	return ""
}

func compileRun(s RunStep, declareShell bool) string {
	var lines []string
	if env := compileEnv(s.Env, "env"); env != "" {
		lines = append(lines, strings.Split(env, "\n")...)
	}
	if s.Cond != "" {
		lines = append(lines, "if: "+s.Cond)
	}
	if s.Name != "" {
		lines = append(lines, "name: "+s.Name)
	}
	if declareShell {
		lines = append(lines, "shell: bash")
	}
	if len(s.Commands) == 1 {
		lines = append(lines, "run: "+s.Commands[0])
	} else {
		lines = append(lines, "run: |")
		for _, command := range s.Commands {
			lines = append(lines, "  "+command)
		}
	}
	return listItem(strings.Join(lines, "\n"))
}

func compileUse(s UseStep) string {
	var lines []string
	if env := compileEnv(s.Env, "env"); env != "" {
		lines = append(lines, strings.Split(env, "\n")...)
	}
	if s.Name != "" {
		lines = append(lines, "name: "+s.Name)
	}
	lines = append(lines, fmt.Sprintf("uses: %s/%s@v%d", s.Owner, s.Repo, s.Version))
	if with := compileEnv(quoteParams(s.Params), "with"); with != "" {
		lines = append(lines, strings.Split(with, "\n")...)
	}
	return listItem(strings.Join(lines, "\n"))
}

// quoteParams single-quotes values that start with "@"; YAML would otherwise
// reject them as directives. All other values render raw so expressions like
// ${{ matrix.java }} survive untouched.
func quoteParams(params map[string]string) map[string]string {
	if len(params) == 0 {
		return params
	}
	quoted := make(map[string]string, len(params))
	for k, v := range params {
		if strings.HasPrefix(v, "@") {
			v = "'" + v + "'"
		}
		quoted[k] = v
	}
	return quoted
}

// joinSbtCommands renders the command list for a single sbt invocation.
// Commands containing a space are single-quoted so sbt receives each one as a
// single argument.
func joinSbtCommands(commands []string) string {
	safe := make([]string, 0, len(commands))
	for _, command := range commands {
		if strings.Contains(command, " ") {
			command = "'" + command + "'"
		}
		safe = append(safe, command)
	}
	return strings.Join(safe, " ")
}
