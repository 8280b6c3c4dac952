// Package workflow models continuous-integration workflows and compiles them
// into GitHub Actions YAML.
//
// The entity types (Workflow, Job, Step, Ref, RefPredicate, PREventType) are
// plain immutable values assembled by the caller; the Compile functions turn
// them into exactly formatted YAML text. Compilation is total, pure, and
// deterministic: it performs no I/O, never fails, and identical inputs always
// produce byte-identical output. That last property is a contract, not a
// convenience; generated files are committed, and regeneration must diff
// cleanly against what is already there.
package workflow

import (
	"slices"
	"strings"

	"github.com/ghagen/ghagen/pkg/logger"
)

var workflowLog = logger.New("workflow:workflow")

// generatedHeader opens every compiled document. It is fixed text, never
// influenced by caller input.
const generatedHeader = `# This file was automatically generated by ghagen from the workflow
# configuration committed to this repository. You should add and commit
# this file to your git repository, but you should not edit it by hand!
# Instead, revise the workflow configuration to meet your needs, then
# regenerate this file.`

// Workflow is the top-level CI document.
type Workflow struct {
	Name string

	// Branches are the target branch patterns for both the push and
	// pull_request triggers, rendered in the given order.
	Branches []string

	// PREventTypes filters pull_request trigger subtypes. A filter exactly
	// equal to DefaultPREventTypes renders no explicit types: line.
	PREventTypes []PREventType

	// Env is the global environment block; empty means no env: section.
	Env map[string]string

	Jobs []Job

	// SbtInvocation is the shell invocation used to launch the build tool
	// inside sbt steps. Empty means "sbt".
	SbtInvocation string
}

// CompileWorkflow renders the full document: generated-file header, workflow
// name, triggers, optional global env, and every job in input order separated
// by one blank line. A workflow with no jobs still renders the jobs: section,
// followed by a dangling two-space indent; that quirk is load-bearing for
// diff-stability against previously generated files and must not be cleaned
// up.
func CompileWorkflow(wf Workflow) string {
	workflowLog.Printf("Compiling workflow %q with %d jobs", wf.Name, len(wf.Jobs))

	sbtInvocation := wf.SbtInvocation
	if sbtInvocation == "" {
		sbtInvocation = "sbt"
	}

	branches := compileList(wf.Branches)

	renderedTypes := ""
	if !slices.Equal(wf.PREventTypes, DefaultPREventTypes) {
		tokens := make([]string, 0, len(wf.PREventTypes))
		for _, t := range wf.PREventTypes {
			tokens = append(tokens, t.String())
		}
		renderedTypes = "\n    types: " + compileList(tokens)
	}

	renderedEnv := ""
	if env := compileEnv(wf.Env, "env"); env != "" {
		renderedEnv = "\n" + env + "\n"
	}

	jobs := make([]string, 0, len(wf.Jobs))
	for _, job := range wf.Jobs {
		jobs = append(jobs, CompileJob(job, sbtInvocation))
	}

	var doc strings.Builder
	doc.WriteString(generatedHeader)
	doc.WriteString("\n\nname: " + wf.Name)
	doc.WriteString("\n\non:\n  pull_request:\n    branches: " + branches)
	doc.WriteString(renderedTypes)
	doc.WriteString("\n  push:\n    branches: " + branches)
	doc.WriteString("\n" + renderedEnv)
	doc.WriteString("\njobs:\n")
	doc.WriteString(indent(strings.Join(jobs, "\n\n"), 1))
	return doc.String()
}
