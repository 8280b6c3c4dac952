package workflow

import "fmt"

// Ref is a git reference pattern, identified by kind. The name is an opaque
// pattern string and may contain glob wildcards (e.g. "v*").
type Ref interface {
	// refPrefix is the fully qualified ref namespace, "refs/heads/" or
	// "refs/tags/".
	refPrefix() string
	refName() string
}

// BranchRef names a branch pattern.
type BranchRef struct {
	Name string
}

// TagRef names a tag pattern.
type TagRef struct {
	Name string
}

func (r BranchRef) refPrefix() string { return "refs/heads/" }
func (r BranchRef) refName() string   { return r.Name }

func (r TagRef) refPrefix() string { return "refs/tags/" }
func (r TagRef) refName() string   { return r.Name }

// RefPredicate is a boolean test over a git reference string. Predicates are
// pure data; CompileBranchPredicate interprets them.
type RefPredicate interface {
	isRefPredicate()
}

// RefEquals matches the ref exactly.
type RefEquals struct {
	Ref Ref
}

// RefContains matches any ref of the right kind containing the name.
type RefContains struct {
	Ref Ref
}

// RefStartsWith matches any ref starting with the qualified name.
type RefStartsWith struct {
	Ref Ref
}

// RefEndsWith matches any ref of the right kind ending with the name.
type RefEndsWith struct {
	Ref Ref
}

func (RefEquals) isRefPredicate()     {}
func (RefContains) isRefPredicate()   {}
func (RefStartsWith) isRefPredicate() {}
func (RefEndsWith) isRefPredicate()   {}

// CompileBranchPredicate renders a predicate over the given expression
// variable (typically "github.ref") in the Actions expression language.
// It is total over the closed predicate set.
func CompileBranchPredicate(variable string, pred RefPredicate) string {
	switch p := pred.(type) {
	case RefEquals:
		return fmt.Sprintf("%s == '%s%s'", variable, p.Ref.refPrefix(), p.Ref.refName())
	case RefStartsWith:
		return fmt.Sprintf("startsWith(%s, '%s%s')", variable, p.Ref.refPrefix(), p.Ref.refName())
	case RefEndsWith:
		return fmt.Sprintf("(startsWith(%s, '%s') && endsWith(%s, '%s'))",
			variable, p.Ref.refPrefix(), variable, p.Ref.refName())
	case RefContains:
		return fmt.Sprintf("(startsWith(%s, '%s') && contains(%s, '%s'))",
			variable, p.Ref.refPrefix(), variable, p.Ref.refName())
	}
	// Unreachable: RefPredicate is a closed set within this package.
	return ""
}
