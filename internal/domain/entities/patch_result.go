package entities

// Outcome is the terminal state of one patch invocation.
type Outcome string

const (
	OutcomeAlreadyPatched  Outcome = "already-patched"
	OutcomeApplied         Outcome = "applied"
	OutcomeWouldApply      Outcome = "would-apply"
	OutcomeNotPatched      Outcome = "not-patched"
	OutcomeVersionMismatch Outcome = "version-mismatch"
	OutcomeFailed          Outcome = "failed"
)

// PatchResult is returned by the core patch operation. Entry points differ only in how they
// report it.
type PatchResult struct {
	Outcome Outcome
	Version string // installed version, empty when the dependency was not resolved
	File    string // absolute path of the target artifact, empty when not resolved
	Err     error  // set for OutcomeVersionMismatch and OutcomeFailed
}

// Patched reports whether the artifact holds the patch after the invocation.
func (r PatchResult) Patched() bool {
	return r.Outcome == OutcomeAlreadyPatched || r.Outcome == OutcomeApplied
}

// Lookup describes where installed packages are searched for.
type Lookup struct {
	ProjectDir string   // node_modules directories are walked from here up to the root
	NodePath   []string // searched after the walk, in order
}

// PatchOptions holds runtime options passed to the patch command.
type PatchOptions struct {
	Lookup Lookup
	DryRun bool
}
