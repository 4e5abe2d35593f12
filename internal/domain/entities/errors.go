package entities

import (
	"errors"
	"fmt"

	"golang.org/x/mod/semver"
)

// PatchErrorHint is appended to failures that mean the supported-version assumption is broken.
const PatchErrorHint = "Could not patch vite. Contact @brillout on Discord or by opening a new GitHub issue."

var (
	// ErrDependencyNotFound is returned when the package descriptor cannot be resolved.
	ErrDependencyNotFound = errors.New("dependency not found")
	// ErrTargetNotFound is returned when the artifact is missing from the install tree.
	ErrTargetNotFound = errors.New("patch target not found")
	// ErrPatchPrecondition is returned when the designated line does not hold exactly one
	// occurrence of the old condition.
	ErrPatchPrecondition = errors.New("patch precondition failed")
	// ErrPatchNotApplied is returned by the assertion mode when the patch is missing.
	ErrPatchNotApplied = errors.New("patch not applied")
	// ErrVersionMismatch matches any *VersionMismatchError through errors.Is.
	ErrVersionMismatch = errors.New("unsupported dependency version")
)

// VersionMismatchError carries the installed version that differs from the supported one.
type VersionMismatchError struct {
	Dependency string
	Supported  string
	Installed  string
}

func (e *VersionMismatchError) Error() string {
	msg := fmt.Sprintf(
		"only the %s version %s is supported, your %s version: %s",
		e.Dependency, e.Supported, e.Dependency, e.Installed,
	)
	if direction := compareVersions(e.Installed, e.Supported); direction != "" {
		msg += " (" + direction + ")"
	}
	return msg
}

// Is makes errors.Is(err, ErrVersionMismatch) hold for every mismatch.
func (e *VersionMismatchError) Is(target error) bool {
	return target == ErrVersionMismatch
}

// compareVersions describes installed relative to supported, or "" when either is not semver.
func compareVersions(installed, supported string) string {
	a, b := "v"+installed, "v"+supported
	if !semver.IsValid(a) || !semver.IsValid(b) {
		return ""
	}
	switch semver.Compare(a, b) {
	case 1:
		return "newer than supported"
	case -1:
		return "older than supported"
	default:
		return ""
	}
}
