package entities

import "fmt"

// PatchSignature describes the single line rewrite applied to a dependency's build output.
type PatchSignature struct {
	Dependency       string // package name as installed under node_modules
	SupportedVersion string // the only version the line offset is valid for
	File             string // artifact path relative to the package root
	Line             int    // 1-based line number inside File
	OldCondition     string // expression expected verbatim on Line
	NewCondition     string // guard conjoined with OldCondition
}

// ViteIssue2390 is the workaround for vitejs/vite#2390: Vite 2.1.2 skips import.meta.glob
// transforms for importers living inside node_modules.
//
//nolint:gochecknoglobals // compile-time patch constants
var ViteIssue2390 = PatchSignature{
	Dependency:       "vite",
	SupportedVersion: "2.1.2",
	File:             "dist/node/chunks/dep-efe32886.js",
	Line:             23655,
	OldCondition:     "importer.includes('node_modules')",
	NewCondition:     "!source.includes('import.meta.glob')",
}

// PatchedCondition returns the expression that replaces OldCondition.
func (s PatchSignature) PatchedCondition() string {
	return fmt.Sprintf("(%s && %s)", s.OldCondition, s.NewCondition)
}
