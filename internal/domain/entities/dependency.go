package entities

// Dependency represents an installed package resolved from its package descriptor.
type Dependency struct {
	Name           string // Package name from the descriptor
	Version        string // Declared version from the descriptor
	Root           string // Absolute install directory
	DescriptorPath string // Absolute path to package.json
}

// Target pairs a resolved dependency with the absolute path of the artifact to patch.
type Target struct {
	Dependency Dependency
	File       string
}
