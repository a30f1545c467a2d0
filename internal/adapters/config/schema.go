package config

// Manifest represents the structure of the shed.yaml manifest file.
// It mirrors the declaration record: a description, named source inputs,
// and platform-keyed shell outputs.
type Manifest struct {
	Description string              `yaml:"description"`
	Inputs      map[string]InputDTO `yaml:"inputs"`
	Outputs     map[string]ShellDTO `yaml:"outputs"`
}

// InputDTO represents a source reference in the manifest.
type InputDTO struct {
	URL string `yaml:"url"`
	Ref string `yaml:"ref"`
}

// ShellDTO represents a dev shell declaration for one platform.
type ShellDTO struct {
	Packages []PackageDTO `yaml:"packages"`
}

// PackageDTO represents a package specification in the manifest.
type PackageDTO struct {
	Name string   `yaml:"name"`
	With []string `yaml:"with"`
}
