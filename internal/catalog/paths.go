package catalog

import "path/filepath"

// Paths holds the input locations for one validation run. The tool reads
// fixed relative locations; there is no path configuration surface.
type Paths struct {
	Catalog string
	Schema  string
	IconDir string
}

// PathsIn returns the conventional input locations under root.
func PathsIn(root string) Paths {
	return Paths{
		Catalog: filepath.Join(root, "config.json"),
		Schema:  filepath.Join(root, "config.schema.json"),
		IconDir: filepath.Join(root, "icons"),
	}
}

// DefaultPaths returns the input locations relative to the working directory.
func DefaultPaths() Paths {
	return PathsIn(".")
}
