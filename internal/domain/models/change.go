package models

type (
	// Change es el cambio pendiente capturado al inicio de una corrida.
	// Es inmutable una vez capturado.
	Change struct {
		Diff  string
		Files []GitChange
	}

	GitChange struct {
		Path   string
		Status string
	}
)

// IsEmpty reports whether the change carries no diff text at all.
func (c Change) IsEmpty() bool {
	for _, r := range c.Diff {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// Paths returns the changed file paths in order.
func (c Change) Paths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, f := range c.Files {
		paths = append(paths, f.Path)
	}
	return paths
}
