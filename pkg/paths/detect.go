package paths

import "github.com/arthur-debert/surfreset/pkg/filesystem"

// Status reports whether one table entry exists on disk
type Status struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// Detect checks every table entry against fsys
func (t Table) Detect(fsys filesystem.FS) []Status {
	entries := t.Entries()
	statuses := make([]Status, 0, len(entries))
	for _, e := range entries {
		statuses = append(statuses, Status{
			Name:   e.Name,
			Path:   e.Path,
			Exists: filesystem.Exists(fsys, e.Path),
		})
	}
	return statuses
}
