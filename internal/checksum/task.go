package checksum

import "slices"

// Task pairs one input path with its digest. Digest is nil until the owning
// worker hashes the file, and stays nil if that fails in lenient mode.
type Task struct {
	Path   string
	Digest []byte
}

// Hashed reports whether the task received a digest.
func (t Task) Hashed() bool {
	return t.Digest != nil
}

// NewTasks builds the task list for paths, sorted ascending byte-wise.
// Duplicate paths are kept; each input line yields one task.
func NewTasks(paths []string) []Task {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)
	tasks := make([]Task, len(sorted))
	for i, p := range sorted {
		tasks[i] = Task{Path: p}
	}
	return tasks
}
