package storage

// Store defines the output sink for generated content. This allows
// swapping implementations: a real filesystem store for live runs, a
// logging store for dry runs. Both see identical content, so a dry run
// computes exactly what a live run would write.
type Store interface {
	// WriteFile persists one generated file (markdown or JSON).
	WriteFile(path string, content []byte) error

	// CleanDir removes a previously generated directory tree.
	CleanDir(path string) error

	// Written returns how many files this store has written (or, for a
	// dry run, would have written).
	Written() int
}
