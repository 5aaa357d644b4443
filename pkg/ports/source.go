package ports

import "context"

// SourceLoader retrieves survey documents.
type SourceLoader interface {
	// Load returns the raw document stored under name (e.g. "intro.json").
	// Returns domain.ErrSourceNotFound if it does not exist.
	Load(ctx context.Context, name string) ([]byte, error)
}

// SourceLister is a SourceLoader that can enumerate its documents.
type SourceLister interface {
	SourceLoader

	// List returns the names of all documents, sorted.
	List(ctx context.Context) ([]string, error)
}
