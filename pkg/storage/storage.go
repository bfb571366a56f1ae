package storage

//go:generate mockery --name Storage --output ./mocks --outpkg mocks

// Storage defines the root interface for the entire data layer.
// It composes all available storage operations. Components should depend on the
// more granular interfaces (ApiStore, Committer, etc.) instead of this one.
type Storage interface {
	ApiStore
	Committer
	CatalogWriter
}
