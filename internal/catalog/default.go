package catalog

import (
	_ "embed"
	"sync"
)

//go:embed catalog.toml
var defaultCatalogTOML []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog. It is parsed once and shared.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(defaultCatalogTOML)
	})
	return defaultCatalog, defaultErr
}

// MustDefault is Default for tests and static initialisation.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadOrDefault loads path when set, otherwise the embedded catalog.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}
