package problems

import "fmt"

// RefKind distinguishes the two mutually-exclusive problem sources.
type RefKind string

const (
	// RefCatalog points at a problem in the compiled-in catalog.
	RefCatalog RefKind = "catalog"
	// RefExternal points at an externally-sourced problem (e.g. a URL slug
	// the user pasted). The app never resolves it beyond the identifier.
	RefExternal RefKind = "external"
)

// Ref identifies the problem an attempt is against.
type Ref struct {
	Kind RefKind
	ID   string
}

// CatalogRef builds a reference to a catalog problem.
func CatalogRef(id string) Ref {
	return Ref{Kind: RefCatalog, ID: id}
}

// ExternalRef builds a reference to an externally-sourced problem.
func ExternalRef(id string) Ref {
	return Ref{Kind: RefExternal, ID: id}
}

// Validate checks structural validity. Catalog membership is a separate
// concern checked by the caller against the catalog.
func (r Ref) Validate() error {
	switch r.Kind {
	case RefCatalog, RefExternal:
	default:
		return fmt.Errorf("invalid problem ref kind: %q", r.Kind)
	}
	if r.ID == "" {
		return fmt.Errorf("problem ref ID is empty")
	}
	return nil
}

// Title returns a display title: the catalog title when known, otherwise
// the raw identifier.
func (r Ref) Title() string {
	if r.Kind == RefCatalog {
		if p, err := Get(r.ID); err == nil {
			return p.Title
		}
	}
	return r.ID
}
