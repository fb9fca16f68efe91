package schema

import (
	"sort"

	"github.com/jacoelho/xsd"

	"github.com/thoreinstein/xmllint/internal/errors"
)

// Entry is one registered schema.
type Entry struct {
	// Namespace is the schema's targetNamespace. Never empty.
	Namespace string
	// SourcePath is the schema file relative to the run root.
	SourcePath string

	compiled   *xsd.Schema
	compileErr error
}

// NewEntry builds an entry from a compile outcome. Exactly one of compiled
// and compileErr is expected to be set.
func NewEntry(namespace, sourcePath string, compiled *xsd.Schema, compileErr error) *Entry {
	return &Entry{
		Namespace:  namespace,
		SourcePath: sourcePath,
		compiled:   compiled,
		compileErr: compileErr,
	}
}

// Err returns the compile error, if the schema could not be compiled.
func (e *Entry) Err() error {
	return e.compileErr
}

// ValidateFile validates the document at path against the compiled schema.
// An entry that failed to compile reports its compile error for every
// document matched to it.
func (e *Entry) ValidateFile(path string) error {
	if e.compileErr != nil {
		return errors.Mark(
			errors.Wrapf(e.compileErr, "schema %s for %s cannot be applied", e.SourcePath, e.Namespace),
			errors.ErrSchemaLoad,
		)
	}
	if e.compiled == nil {
		return errors.Newf("schema %s for %s is not compiled", e.SourcePath, e.Namespace)
	}
	return e.compiled.ValidateFile(path)
}

// Registry maps target namespaces to schema entries.
type Registry struct {
	entries map[string]*Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// put registers e, returning the entry it replaced, if any.
func (r *Registry) put(e *Entry) *Entry {
	prev := r.entries[e.Namespace]
	r.entries[e.Namespace] = e
	return prev
}

// Lookup returns the entry for namespace.
func (r *Registry) Lookup(namespace string) (*Entry, bool) {
	if r == nil || namespace == "" {
		return nil, false
	}
	e, ok := r.entries[namespace]
	return e, ok
}

// Len returns the number of registered namespaces.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Namespaces returns the registered namespaces, sorted.
func (r *Registry) Namespaces() []string {
	if r == nil {
		return nil
	}
	ns := make([]string, 0, len(r.entries))
	for k := range r.entries {
		ns = append(ns, k)
	}
	sort.Strings(ns)
	return ns
}
