package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/vitalvas/navi/router"
)

var (
	// ErrEmptyRoute is returned for an entry without templates or handlers.
	ErrEmptyRoute = errors.New("manifest: route needs at least one pattern and one handler")

	// ErrUnknownHandler is returned by Validate for a handler name missing
	// from the registry.
	ErrUnknownHandler = errors.New("manifest: unknown handler")
)

// Manifest is a decoded route manifest.
type Manifest struct {
	Routes []Entry `yaml:"routes"`
}

// Entry binds one or more templates to a chain of named handlers.
type Entry struct {
	// Pattern is a single template. It is combined with Patterns.
	Pattern  string   `yaml:"pattern,omitempty"`
	Patterns []string `yaml:"patterns,omitempty"`
	Handlers []string `yaml:"handlers"`
}

// Templates returns Pattern followed by Patterns.
func (e Entry) Templates() []string {
	out := make([]string, 0, len(e.Patterns)+1)
	if e.Pattern != "" {
		out = append(out, e.Pattern)
	}
	return append(out, e.Patterns...)
}

// Refs returns the handler chain as named references.
func (e Entry) Refs() []router.HandlerRef {
	return router.Names(e.Handlers...)
}

// Decode reads a manifest from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return &m, nil
		}
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}

	for i, e := range m.Routes {
		if len(e.Templates()) == 0 || len(e.Handlers) == 0 {
			return nil, fmt.Errorf("%w (entry %d)", ErrEmptyRoute, i)
		}
	}

	return &m, nil
}

// Parse decodes a manifest held in memory.
func Parse(data []byte) (*Manifest, error) {
	return Decode(bytes.NewReader(data))
}

// Load reads and decodes the manifest file at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Names returns the distinct handler names the manifest references, in
// first-use order.
func (m *Manifest) Names() []string {
	var out []string
	for _, e := range m.Routes {
		for _, name := range e.Handlers {
			if !slices.Contains(out, name) {
				out = append(out, name)
			}
		}
	}
	return out
}

// Validate reports every referenced handler name missing from reg.
func (m *Manifest) Validate(reg *router.Registry) error {
	var err error
	for _, name := range m.Names() {
		if _, ok := reg.Lookup(name); !ok {
			err = multierr.Append(err, fmt.Errorf("%w: %q", ErrUnknownHandler, name))
		}
	}
	return err
}

// Apply registers every entry on d in manifest order. All failing entries
// are reported together.
func (m *Manifest) Apply(d *router.Dispatcher) error {
	var err error
	for _, e := range m.Routes {
		err = multierr.Append(err, d.RouteAll(e.Templates(), e.Refs()...))
	}
	return err
}

// Marshal encodes the manifest as YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	return yaml.Marshal(m)
}

// FromDispatcher builds a manifest from the routes of d whose chains hold
// only named handlers. Routes with direct handlers are skipped.
func FromDispatcher(d *router.Dispatcher) *Manifest {
	m := &Manifest{}
	for _, route := range d.Routes() {
		refs := route.Handlers()
		names := make([]string, 0, len(refs))
		for _, ref := range refs {
			if !ref.IsNamed() {
				names = nil
				break
			}
			names = append(names, ref.Name())
		}
		if len(names) == 0 {
			continue
		}

		pattern := route.Pattern()
		if pattern == "" {
			pattern = "/"
		}
		m.Routes = append(m.Routes, Entry{Pattern: pattern, Handlers: names})
	}
	return m
}
