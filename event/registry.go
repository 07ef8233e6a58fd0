package event

import (
	"sort"
	"strings"

	"github.com/lixenwraith/personform/engine"
)

// Kind classifies a declaration
type Kind uint8

const (
	KindEvent      Kind = iota // Event with a state handler
	KindDialog                 // Event with a text/number dialog and result stream
	KindUI                     // Event with a custom GUI system
	KindAggregator             // Tagged union fanned out to other streams
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindDialog:
		return "dialog"
	case KindUI:
		return "ui"
	case KindAggregator:
		return "aggregator"
	default:
		return "event"
	}
}

// Registry records every declaration made on an app, in declaration order
type Registry struct {
	names []string
	kinds map[string]Kind
}

// registryOf returns the app registry, creating the resource on first use
func registryOf(w *engine.World) *Registry {
	if r, ok := engine.GetResource[*Registry](w.Resources); ok {
		return r
	}
	r := &Registry{kinds: make(map[string]Kind)}
	engine.AddResource(w.Resources, r)
	return r
}

// RegistryOf returns the declarations made on the world so far
func RegistryOf(w *engine.World) *Registry {
	return registryOf(w)
}

// register maps a name to its kind; duplicate names panic
func (r *Registry) register(name string, kind Kind) {
	if name == "" {
		panic("event declaration without a name")
	}
	if _, dup := r.kinds[name]; dup {
		panic("event declared twice: " + name)
	}
	r.names = append(r.names, name)
	r.kinds[name] = kind
}

// Declared returns declaration names in order
func (r *Registry) Declared() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Kind returns the kind of a declaration
func (r *Registry) Kind(name string) (Kind, bool) {
	k, ok := r.kinds[name]
	return k, ok
}

// String lists declarations grouped by kind, for startup logs
func (r *Registry) String() string {
	byKind := make(map[Kind][]string)
	for _, n := range r.names {
		byKind[r.kinds[n]] = append(byKind[r.kinds[n]], n)
	}
	kinds := make([]Kind, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	var b strings.Builder
	for i, k := range kinds {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k.String())
		b.WriteString(": ")
		b.WriteString(strings.Join(byKind[k], ", "))
	}
	return b.String()
}
