package keymap

import "slices"

// Resolver answers which action a key triggers in the active contexts.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
}

// NewResolver indexes bindings in order, so a key bound twice resolves to the
// later binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action, len(bindings)),
		keys:    make(map[Action][]string, len(bindings)),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.actions[k] = b.Action
			if !slices.Contains(r.keys[b.Action], k) {
				r.keys[b.Action] = append(r.keys[b.Action], k)
			}
		}
	}
	return r
}

// ForContexts resolves over the bindings of contexts, later contexts taking
// precedence.
func ForContexts(contexts ...string) *Resolver {
	var bindings []Binding
	for _, c := range contexts {
		bindings = append(bindings, ByContext(c)...)
	}
	return NewResolver(bindings)
}

// Resolve returns the action bound to key, or "" when none is.
func (r *Resolver) Resolve(key string) Action { return r.actions[key] }

// KeysFor lists the keys bound to action, without duplicates.
func (r *Resolver) KeysFor(action Action) []string { return r.keys[action] }
