package selection

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const allToken = "all"

// Filter is either "all members" or an explicit member set. The zero value
// selects all. An explicit set that grows to cover the whole universe
// collapses back to all, so the two spellings never coexist.
type Filter[T comparable] struct {
	explicit bool
	members  []T
}

func All[T comparable]() Filter[T] {
	return Filter[T]{}
}

// Explicit builds an explicit filter. Duplicates are dropped; an empty call
// yields the explicit empty set, which is distinct from All.
func Explicit[T comparable](members ...T) Filter[T] {
	f := Filter[T]{explicit: true, members: make([]T, 0, len(members))}
	for _, m := range members {
		if !f.Contains(m) {
			f.members = append(f.members, m)
		}
	}
	return f
}

func (f Filter[T]) IsAll() bool {
	return !f.explicit
}

// IsEmpty reports whether the filter is the explicit empty set.
func (f Filter[T]) IsEmpty() bool {
	return f.explicit && len(f.members) == 0
}

func (f Filter[T]) Contains(id T) bool {
	if !f.explicit {
		return true
	}
	for _, m := range f.members {
		if m == id {
			return true
		}
	}
	return false
}

// Members returns the explicit members in selection order, or nil for All.
func (f Filter[T]) Members() []T {
	if !f.explicit {
		return nil
	}
	out := make([]T, len(f.members))
	copy(out, f.members)
	return out
}

// Normalize drops members outside the universe and collapses a full set
// to All.
func (f Filter[T]) Normalize(universe []T) Filter[T] {
	if !f.explicit {
		return f
	}
	kept := make([]T, 0, len(f.members))
	for _, m := range f.members {
		if contains(universe, m) {
			kept = append(kept, m)
		}
	}
	for _, u := range universe {
		if !contains(kept, u) {
			return Explicit(kept...)
		}
	}
	return All[T]()
}

// Toggle flips one member. Removing from All yields the explicit
// complement; adding the last missing member yields All.
func (f Filter[T]) Toggle(id T, universe []T) Filter[T] {
	if !f.explicit {
		if !contains(universe, id) {
			return f
		}
		rest := make([]T, 0, len(universe))
		for _, u := range universe {
			if u != id {
				rest = append(rest, u)
			}
		}
		return Explicit(rest...)
	}

	if f.Contains(id) {
		rest := make([]T, 0, len(f.members))
		for _, m := range f.members {
			if m != id {
				rest = append(rest, m)
			}
		}
		return Explicit(rest...)
	}
	if !contains(universe, id) {
		return f
	}
	return Explicit(append(f.Members(), id)...).Normalize(universe)
}

// Effective resolves the filter against the universe, keeping universe
// order rather than selection order.
func (f Filter[T]) Effective(universe []T) []T {
	out := make([]T, 0, len(universe))
	for _, u := range universe {
		if f.Contains(u) {
			out = append(out, u)
		}
	}
	return out
}

func (f Filter[T]) String() string {
	if !f.explicit {
		return allToken
	}
	return fmt.Sprint(f.members)
}

func (f Filter[T]) MarshalJSON() ([]byte, error) {
	if !f.explicit {
		return json.Marshal(allToken)
	}
	members := f.members
	if members == nil {
		members = []T{}
	}
	return json.Marshal(members)
}

// UnmarshalJSON accepts "all", null (treated as all) or an array.
func (f *Filter[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = All[T]()
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != allToken {
			return fmt.Errorf("invalid filter value %q: expected %q or a list", s, allToken)
		}
		*f = All[T]()
		return nil
	}
	var members []T
	if err := json.Unmarshal(data, &members); err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	*f = Explicit(members...)
	return nil
}

func contains[T comparable](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
