package service

import "strings"

// Vocabulary is the run-scoped category accumulator: seeded from persisted
// folder names at run start and union-extended with every category the model
// emits, so later notes in the same run see categories invented for earlier
// ones. It never shrinks during a run and is rebuilt fresh each run.
type Vocabulary struct {
	order []string
	seen  map[string]bool
}

func NewVocabulary(seed []string) *Vocabulary {
	v := &Vocabulary{
		seen: make(map[string]bool, len(seed)),
	}
	for _, name := range seed {
		v.Add(name)
	}
	return v
}

// Add inserts a category name; duplicates are absorbed (set semantics) so
// the model re-emitting an existing category is a no-op.
func (v *Vocabulary) Add(name string) {
	if name == "" || v.seen[name] {
		return
	}
	v.seen[name] = true
	v.order = append(v.order, name)
}

func (v *Vocabulary) Contains(name string) bool {
	return v.seen[name]
}

// Names returns the categories in insertion order.
func (v *Vocabulary) Names() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

// Joined renders the vocabulary for prompt substitution.
func (v *Vocabulary) Joined() string {
	return strings.Join(v.order, ", ")
}

func (v *Vocabulary) Len() int {
	return len(v.order)
}
