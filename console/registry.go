package console

import "errors"

// DefaultCapacity is the number of commands a registry holds unless told otherwise.
const DefaultCapacity = 64

var (
	ErrRegistryFull     = errors.New("console registry: full")
	ErrEmptyKeyword     = errors.New("console registry: empty keyword")
	ErrNilCallback      = errors.New("console registry: nil callback")
	ErrDuplicateKeyword = errors.New("console registry: duplicate keyword")
)

// Callback receives the remainder of the input line after the keyword.
type Callback func(args string)

// Entry is one registered command.
type Entry struct {
	Keyword     string
	Description string
	Callback    Callback
}

// Registry is an ordered, fixed-capacity list of commands.
//
// Keywords are matched byte-for-byte. Unless the registry was created with
// unique keywords, several entries may share a keyword and all of them fire.
type Registry struct {
	entries  []Entry
	capacity int
	unique   bool
}

// NewRegistry returns an empty registry. capacity <= 0 selects DefaultCapacity.
func NewRegistry(capacity int) *Registry {
	return newRegistry(capacity, false)
}

// NewUniqueRegistry is like NewRegistry but rejects duplicate keywords.
func NewUniqueRegistry(capacity int) *Registry {
	return newRegistry(capacity, true)
}

func newRegistry(capacity int, unique bool) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Registry{capacity: capacity, unique: unique}
}

// Register appends a command. On error the registry is left unchanged.
func (r *Registry) Register(keyword string, cb Callback, description string) error {
	if keyword == "" {
		return ErrEmptyKeyword
	}
	if cb == nil {
		return ErrNilCallback
	}
	if len(r.entries) >= r.capacity {
		return ErrRegistryFull
	}
	if r.unique && len(r.LookupAll(keyword)) > 0 {
		return ErrDuplicateKeyword
	}
	r.entries = append(r.entries, Entry{Keyword: keyword, Description: description, Callback: cb})
	return nil
}

// LookupAll returns the callbacks registered under keyword in registration order.
func (r *Registry) LookupAll(keyword string) []Callback {
	var out []Callback
	for _, e := range r.entries {
		if e.Keyword == keyword {
			out = append(out, e.Callback)
		}
	}
	return out
}

// ForEach calls fn for every entry in registration order.
func (r *Registry) ForEach(fn func(Entry)) {
	for _, e := range r.entries {
		fn(e)
	}
}

func (r *Registry) Len() int { return len(r.entries) }
func (r *Registry) Cap() int { return r.capacity }
