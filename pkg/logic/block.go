package logic

import "github.com/waozixyz/kir"

// UniversalBody is a logic function expressed in the portable statement
// model, transpilable to any target language.
type UniversalBody struct {
	Params     []string
	Statements []Stmt
}

// Function is a named logic function. Exactly one representation is active:
// Universal for portable statement bodies, Sources for raw per-language
// code blocks used by frontends that cannot express their logic
// universally.
type Function struct {
	Name      string
	Universal *UniversalBody
	Sources   map[string]string // language -> code, nil when Universal is set
}

// IsUniversal reports whether the function carries a portable body.
func (f *Function) IsUniversal() bool { return f.Universal != nil }

// EventBinding routes a component event to a handler function. Bindings are
// immutable once created.
type EventBinding struct {
	ComponentID uint32
	Event       kir.EventType
	Handler     string
}

type bindingKey struct {
	id    uint32
	event kir.EventType
}

// Block holds the full logic section of a document: functions plus event
// bindings, with an index for constant-time dispatch. The binding set is
// immutable after load, so the index is built eagerly.
type Block struct {
	order     []string
	functions map[string]*Function
	bindings  []EventBinding
	index     map[bindingKey]string
}

// NewBlock returns an empty logic block.
func NewBlock() *Block {
	return &Block{
		functions: make(map[string]*Function),
		index:     make(map[bindingKey]string),
	}
}

// AddFunction registers a function, replacing any previous one of the same
// name.
func (b *Block) AddFunction(f *Function) {
	if _, ok := b.functions[f.Name]; !ok {
		b.order = append(b.order, f.Name)
	}
	b.functions[f.Name] = f
}

// Function returns the named function, or nil.
func (b *Block) Function(name string) *Function {
	return b.functions[name]
}

// FunctionNames returns function names in registration order.
func (b *Block) FunctionNames() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Bind routes (component, event) to a handler function by name.
func (b *Block) Bind(componentID uint32, event kir.EventType, handler string) {
	b.bindings = append(b.bindings, EventBinding{ComponentID: componentID, Event: event, Handler: handler})
	b.index[bindingKey{componentID, event}] = handler
}

// Bindings returns the binding list in creation order.
func (b *Block) Bindings() []EventBinding {
	out := make([]EventBinding, len(b.bindings))
	copy(out, b.bindings)
	return out
}

// Handler resolves the handler bound to (component, event). The second
// return is false when nothing is bound.
func (b *Block) Handler(componentID uint32, event kir.EventType) (string, bool) {
	h, ok := b.index[bindingKey{componentID, event}]
	return h, ok
}

// Len returns the number of registered functions.
func (b *Block) Len() int { return len(b.order) }

// Empty reports whether the block has neither functions nor bindings.
func (b *Block) Empty() bool { return len(b.order) == 0 && len(b.bindings) == 0 }
