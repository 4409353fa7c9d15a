package descriptor

import "context"

// IndexName marks a child descriptor as the default handler of its enclosing
// group rather than a named subcommand.
const IndexName = "[INDEX]"

// DefaultDescription is rendered for commands and parameters declared
// without a description.
const DefaultDescription = "No description"

// Descriptor is one declared command. Nesting of Children mirrors the
// declared grouping.
type Descriptor struct {
	Name        string
	Description string
	Parameters  []ParameterSpec
	Handler     *Handler
	Children    []*Descriptor
}

// IsIndex reports whether d is the index handler of its parent group.
func (d *Descriptor) IsIndex() bool {
	return d.Name == IndexName
}

// IsGroup reports whether d acts as a container of subcommands.
func (d *Descriptor) IsGroup() bool {
	return len(d.Children) > 0
}

// Describe returns the declared description, or DefaultDescription.
func (d *Descriptor) Describe() string {
	if d.Description == "" {
		return DefaultDescription
	}
	return d.Description
}

// Call carries what a handler receives: the owner passed at registration
// (nil for statically scoped commands) and the converted arguments.
type Call struct {
	Owner any
	Args  Args
}

// SyncFunc completes before returning.
type SyncFunc func(ctx context.Context, call Call) error

// AsyncFunc returns a pending computation. The channel yields at most one
// error; a close without a value means success.
type AsyncFunc func(ctx context.Context, call Call) <-chan error

// Handler is a tagged callable: exactly one of Sync or Async is set.
type Handler struct {
	Sync  SyncFunc
	Async AsyncFunc
}

// Sync wraps fn as a synchronous handler.
func Sync(fn SyncFunc) *Handler {
	return &Handler{Sync: fn}
}

// Async wraps fn as a handler returning a pending computation.
func Async(fn AsyncFunc) *Handler {
	return &Handler{Async: fn}
}

// IsAsync reports whether the handler returns a pending computation.
func (h *Handler) IsAsync() bool {
	return h != nil && h.Async != nil
}
