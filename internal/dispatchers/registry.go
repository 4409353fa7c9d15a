package dispatchers

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/footprint-tools/cobalt/internal/convert"
	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/domain"
	"github.com/footprint-tools/cobalt/internal/log"
	"github.com/footprint-tools/cobalt/internal/usage"
)

// Registry owns a command forest and dispatches lines against it.
//
// Registration (Register, AddConverter) must complete before any dispatch
// begins. Once it has, concurrent Dispatch calls are safe: dispatch only
// reads the tree and the converter list.
type Registry struct {
	roots      []*Node
	converters *convert.Registry
	pipeline   *convert.Pipeline
	logger     domain.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithConverters makes the registry consult converters. The registry
// appends to it on AddConverter.
func WithConverters(converters *convert.Registry) Option {
	return func(r *Registry) {
		r.converters = converters
	}
}

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(logger domain.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{logger: log.NopLogger{}}
	for _, opt := range opts {
		opt(r)
	}
	if r.converters == nil {
		r.converters = convert.NewRegistry()
	}
	r.pipeline = convert.NewPipeline(r.converters)
	return r
}

// Register builds descriptors into new roots whose handlers are bound to
// owner (nil for statically scoped commands). Either every descriptor is
// added or, on a construction error, none is. Chains of the new roots are
// computed before Register returns.
func (r *Registry) Register(owner any, descriptors ...*descriptor.Descriptor) error {
	built := make([]*Node, 0, len(descriptors))
	for _, d := range descriptors {
		node, err := Build(d, owner)
		if err != nil {
			return err
		}
		if findByKey(r.roots, node.key) != nil || findByKey(built, node.key) != nil {
			return usage.DuplicateCommand("", node.Name)
		}
		built = append(built, node)
	}

	for _, node := range built {
		node.Chains()
		r.logger.Debug("registry: registered '%s' (%d commands)", node.Name, len(node.Chains()))
	}
	r.roots = append(r.roots, built...)
	return nil
}

// AddConverter appends c to the converter list at the lowest priority.
func (r *Registry) AddConverter(c convert.Converter) {
	r.converters.Add(c)
}

// Roots returns the top-level nodes in registration order.
func (r *Registry) Roots() []*Node {
	return r.roots
}

// Chains returns every handler-owning chain of every root.
func (r *Registry) Chains() []*Chain {
	var chains []*Chain
	for _, root := range r.roots {
		chains = append(chains, root.Chains()...)
	}
	return chains
}

// Names returns the generated name of every command.
func (r *Registry) Names() []string {
	chains := r.Chains()
	names := make([]string, len(chains))
	for i, c := range chains {
		names[i] = c.Name()
	}
	return names
}

// Usages returns the generated usage block of every command.
func (r *Registry) Usages() []string {
	chains := r.Chains()
	usages := make([]string, len(chains))
	for i, c := range chains {
		usages[i] = c.Usage()
	}
	return usages
}

// Resolve tokenizes line and resolves it to a handler-owning node.
func (r *Registry) Resolve(line string) (Resolution, error) {
	return Resolve(r.roots, Tokenize(line))
}

// Dispatch resolves line and invokes the command it names. It returns
// true once the handler ran to completion. It returns false without error
// when nothing matches or too few arguments were given. Conversion errors
// and errors returned by the handler are returned as is.
func (r *Registry) Dispatch(ctx context.Context, line string) (bool, error) {
	invoked, err := r.run(ctx, line)
	if !invoked && (usage.IsKind(err, usage.ErrNoMatch) || usage.IsKind(err, usage.ErrInsufficientArguments)) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Execute is Dispatch reporting no-match and arity failures as
// *usage.Error instead of false, for callers that show them to a user.
func (r *Registry) Execute(ctx context.Context, line string) error {
	_, err := r.run(ctx, line)
	return err
}

func (r *Registry) run(ctx context.Context, line string) (bool, error) {
	id := uuid.NewString()

	res, err := r.Resolve(line)
	if err != nil {
		r.logger.Debug("dispatch %s: no match for %q", id, line)
		return false, err
	}

	b := res.Node.Handler
	name := strings.Join(res.Matched, " ")
	if required := convert.Arity(b.Params); required > len(res.Args) {
		r.logger.Debug("dispatch %s: '%s' needs %d argument(s), got %d", id, name, required, len(res.Args))
		return false, usage.InsufficientArguments(name, required, len(res.Args))
	}

	args, err := r.pipeline.Convert(b.Params, res.Args)
	if err != nil {
		r.logger.Debug("dispatch %s: '%s' conversion failed: %v", id, name, err)
		return false, err
	}

	r.logger.Debug("dispatch %s: invoking '%s' with %d argument(s)", id, name, len(args))
	if err := Invoke(ctx, b, args); err != nil {
		r.logger.Warn("dispatch %s: '%s' failed: %v", id, name, err)
		return true, err
	}
	return true, nil
}
