package dispatchers

import (
	"strings"

	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/usage"
)

// Build converts d into a node tree. Handlers are bound to owner.
func Build(d *descriptor.Descriptor, owner any) (*Node, error) {
	return build(d, owner, nil)
}

func build(d *descriptor.Descriptor, owner any, parentPath []string) (*Node, error) {
	if d == nil {
		return nil, usage.Construction("nil command under '%s'", strings.Join(parentPath, " "))
	}
	if strings.TrimSpace(d.Name) == "" {
		return nil, usage.Construction("command without a name under '%s'", strings.Join(parentPath, " "))
	}

	node := newNode(d.Name, d.Describe(), parentPath)

	if d.IsIndex() && d.IsGroup() {
		return nil, usage.Construction("index command '%s' cannot have subcommands", node)
	}

	if !d.IsGroup() {
		if d.Handler == nil {
			return nil, usage.Construction("command '%s' declares neither a handler nor subcommands", node)
		}
		b, err := bind(node, d, owner)
		if err != nil {
			return nil, err
		}
		node.Handler = b
		return node, nil
	}

	if d.Handler != nil {
		b, err := bind(node, d, owner)
		if err != nil {
			return nil, err
		}
		node.Handler = b
	}

	for _, child := range d.Children {
		if child != nil && child.IsIndex() {
			if child.IsGroup() {
				return nil, usage.Construction("index command of '%s' cannot have subcommands", node)
			}
			if node.Handler != nil {
				return nil, usage.Construction("'%s' declares more than one index handler", node)
			}
			if child.Handler == nil {
				return nil, usage.Construction("index command of '%s' has no handler", node)
			}
			b, err := bind(node, child, owner)
			if err != nil {
				return nil, err
			}
			node.Handler = b
			continue
		}

		sub, err := build(child, owner, node.Path)
		if err != nil {
			return nil, err
		}
		if findByKey(node.Children, sub.key) != nil {
			return nil, usage.DuplicateCommand(node.String(), sub.Name)
		}
		node.Children = append(node.Children, sub)
	}

	return node, nil
}

func bind(node *Node, d *descriptor.Descriptor, owner any) (*Binding, error) {
	h := d.Handler
	if (h.Sync == nil) == (h.Async == nil) {
		return nil, usage.Construction("handler of '%s' must be exactly one of sync or async", node)
	}

	if err := validateParams(node, d.Parameters); err != nil {
		return nil, err
	}

	return &Binding{
		Description: d.Describe(),
		Params:      d.Parameters,
		Handler:     h,
		Owner:       owner,
	}, nil
}

func validateParams(node *Node, params []descriptor.ParameterSpec) error {
	seen := make(map[string]bool, len(params))
	for i, p := range params {
		if p.Name == "" {
			return usage.Construction("parameter %d of '%s' has no name", i, node)
		}
		if seen[p.Name] {
			return usage.Construction("parameter '%s' of '%s' is declared twice", p.Name, node)
		}
		seen[p.Name] = true

		if p.Type == descriptor.TypeEnum && (p.Enum == nil || len(p.Enum.Members) == 0) {
			return usage.Construction("enumeration parameter '%s' of '%s' declares no members", p.Name, node)
		}
		if p.Greedy && i != len(params)-1 {
			return usage.Construction("greedy parameter '%s' of '%s' must be the last parameter", p.Name, node)
		}
	}
	return nil
}
