package dispatchers

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/footprint-tools/cobalt/internal/descriptor"
)

// Binding is a handler together with what it needs to be invoked.
type Binding struct {
	Description string
	Params      []descriptor.ParameterSpec
	Handler     *descriptor.Handler
	Owner       any
}

// Node is one element of the command tree. Nodes are immutable once the
// registry that built them has computed their chains.
type Node struct {
	Name        string
	Description string
	Path        []string
	Handler     *Binding
	Children    []*Node

	key        string
	chainsOnce sync.Once
	chains     []*Chain
}

func newNode(name, description string, parentPath []string) *Node {
	path := make([]string, 0, len(parentPath)+1)
	path = append(path, parentPath...)
	path = append(path, name)

	return &Node{
		Name:        name,
		Description: description,
		Path:        path,
		key:         fold(name),
	}
}

// IsIndex reports whether the node is a top-level index command.
func (n *Node) IsIndex() bool {
	return n.Name == descriptor.IndexName
}

// Child returns the child whose name matches name case-insensitively.
func (n *Node) Child(name string) *Node {
	return findByKey(n.Children, fold(name))
}

func (n *Node) String() string {
	return strings.Join(n.Path, " ")
}

func findByKey(nodes []*Node, key string) *Node {
	for _, n := range nodes {
		if n.key == key {
			return n
		}
	}
	return nil
}

// fold maps s to its case-folded form. A Caser is stateful, so each call
// gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
