package dispatchers

import (
	"strings"

	"github.com/footprint-tools/cobalt/internal/descriptor"
)

// NotFoundUsage is rendered for a chain whose terminal node has no handler.
const NotFoundUsage = "NOT FOUND"

// Chain is the path from a root to a handler-owning node, inclusive.
// Name and usage are rendered once when the chain is created.
type Chain struct {
	nodes []*Node
	name  string
	usage string
}

func newChain(nodes []*Node) *Chain {
	c := &Chain{nodes: nodes}
	c.name = renderName(nodes)
	c.usage = renderUsage(c.name, c.Terminal())
	return c
}

// Nodes returns the path, root first.
func (c *Chain) Nodes() []*Node {
	return c.nodes
}

// Terminal returns the last node of the chain.
func (c *Chain) Terminal() *Node {
	if len(c.nodes) == 0 {
		return nil
	}
	return c.nodes[len(c.nodes)-1]
}

// Name is the fully qualified command name, index segments omitted.
func (c *Chain) Name() string {
	return c.name
}

// Usage is the multi-line usage block of the chain.
func (c *Chain) Usage() string {
	return c.usage
}

// Contains reports whether n lies on the chain.
func (c *Chain) Contains(n *Node) bool {
	for _, node := range c.nodes {
		if node == n {
			return true
		}
	}
	return false
}

// Chains returns one chain per handler-owning node in the subtree rooted at
// n, n's own first, then children in declaration order. The result is
// computed once; the tree must not change afterwards.
func (n *Node) Chains() []*Chain {
	n.chainsOnce.Do(func() {
		n.chains = n.createChains()
	})
	return n.chains
}

func (n *Node) createChains() []*Chain {
	var chains []*Chain

	if n.Handler != nil {
		chains = append(chains, newChain([]*Node{n}))
	}

	for _, child := range n.Children {
		for _, sub := range child.Chains() {
			nodes := make([]*Node, 0, len(sub.nodes)+1)
			nodes = append(nodes, n)
			nodes = append(nodes, sub.nodes...)
			chains = append(chains, newChain(nodes))
		}
	}

	return chains
}

func renderName(nodes []*Node) string {
	segments := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n.Name == descriptor.IndexName {
			continue
		}
		segments = append(segments, n.Name)
	}
	return strings.Join(segments, " ")
}

// renderUsage formats
//
//	name <a> <b?> - description
//		a - description of a
//		b - description of b
func renderUsage(name string, terminal *Node) string {
	if terminal == nil || terminal.Handler == nil {
		return NotFoundUsage
	}

	h := terminal.Handler
	head := make([]string, 0, len(h.Params)+1)
	if name != "" {
		head = append(head, name)
	}
	lines := make([]string, 0, len(h.Params))
	for _, p := range h.Params {
		head = append(head, p.Placeholder())
		lines = append(lines, "\t"+p.Name+" - "+p.Describe())
	}

	var b strings.Builder
	b.WriteString(strings.Join(head, " "))
	b.WriteString(" - ")
	b.WriteString(h.Description)
	for _, line := range lines {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}
