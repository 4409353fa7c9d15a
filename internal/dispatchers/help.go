package dispatchers

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/cobalt/internal/ui/style"
	"github.com/footprint-tools/cobalt/internal/usage"
)

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(line string) string {
	// The command ends at its first placeholder, or at " - " when it takes
	// none. Placeholders are only looked for before the description.
	cmdEnd := len(line)
	if i := strings.Index(line, " - "); i >= 0 {
		cmdEnd = i
	}
	if i := strings.IndexByte(line[:cmdEnd], '<'); i >= 0 {
		cmdEnd = i
	}

	cmd := strings.TrimSpace(line[:cmdEnd])
	rest := strings.TrimSpace(line[cmdEnd:])

	if rest == "" {
		return style.Info(cmd)
	}
	if cmd == "" {
		return style.Muted(rest)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

// HelpText renders a one-line summary per chain.
func HelpText(chains []*Chain) string {
	var out strings.Builder

	out.WriteString(style.Header("COMMANDS"))
	out.WriteString("\n")

	width := 0
	heads := make([]string, len(chains))
	for i, c := range chains {
		heads[i] = chainHead(c)
		width = max(width, len(heads[i]))
	}

	for i, c := range chains {
		pad := strings.Repeat(" ", width-len(heads[i]))
		fmt.Fprintf(&out, "   %s%s  %s\n", formatUsage(heads[i]), pad, c.Terminal().Handler.Description)
	}

	out.WriteString("\nSee 'help <command>' for details on a specific command.\n")
	return out.String()
}

// Help renders the full usage of every command at or below the node
// addressed by line. An empty line lists every command.
func (r *Registry) Help(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return HelpText(r.Chains()), nil
	}

	tokens := strings.Fields(line)
	node, consumed := locate(r.Roots(), tokens)
	if node == nil || consumed < len(tokens) {
		var candidates []*Node
		if node == nil {
			candidates = r.Roots()
		} else {
			candidates = node.Children
		}
		return "", usage.NoMatch(line, FindSimilarCommands(tokens[consumed], candidates, defaultSuggestionsCount)...)
	}

	var out strings.Builder
	for _, c := range r.Chains() {
		if !c.Contains(node) {
			continue
		}
		first, rest, _ := strings.Cut(c.Usage(), "\n")
		out.WriteString(formatUsage(first))
		out.WriteString("\n")
		if rest != "" {
			out.WriteString(style.Muted(rest))
			out.WriteString("\n")
		}
	}
	return out.String(), nil
}

func chainHead(c *Chain) string {
	parts := []string{}
	if c.Name() != "" {
		parts = append(parts, c.Name())
	}
	for _, p := range c.Terminal().Handler.Params {
		parts = append(parts, p.Placeholder())
	}
	return strings.Join(parts, " ")
}
