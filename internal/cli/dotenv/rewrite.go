package dotenv

import (
	"strings"

	"github.com/pirakansa/wpproject/internal/cli/answer"
)

// Rewrite returns the text with every answered choosable name toggled. A
// truthy answer activates one entry holding its version, preferring the one
// already active, and comments out every other entry. A falsy answer comments
// out all entries. Names that are unanswered or have a single entry are left
// as they are.
func (f *File) Rewrite(answers answer.Set) string {
	lines := append([]string(nil), f.lines...)
	for _, name := range f.order {
		ans, ok := answers[name]
		if !ok || !f.IsChoosable(name) {
			continue
		}
		selected := -1
		if ans.Truthy() {
			selected = f.selectEntry(name, ans.Version)
		}
		for i, entry := range f.entries[name] {
			if i == selected {
				lines[entry.Line] = uncomment(lines[entry.Line])
				continue
			}
			lines[entry.Line] = comment(lines[entry.Line])
		}
	}
	return strings.Join(lines, "\n")
}

// selectEntry returns the index of the entry to activate for value, or -1.
func (f *File) selectEntry(name, value string) int {
	selected := -1
	for i, entry := range f.entries[name] {
		if entry.Value != value {
			continue
		}
		if entry.IsDefault {
			return i
		}
		if selected < 0 {
			selected = i
		}
	}
	return selected
}

// The indent before a declaration is kept when toggling its marker.
func uncomment(line string) string {
	indent, rest := splitIndent(line)
	return indent + strings.TrimPrefix(rest, "#")
}

func comment(line string) string {
	indent, rest := splitIndent(line)
	if strings.HasPrefix(rest, "#") {
		return line
	}
	return indent + "#" + rest
}

func splitIndent(line string) (string, string) {
	rest := strings.TrimLeft(line, " \t")
	return line[:len(line)-len(rest)], rest
}
