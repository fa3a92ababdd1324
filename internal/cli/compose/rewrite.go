package compose

import (
	"strings"

	"github.com/pirakansa/wpproject/internal/cli/answer"
)

// Rewrite toggles the block of every answered name whose current state
// differs from the answer. Names without a block are ignored.
func (f *File) Rewrite(answers answer.Set) string {
	lines := append([]string(nil), f.lines...)
	toggled := map[string]bool{}
	for _, name := range answers.Names() {
		block, ok := f.Block(name)
		if !ok || toggled[block.Name] {
			continue
		}
		enable := answers[name].Truthy()
		if enable != block.DisabledInSource {
			continue
		}
		toggled[block.Name] = true
		for i := block.StartLine; i <= block.EndLine; i++ {
			if enable {
				lines[i] = strings.TrimPrefix(lines[i], "#")
			} else {
				lines[i] = "#" + lines[i]
			}
		}
	}
	return strings.Join(lines, "\n")
}
