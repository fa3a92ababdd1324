// Package compose locates top-level service blocks in a docker-compose file
// and comments or uncomments them as whole line spans.
package compose

import (
	"regexp"
	"strings"
)

var blockStart = regexp.MustCompile(`^(#?)\s\s([^\s:]+):`)

// Block is the line span of one service declaration.
type Block struct {
	Name             string
	DisabledInSource bool
	StartLine        int
	EndLine          int
}

// File is a parsed compose text. Lines are never mutated after Parse.
type File struct {
	lines  []string
	order  []string
	blocks map[string]Block
}

// Parse records every service block. A block runs from its key line to the
// line before the next empty line. A key line met while a block is still open
// is folded into that block; adjacent services need a blank line between them
// to be told apart.
func Parse(text string) *File {
	f := &File{
		lines:  strings.Split(text, "\n"),
		blocks: map[string]Block{},
	}

	var open *Block
	closeOpen := func(end int) {
		if open == nil {
			return
		}
		open.EndLine = end
		if _, dup := f.blocks[open.Name]; !dup {
			f.order = append(f.order, open.Name)
		}
		f.blocks[open.Name] = *open
		open = nil
	}

	for index, line := range f.lines {
		if open != nil {
			if line == "" {
				closeOpen(index - 1)
			}
			continue
		}
		m := blockStart.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		open = &Block{
			Name:             strings.ToLower(m[2]),
			DisabledInSource: m[1] == "#",
			StartLine:        index,
		}
	}
	closeOpen(len(f.lines) - 1)

	return f
}

// Names returns block names in file order.
func (f *File) Names() []string {
	return append([]string(nil), f.order...)
}

// Block looks up a block by name, ignoring case.
func (f *File) Block(name string) (Block, bool) {
	b, ok := f.blocks[strings.ToLower(name)]
	return b, ok
}

// Text returns the parsed text unchanged.
func (f *File) Text() string {
	return strings.Join(f.lines, "\n")
}
