// Package dotenv finds and toggles versioned NAME_TAG=value declarations in
// env-style files without disturbing the surrounding text.
package dotenv

import (
	"regexp"
	"strings"
)

// TagSuffix marks a variable as a versioned image tag.
const TagSuffix = "_TAG"

var tagPattern = regexp.MustCompile(`^(\s*)(#?)([^\s=#]+?)_TAG=(\S+)`)

// Entry is one declared value of a tag variable.
type Entry struct {
	Name      string
	Value     string
	IsDefault bool
	Line      int
}

// File is a parsed env text. Lines are never mutated after Parse.
type File struct {
	lines   []string
	order   []string
	entries map[string][]Entry
}

// Parse scans text for tag declarations. Text without any yields an empty
// File, not an error.
func Parse(text string) *File {
	f := &File{
		lines:   strings.Split(text, "\n"),
		entries: map[string][]Entry{},
	}
	for index, line := range f.lines {
		entry, ok := parseLine(line)
		if !ok {
			continue
		}
		entry.Line = index
		if _, seen := f.entries[entry.Name]; !seen {
			f.order = append(f.order, entry.Name)
		}
		f.entries[entry.Name] = append(f.entries[entry.Name], entry)
	}
	return f
}

func parseLine(line string) (Entry, bool) {
	m := tagPattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	return Entry{
		Name:      m[3],
		Value:     m[4],
		IsDefault: m[2] == "",
	}, true
}

// Names returns every declared name in first-seen order.
func (f *File) Names() []string {
	return append([]string(nil), f.order...)
}

// Entries returns the entries declared for name in file order.
func (f *File) Entries(name string) []Entry {
	return append([]Entry(nil), f.entries[name]...)
}

// Choosable returns the names with more than one entry, in first-seen order.
func (f *File) Choosable() []string {
	var names []string
	for _, name := range f.order {
		if len(f.entries[name]) > 1 {
			names = append(names, name)
		}
	}
	return names
}

// IsChoosable reports whether name has more than one entry.
func (f *File) IsChoosable(name string) bool {
	return len(f.entries[name]) > 1
}

// Active returns the value of the uncommented entry for name, if there is
// exactly one.
func (f *File) Active(name string) (string, bool) {
	var value string
	count := 0
	for _, entry := range f.entries[name] {
		if entry.IsDefault {
			value = entry.Value
			count++
		}
	}
	return value, count == 1
}

// Text returns the parsed text unchanged.
func (f *File) Text() string {
	return strings.Join(f.lines, "\n")
}
