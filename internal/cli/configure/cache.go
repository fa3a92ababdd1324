package configure

import (
	"fmt"
	"os"

	"github.com/pirakansa/wpproject/internal/cli/compose"
	"github.com/pirakansa/wpproject/internal/cli/dotenv"
	"github.com/pirakansa/wpproject/internal/cli/shared"
)

// Snapshot is the content of an input file as first read during a run.
type Snapshot struct {
	Path    string
	Content []byte
	Mode    os.FileMode
	Digest  string
}

// Cache memoizes file snapshots and their parses for one run. The first load
// of a path wins, so parsing and rewriting always see the same text.
type Cache struct {
	readFile  func(string) ([]byte, error)
	snapshots map[string]*Snapshot
	envs      map[string]*dotenv.File
	composes  map[string]*compose.File
}

func NewCache() *Cache {
	return &Cache{
		readFile:  os.ReadFile,
		snapshots: map[string]*Snapshot{},
		envs:      map[string]*dotenv.File{},
		composes:  map[string]*compose.File{},
	}
}

// Snapshot loads path once.
func (c *Cache) Snapshot(path string) (*Snapshot, error) {
	if s, ok := c.snapshots[path]; ok {
		return s, nil
	}
	content, err := c.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingFile, path, err)
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	s := &Snapshot{
		Path:    path,
		Content: content,
		Mode:    mode,
		Digest:  shared.BLAKE3Hex(content),
	}
	c.snapshots[path] = s
	return s, nil
}

// Env parses the env file at path once.
func (c *Cache) Env(path string) (*dotenv.File, error) {
	if f, ok := c.envs[path]; ok {
		return f, nil
	}
	s, err := c.Snapshot(path)
	if err != nil {
		return nil, err
	}
	f := dotenv.Parse(string(s.Content))
	c.envs[path] = f
	return f, nil
}

// Compose parses the compose file at path once.
func (c *Cache) Compose(path string) (*compose.File, error) {
	if f, ok := c.composes[path]; ok {
		return f, nil
	}
	s, err := c.Snapshot(path)
	if err != nil {
		return nil, err
	}
	f := compose.Parse(string(s.Content))
	c.composes[path] = f
	return f, nil
}
