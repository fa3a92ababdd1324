package answer

import (
	"os"

	"gopkg.in/yaml.v3"
)

const FileVersion = "v1"

// File is the on-disk form of a saved answer run.
type File struct {
	Version  string `yaml:"version"`
	Env      Set    `yaml:"env"`
	Services Set    `yaml:"services"`
}

// All returns env and service answers as one set.
func (f *File) All() Set {
	return Merge(f.Env, f.Services)
}

// Load reads a saved answer file. A missing file yields an empty File.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{Version: FileVersion, Env: Set{}, Services: Set{}}, nil
		}
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	normalize(&f)
	return &f, nil
}

// Save writes f to path.
func Save(path string, f *File) error {
	normalize(f)
	b, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func normalize(f *File) {
	if f.Version == "" {
		f.Version = FileVersion
	}
	if f.Env == nil {
		f.Env = Set{}
	}
	if f.Services == nil {
		f.Services = Set{}
	}
}
