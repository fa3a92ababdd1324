package profile

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	pkgprofile "github.com/pirakansa/wpproject/pkg/profile"
	"gopkg.in/yaml.v3"
)

// Load reads a profile from a local path or an http(s) URL. An empty location
// returns the built-in default profile.
func Load(location string) (*Profile, error) {
	if location == "" {
		p := pkgprofile.Default()
		pkgprofile.NormalizeProfile(p)
		return p, nil
	}
	content, err := readProfile(location)
	if err != nil {
		return nil, err
	}
	return Decode(content)
}

// LoadOrDefault is Load, except that a missing local file falls back to the
// default profile.
func LoadOrDefault(location string) (*Profile, error) {
	p, err := Load(location)
	if errors.Is(err, os.ErrNotExist) {
		return Load("")
	}
	return p, err
}

// Decode parses and validates profile YAML.
func Decode(content []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(content, &p); err != nil {
		return nil, err
	}
	pkgprofile.NormalizeProfile(&p)
	if err := pkgprofile.ValidateProfile(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Template renders the default profile as YAML for `wpproject init`.
func Template() ([]byte, error) {
	return yaml.Marshal(pkgprofile.Default())
}

func readProfile(location string) ([]byte, error) {
	if pkgprofile.IsRemoteLocation(location) {
		return readRemoteProfile(location)
	}
	return os.ReadFile(location)
}

func readRemoteProfile(location string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("load profile failed: %s status=%d", location, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
