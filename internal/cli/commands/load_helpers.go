package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pirakansa/wpproject/internal/cli/answer"
	"github.com/pirakansa/wpproject/internal/cli/configure"
	"github.com/pirakansa/wpproject/internal/cli/profile"
	"github.com/pirakansa/wpproject/internal/cli/shared"
)

const (
	profileFileName    = profile.DefaultFileName
	defaultEnvFileName = ".env"
	defaultProjectDir  = "."
)

// projectPaths resolves the env and compose files of a project directory.
type projectPaths struct {
	dir     string
	env     string
	compose string
}

func resolveProjectPaths(args []string, envFile, composeFile string) projectPaths {
	dir := defaultProjectDir
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}
	if envFile == "" {
		envFile = defaultEnvFileName
	}
	paths := projectPaths{dir: dir, env: joinUnlessAbs(dir, envFile)}
	if composeFile == "" {
		paths.compose = configure.ComposePathFor(paths.env)
	} else {
		paths.compose = joinUnlessAbs(dir, composeFile)
	}
	return paths
}

func joinUnlessAbs(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// loadProfile reads the --profile location, or the project's own profile
// file, falling back to the built-in tables.
func loadProfile(ctx *appContext, dir string) (*profile.Profile, error) {
	var (
		p   *profile.Profile
		err error
	)
	if ctx.profilePath != "" {
		p, err = profile.Load(ctx.profilePath)
	} else {
		p, err = profile.LoadOrDefault(filepath.Join(dir, profileFileName))
	}
	if err != nil {
		return nil, newExitCodeError(shared.ExitConfigError, fmt.Errorf("load profile: %w", err))
	}
	return p, nil
}

func loadPreset(path string) (*answer.File, error) {
	if path == "" {
		return &answer.File{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, newExitCodeError(shared.ExitMissingFile, fmt.Errorf("answers file %s: %w", path, err))
		}
		return nil, err
	}
	f, err := answer.Load(path)
	if err != nil {
		return nil, newExitCodeError(shared.ExitConfigError, fmt.Errorf("load answers: %w", err))
	}
	return f, nil
}
