// Package configure runs the parse, ask, and rewrite sequence over a
// project's env and compose files.
package configure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pirakansa/wpproject/internal/cli/answer"
	"github.com/pirakansa/wpproject/internal/cli/profile"
	"github.com/pirakansa/wpproject/internal/cli/shared"
	"github.com/pirakansa/wpproject/internal/cli/survey"
)

const DefaultComposeName = "docker-compose.yml"

var (
	ErrMissingFile  = errors.New("missing input file")
	ErrWriteFailure = errors.New("write failed")
)

// Options controls one configure run.
type Options struct {
	EnvPath string
	// ComposePath defaults to docker-compose.yml next to EnvPath.
	ComposePath string
	AssumeYes   bool
	Profile     *profile.Profile
	Prompter    survey.Prompter
	Preset      answer.Set
	Backup      string
	DryRun      bool
	Now         func() time.Time
	Logger      *slog.Logger
	Cache       *Cache
	WriteFile   func(path string, data []byte, perm os.FileMode) error
}

// Result describes the answers and per-file outcomes of a run.
type Result struct {
	EnvAnswers     answer.Set
	ServiceAnswers answer.Set
	Env            FileResult
	Compose        FileResult
}

// FileResult is the outcome of rewriting one file.
type FileResult struct {
	Path    string
	Outcome string
	Content []byte

	source *Snapshot
}

// ComposePathFor returns the compose file that sits next to envPath.
func ComposePathFor(envPath string) string {
	return filepath.Join(filepath.Dir(envPath), DefaultComposeName)
}

func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.EnvPath == "" {
		return nil, errors.New("env path is required")
	}
	if opts.ComposePath == "" {
		opts.ComposePath = ComposePathFor(opts.EnvPath)
	}
	if opts.Profile == nil {
		p, err := profile.Load("")
		if err != nil {
			return nil, err
		}
		opts.Profile = p
	}
	if opts.Backup == "" {
		opts.Backup = shared.BackupNone
	}
	if !shared.ValidBackup(opts.Backup) {
		return nil, fmt.Errorf("unsupported backup strategy %q", opts.Backup)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Cache == nil {
		opts.Cache = NewCache()
	}
	if opts.WriteFile == nil {
		opts.WriteFile = os.WriteFile
	}
	logger := opts.Logger

	env, err := opts.Cache.Env(opts.EnvPath)
	if err != nil {
		return nil, err
	}
	services, err := opts.Cache.Compose(opts.ComposePath)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed inputs",
		"env", opts.EnvPath, "tags", len(env.Names()), "choosable", len(env.Choosable()),
		"compose", opts.ComposePath, "blocks", len(services.Names()))

	collect := survey.CollectOptions{
		AssumeYes: opts.AssumeYes,
		Prompter:  opts.Prompter,
		Preset:    opts.Preset,
		Profile:   opts.Profile,
	}
	envAnswers, err := survey.CollectEnv(ctx, survey.EnvQuestions(env, opts.Profile), collect)
	if err != nil {
		return nil, err
	}
	serviceAnswers := answer.Set{}
	if q, ok := survey.ServiceQuestion(env, services, opts.Profile); ok {
		serviceAnswers, err = survey.CollectServices(ctx, q, collect)
		if err != nil {
			return nil, err
		}
	}

	envSource, err := opts.Cache.Snapshot(opts.EnvPath)
	if err != nil {
		return nil, err
	}
	composeSource, err := opts.Cache.Snapshot(opts.ComposePath)
	if err != nil {
		return nil, err
	}
	res := &Result{
		EnvAnswers:     envAnswers,
		ServiceAnswers: serviceAnswers,
		Env: FileResult{
			Path:    opts.EnvPath,
			Content: []byte(env.Rewrite(envAnswers)),
			source:  envSource,
		},
		Compose: FileResult{
			Path:    opts.ComposePath,
			Content: []byte(services.Rewrite(answer.Merge(envAnswers, serviceAnswers))),
			source:  composeSource,
		},
	}
	if err := writeResults(ctx, res, opts); err != nil {
		return res, err
	}
	return res, nil
}
