package commands

import (
	"fmt"
	"io"

	"github.com/pirakansa/wpproject/internal/cli/answer"
	"github.com/pirakansa/wpproject/internal/cli/configure"
	"github.com/pirakansa/wpproject/internal/cli/shared"
	"github.com/pirakansa/wpproject/internal/cli/survey"
	"github.com/spf13/cobra"
)

type configureCommandOptions struct {
	envFile     string
	composeFile string
	yes         bool
	answersPath string
	saveAnswers string
	backup      string
	dryRun      bool
}

func newConfigureCmd(ctx *appContext) *cobra.Command {
	opts := configureCommandOptions{}

	cmd := &cobra.Command{
		Use:   "configure [project-dir]",
		Short: "Choose image tags and services, then rewrite .env and docker-compose.yml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigureWithOptions(cmd, ctx, args, opts)
		},
	}
	addProjectFlags(cmd, &opts)
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", ctx.settings.AssumeYes, "accept defaults without prompting")
	cmd.Flags().StringVar(&opts.saveAnswers, "save-answers", "", "write the final answers to this YAML file")
	cmd.Flags().StringVar(&opts.backup, "backup", ctx.settings.Backup, "backup before overwrite: none|timestamp")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "resolve answers without writing files")
	return cmd
}

func addProjectFlags(cmd *cobra.Command, opts *configureCommandOptions) {
	cmd.Flags().StringVar(&opts.envFile, "env", defaultEnvFileName, "env file, relative to the project dir")
	cmd.Flags().StringVar(&opts.composeFile, "compose", "", "compose file (default: docker-compose.yml next to the env file)")
	cmd.Flags().StringVar(&opts.answersPath, "answers", "", "preset answers YAML")
}

func runConfigureWithOptions(cmd *cobra.Command, ctx *appContext, args []string, opts configureCommandOptions) error {
	if opts.backup != "" && !shared.ValidBackup(opts.backup) {
		return newExitCodeError(shared.ExitConfigError, fmt.Errorf("unsupported backup strategy %q", opts.backup))
	}
	paths := resolveProjectPaths(args, opts.envFile, opts.composeFile)
	p, err := loadProfile(ctx, paths.dir)
	if err != nil {
		return err
	}
	preset, err := loadPreset(opts.answersPath)
	if err != nil {
		return err
	}

	res, err := configure.Run(cmd.Context(), configure.Options{
		EnvPath:     paths.env,
		ComposePath: paths.compose,
		AssumeYes:   opts.yes,
		Profile:     p,
		Prompter: &survey.HuhPrompter{
			Input:      cmd.InOrStdin(),
			Output:     cmd.ErrOrStderr(),
			// Piped input gets huh's line-based accessible mode.
			Accessible: !shared.IsTerminal(cmd.InOrStdin()),
		},
		Preset: preset.All(),
		Backup: opts.backup,
		DryRun: opts.dryRun,
		Logger: ctx.log(),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.dryRun {
		printAnswers(out, res)
	}
	printOutcomes(out, res, opts.dryRun)

	if opts.saveAnswers != "" {
		if err := answer.Save(opts.saveAnswers, &answer.File{Env: res.EnvAnswers, Services: res.ServiceAnswers}); err != nil {
			return newExitCodeError(shared.ExitWriteFailed, fmt.Errorf("save answers: %w", err))
		}
		ctx.log().Info("saved answers", "path", opts.saveAnswers)
	}
	if !opts.dryRun {
		printNextSteps(out, paths.dir)
	}
	return nil
}

func printAnswers(w io.Writer, res *configure.Result) {
	fmt.Fprintln(w, "tags:")
	for _, name := range res.EnvAnswers.Names() {
		fmt.Fprintf(w, "  %s: %s\n", name, res.EnvAnswers[name])
	}
	fmt.Fprintln(w, "services:")
	for _, name := range res.ServiceAnswers.Names() {
		fmt.Fprintf(w, "  %s: %s\n", name, res.ServiceAnswers[name])
	}
}

func printOutcomes(w io.Writer, res *configure.Result, dryRun bool) {
	suffix := ""
	if dryRun {
		suffix = " (dry-run)"
	}
	for _, fr := range []configure.FileResult{res.Env, res.Compose} {
		fmt.Fprintf(w, "%s: %s%s\n", fr.Outcome, fr.Path, suffix)
	}
}

func printNextSteps(w io.Writer, dir string) {
	fmt.Fprintln(w, "next steps:")
	if dir != defaultProjectDir {
		fmt.Fprintf(w, "  cd %s\n", dir)
	}
	fmt.Fprintln(w, "  composer install")
	fmt.Fprintln(w, "  docker-compose up -d")
}
