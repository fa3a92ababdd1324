package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pirakansa/wpproject/internal/cli/configure"
	"github.com/pirakansa/wpproject/internal/cli/dotenv"
	"github.com/pirakansa/wpproject/internal/cli/shared"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type composeServices struct {
	Services map[string]struct {
		Image string `yaml:"image"`
	} `yaml:"services"`
}

type tagStatus struct {
	name    string
	active  string
	options []string
}

type serviceStatus struct {
	name    string
	enabled bool
	image   string
}

func newStatusCmd(ctx *appContext) *cobra.Command {
	opts := configureCommandOptions{}
	cmd := &cobra.Command{
		Use:   "status [project-dir]",
		Short: "Show the active image tags and compose services",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := resolveProjectPaths(args, opts.envFile, opts.composeFile)
			tags, services, err := projectStatus(configure.NewCache(), paths)
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), tags, services)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.envFile, "env", defaultEnvFileName, "env file, relative to the project dir")
	cmd.Flags().StringVar(&opts.composeFile, "compose", "", "compose file (default: docker-compose.yml next to the env file)")
	return cmd
}

// projectStatus reports active values as docker-compose would see them: the
// env file through godotenv and the compose file through a YAML decode, so
// commented-out lines never count.
func projectStatus(cache *configure.Cache, paths projectPaths) ([]tagStatus, []serviceStatus, error) {
	env, err := cache.Env(paths.env)
	if err != nil {
		return nil, nil, err
	}
	envSource, err := cache.Snapshot(paths.env)
	if err != nil {
		return nil, nil, err
	}
	values, err := godotenv.Unmarshal(string(envSource.Content))
	if err != nil {
		return nil, nil, newExitCodeError(shared.ExitConfigError, fmt.Errorf("parse %s: %w", paths.env, err))
	}

	blocks, err := cache.Compose(paths.compose)
	if err != nil {
		return nil, nil, err
	}
	composeSource, err := cache.Snapshot(paths.compose)
	if err != nil {
		return nil, nil, err
	}
	var decoded composeServices
	if err := yaml.Unmarshal(composeSource.Content, &decoded); err != nil {
		return nil, nil, newExitCodeError(shared.ExitConfigError, fmt.Errorf("parse %s: %w", paths.compose, err))
	}
	images := map[string]string{}
	for name, svc := range decoded.Services {
		images[strings.ToLower(name)] = svc.Image
	}

	tags := make([]tagStatus, 0, len(env.Choosable()))
	for _, name := range env.Choosable() {
		st := tagStatus{name: name, active: values[name+dotenv.TagSuffix]}
		for _, entry := range env.Entries(name) {
			st.options = append(st.options, entry.Value)
		}
		tags = append(tags, st)
	}
	services := make([]serviceStatus, 0, len(blocks.Names()))
	for _, name := range blocks.Names() {
		image, enabled := images[name]
		services = append(services, serviceStatus{name: name, enabled: enabled, image: image})
	}
	return tags, services, nil
}

func printStatus(w io.Writer, tags []tagStatus, services []serviceStatus) {
	fmt.Fprintln(w, "tags:")
	for _, t := range tags {
		active := t.active
		if active == "" {
			active = "disabled"
		}
		fmt.Fprintf(w, "  %s: %s [%s]\n", t.name, active, strings.Join(t.options, " "))
	}
	fmt.Fprintln(w, "services:")
	for _, s := range services {
		if !s.enabled {
			fmt.Fprintf(w, "  %s: disabled\n", s.name)
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", s.name, s.image)
	}
}
