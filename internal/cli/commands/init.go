package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pirakansa/wpproject/internal/cli/profile"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a " + profileFileName + " profile template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := profile.Template()
			if err != nil {
				return err
			}
			if err := writeIfNotExists(output, content); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "initialized:", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", profileFileName, "profile path to create")
	return cmd
}

func writeIfNotExists(path string, content []byte) error {
	_, err := os.Stat(path)
	if err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}
