package configure

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pirakansa/wpproject/internal/cli/answer"
	"github.com/pirakansa/wpproject/internal/cli/compose"
	"github.com/pirakansa/wpproject/internal/cli/dotenv"
	"github.com/pirakansa/wpproject/internal/cli/shared"
)

const projectEnv = `PROJECT_NAME=my_wordpress
DB_HOST=mariadb

#MARIADB_TAG=10.4-3.6.8
MARIADB_TAG=10.3-3.6.8

PHP_TAG=7.3-4.13.10
#PHP_TAG=7.2-4.13.10

#REDIS_TAG=5-3.2.1
#REDIS_TAG=4-3.2.1

#POSTGRES_TAG=12-1.9.0
#POSTGRES_TAG=11-1.9.0
`

const projectCompose = `version: "3"

services:
  mariadb:
    image: wodby/mariadb:$MARIADB_TAG

  php:
    image: wodby/wordpress-php:$PHP_TAG

#  redis:
#    image: wodby/redis:$REDIS_TAG

#  postgres:
#    image: wodby/postgres:$POSTGRES_TAG

#  pma:
#    image: phpmyadmin/phpmyadmin

  mailhog:
    image: mailhog/mailhog
`

func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(projectEnv), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, DefaultComposeName), []byte(projectCompose), 0o644); err != nil {
		t.Fatalf("write compose: %v", err)
	}
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestRunAssumeYesRewritesBothFiles(t *testing.T) {
	dir := writeProject(t)
	envPath := filepath.Join(dir, ".env")

	res, err := Run(context.Background(), Options{EnvPath: envPath, AssumeYes: true})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	wantEnv := answer.Set{
		"MARIADB":  answer.Version("10.4-3.6.8"),
		"PHP":      answer.Version("7.3-4.13.10"),
		"REDIS":    answer.Version("5-3.2.1"),
		"POSTGRES": answer.Disabled(),
	}
	if diff := cmp.Diff(wantEnv, res.EnvAnswers); diff != "" {
		t.Fatalf("unexpected env answers (-want +got):\n%s", diff)
	}
	wantServices := answer.Set{"pma": answer.Toggle(true), "mailhog": answer.Toggle(true)}
	if diff := cmp.Diff(wantServices, res.ServiceAnswers); diff != "" {
		t.Fatalf("unexpected service answers (-want +got):\n%s", diff)
	}

	env := dotenv.Parse(readFile(t, envPath))
	if v, _ := env.Active("MARIADB"); v != "10.4-3.6.8" {
		t.Fatalf("expected MARIADB 10.4 active, got %q", v)
	}
	if v, _ := env.Active("REDIS"); v != "5-3.2.1" {
		t.Fatalf("expected REDIS 5 active, got %q", v)
	}

	services := compose.Parse(readFile(t, ComposePathFor(envPath)))
	for name, disabled := range map[string]bool{"mariadb": false, "redis": false, "pma": false, "postgres": true, "mailhog": false} {
		b, ok := services.Block(name)
		if !ok || b.DisabledInSource != disabled {
			t.Fatalf("unexpected %s block: %+v", name, b)
		}
	}
	if res.Env.Outcome != OutcomeUpdated || res.Compose.Outcome != OutcomeUpdated {
		t.Fatalf("unexpected outcomes: env=%s compose=%s", res.Env.Outcome, res.Compose.Outcome)
	}
}

func TestRunEnvAnswerTogglesComposeBlock(t *testing.T) {
	dir := writeProject(t)
	envPath := filepath.Join(dir, ".env")

	_, err := Run(context.Background(), Options{
		EnvPath:   envPath,
		AssumeYes: true,
		Preset: answer.Set{
			"MARIADB":  answer.Disabled(),
			"POSTGRES": answer.Version("12-1.9.0"),
		},
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	text := readFile(t, ComposePathFor(envPath))
	if !strings.Contains(text, "#  mariadb:\n#    image: wodby/mariadb:$MARIADB_TAG\n") {
		t.Fatalf("expected mariadb block disabled:\n%s", text)
	}
	if !strings.Contains(text, "\n  postgres:\n    image: wodby/postgres:$POSTGRES_TAG\n") {
		t.Fatalf("expected postgres block enabled:\n%s", text)
	}
	if !strings.Contains(readFile(t, envPath), "\nPOSTGRES_TAG=12-1.9.0\n#POSTGRES_TAG=11-1.9.0\n") {
		t.Fatalf("expected POSTGRES 12 active in env")
	}
}

func TestRunAssumeYesIsDeterministic(t *testing.T) {
	first := writeProject(t)
	second := writeProject(t)

	for _, dir := range []string{first, second} {
		if _, err := Run(context.Background(), Options{EnvPath: filepath.Join(dir, ".env"), AssumeYes: true}); err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	}
	for _, name := range []string{".env", DefaultComposeName} {
		a := readFile(t, filepath.Join(first, name))
		b := readFile(t, filepath.Join(second, name))
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("%s differs between runs (-first +second):\n%s", name, diff)
		}
	}
}

func TestRunTwiceReportsUnchanged(t *testing.T) {
	dir := writeProject(t)
	envPath := filepath.Join(dir, ".env")

	if _, err := Run(context.Background(), Options{EnvPath: envPath, AssumeYes: true}); err != nil {
		t.Fatalf("first Run returned error: %v", err)
	}
	res, err := Run(context.Background(), Options{
		EnvPath:   envPath,
		AssumeYes: true,
		WriteFile: func(path string, data []byte, perm os.FileMode) error {
			t.Errorf("unchanged file %s should not be written", path)
			return errors.New("unexpected write")
		},
	})
	if err != nil {
		t.Fatalf("second Run returned error: %v", err)
	}
	if res.Env.Outcome != OutcomeUnchanged || res.Compose.Outcome != OutcomeUnchanged {
		t.Fatalf("expected unchanged outcomes, got env=%s compose=%s", res.Env.Outcome, res.Compose.Outcome)
	}
}

func TestRunMissingFileAbortsBeforeWrite(t *testing.T) {
	dir := writeProject(t)
	envPath := filepath.Join(dir, ".env")
	writes := 0

	_, err := Run(context.Background(), Options{
		EnvPath:     envPath,
		ComposePath: filepath.Join(dir, "missing.yml"),
		AssumeYes:   true,
		WriteFile: func(string, []byte, os.FileMode) error {
			writes++
			return nil
		},
	})
	if !errors.Is(err, ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile, got %v", err)
	}
	if writes != 0 {
		t.Fatalf("expected no writes, got %d", writes)
	}
	if readFile(t, envPath) != projectEnv {
		t.Fatalf("env file must be untouched")
	}
}

func TestRunReportsWriteFailureWithPath(t *testing.T) {
	dir := writeProject(t)
	envPath := filepath.Join(dir, ".env")
	composePath := ComposePathFor(envPath)

	_, err := Run(context.Background(), Options{
		EnvPath:   envPath,
		AssumeYes: true,
		WriteFile: func(path string, data []byte, perm os.FileMode) error {
			if path == composePath {
				return os.ErrPermission
			}
			return os.WriteFile(path, data, perm)
		},
	})
	if !errors.Is(err, ErrWriteFailure) || !errors.Is(err, os.ErrPermission) {
		t.Fatalf("expected write failure, got %v", err)
	}
	if !strings.Contains(err.Error(), composePath) {
		t.Fatalf("expected error to name %s, got %v", composePath, err)
	}
	if readFile(t, envPath) == projectEnv {
		t.Fatalf("expected sibling env write to remain applied")
	}
}

func TestRunDryRunDoesNotWrite(t *testing.T) {
	dir := writeProject(t)
	envPath := filepath.Join(dir, ".env")

	res, err := Run(context.Background(), Options{EnvPath: envPath, AssumeYes: true, DryRun: true})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Env.Outcome != OutcomeUpdated {
		t.Fatalf("expected planned update, got %s", res.Env.Outcome)
	}
	if readFile(t, envPath) != projectEnv || readFile(t, ComposePathFor(envPath)) != projectCompose {
		t.Fatalf("dry run must not modify files")
	}
}

func TestRunTimestampBackup(t *testing.T) {
	dir := writeProject(t)
	envPath := filepath.Join(dir, ".env")
	now := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)

	_, err := Run(context.Background(), Options{
		EnvPath:   envPath,
		AssumeYes: true,
		Backup:    shared.BackupTimestamp,
		Now:       func() time.Time { return now },
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got := readFile(t, shared.BackupPath(envPath, now)); got != projectEnv {
		t.Fatalf("unexpected env backup: %q", got)
	}
	if got := readFile(t, shared.BackupPath(ComposePathFor(envPath), now)); got != projectCompose {
		t.Fatalf("unexpected compose backup: %q", got)
	}
}

func TestRunRejectsUnknownBackup(t *testing.T) {
	dir := writeProject(t)
	if _, err := Run(context.Background(), Options{EnvPath: filepath.Join(dir, ".env"), AssumeYes: true, Backup: "weekly"}); err == nil {
		t.Fatalf("expected backup strategy error")
	}
}

func TestCacheFirstLoadWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("#A_TAG=1\nA_TAG=2\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	cache := NewCache()
	first, err := cache.Env(path)
	if err != nil {
		t.Fatalf("Env returned error: %v", err)
	}
	if err := os.WriteFile(path, []byte("A_TAG=3\n"), 0o644); err != nil {
		t.Fatalf("rewrite env: %v", err)
	}
	second, err := cache.Env(path)
	if err != nil {
		t.Fatalf("Env returned error: %v", err)
	}
	if first != second || len(second.Choosable()) != 1 {
		t.Fatalf("expected cached parse to be reused")
	}
	snap, err := cache.Snapshot(path)
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if string(snap.Content) != "#A_TAG=1\nA_TAG=2\n" || snap.Digest != shared.BLAKE3Hex(snap.Content) {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}
