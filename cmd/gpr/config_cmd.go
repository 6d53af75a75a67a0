package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/richhaase/gemini-pr-review/internal/config"
	"github.com/richhaase/gemini-pr-review/internal/git"
	"github.com/richhaase/gemini-pr-review/internal/shell"
	"github.com/richhaase/gemini-pr-review/internal/terminal"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gpr configuration",
		Long:  "View, initialize, and validate the .gpr.yaml configuration file and GPR_* environment variables.",
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigValidateCmd())

	return cmd
}

// repoRoot returns the top level of the current git repository.
func repoRoot(ctx context.Context) (string, error) {
	repo, err := git.Open(ctx, shell.NewExecRunner(nil), "")
	if err != nil {
		return "", err
	}
	return repo.Root, nil
}

// loadRepoConfig loads .gpr.yaml from the repository root. Outside a git
// repository there is no config file to load, so an empty result is returned.
func loadRepoConfig(ctx context.Context) (*config.LoadResult, error) {
	root, err := repoRoot(ctx)
	if err != nil {
		return &config.LoadResult{Config: &config.Config{}}, nil
	}
	return config.LoadFromDirWithWarnings(root)
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display resolved configuration",
		Long:  "Show the fully resolved configuration from defaults, config file, and environment variables.",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadRepoConfig(cmd.Context())
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}

			resolved := config.Resolve(result.Config, config.LoadEnvState(), config.FlagState{}, config.Defaults)

			outputDir := resolved.OutputDir
			if outputDir == "" {
				outputDir = "(current directory)"
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Resolved configuration:")
			fmt.Fprintln(w)
			fmt.Fprintf(w, "  %-24s %s\n", "agent:", resolved.Agent)
			fmt.Fprintf(w, "  %-24s %s\n", "output_dir:", outputDir)
			fmt.Fprintf(w, "  %-24s %s\n", "worktree_dir:", resolved.WorktreeDir)
			fmt.Fprintf(w, "  %-24s %s\n", "fork.host:", resolved.ForkHost)
			fmt.Fprintf(w, "  %-24s %s\n", "fork.remote_prefix:", resolved.RemotePrefix)
			fmt.Fprintf(w, "  %-24s %s\n", "review_areas.primary:", resolved.PrimaryArea)
			fmt.Fprintf(w, "  %-24s %s\n", "review_areas.fallback:", resolved.FallbackArea)

			return nil
		},
	}
}

const starterConfig = `# gpr configuration file

# Review agent command; run as "<agent> -y -p <prompt>" (default: gemini)
# agent: gemini

# Directory the review report is moved into (default: current directory)
# output_dir: ""

# Directory under the repository root that holds review worktrees (default: temp)
# worktree_dir: temp

# Fork PRs are fetched from a remote named <remote_prefix><owner>
# with URL git@<host>:<owner>/<repo>.git
# fork:
#   host: github.com
#   remote_prefix: fork-

# The review runs in whichever area has more changed files;
# the fallback wins ties.
# review_areas:
#   primary: cli
#   fallback: webapp
`

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a starter .gpr.yaml file",
		Long:  "Create a commented .gpr.yaml configuration file in the git repository root.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Write to git repo root (same location runtime loading uses)
			root, err := repoRoot(cmd.Context())
			if err != nil {
				return err
			}
			configPath := filepath.Join(root, config.ConfigFileName)

			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("%s already exists; remove it first or edit it directly", configPath)
			}

			if err := os.WriteFile(configPath, []byte(starterConfig), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", configPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s with default settings (commented out).\n", configPath)
			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and environment variables",
		Long:  "Load and validate the config file and environment variables, reporting any warnings or errors.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !terminal.IsStdoutTTY() {
				terminal.DisableColors()
			}
			logger := terminal.NewLoggerTo(cmd.ErrOrStderr())
			var errs []string
			var warnings []string

			// Keep going after a config file error so env var issues are also reported.
			cfg := &config.Config{}
			result, err := loadRepoConfig(cmd.Context())
			if err != nil {
				errs = append(errs, fmt.Sprintf("config file: %v", err))
			} else {
				cfg = result.Config
				warnings = append(warnings, result.Warnings...)
			}

			resolved := config.Resolve(cfg, config.LoadEnvState(), config.FlagState{}, config.Defaults)
			if err := resolved.Validate(); err != nil {
				errs = append(errs, err.Error())
			}

			for _, w := range warnings {
				logger.Logf(terminal.StyleWarning, "Config: %s", w)
			}
			for _, e := range errs {
				logger.Logf(terminal.StyleError, "%s", e)
			}

			if len(errs) > 0 {
				return fmt.Errorf("configuration has %d error(s)", len(errs))
			}

			if len(warnings) > 0 {
				logger.Log("Configuration is valid (with warnings).", terminal.StyleSuccess)
			} else {
				logger.Log("Configuration is valid.", terminal.StyleSuccess)
			}

			return nil
		},
	}
}
