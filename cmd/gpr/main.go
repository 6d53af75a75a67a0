// Package main provides the CLI entry point for gpr, the Gemini PR reviewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/richhaase/gemini-pr-review/internal/agent"
	"github.com/richhaase/gemini-pr-review/internal/config"
	"github.com/richhaase/gemini-pr-review/internal/domain"
	"github.com/richhaase/gemini-pr-review/internal/git"
	"github.com/richhaase/gemini-pr-review/internal/github"
	"github.com/richhaase/gemini-pr-review/internal/review"
	"github.com/richhaase/gemini-pr-review/internal/runner"
	"github.com/richhaase/gemini-pr-review/internal/shell"
	"github.com/richhaase/gemini-pr-review/internal/terminal"
)

var (
	useExistingWorktree bool
	workDir             string
	outputDir           string
	agentCommand        string
	noConfig            bool
	verbose             bool
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Check if this is an exit code wrapper (not a real error)
		if exitErr, ok := err.(exitCodeError); ok {
			return exitErr.code.Int()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return domain.ExitError.Int()
	}

	return domain.ExitSuccess.Int()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gpr <pr-number>",
		Short: "Review a GitHub pull request with Gemini in an isolated worktree",
		Long: `Fetch a pull request, check it out into a dedicated git worktree (adding a
remote for fork PRs), run the gemini CLI against it, and move the
GEMINI_REVIEW_PR<number>.md report into the output directory.

Exit codes:
  0 - Review report saved
  1 - Error
  2 - Agent finished without writing the report
  130 - Interrupted`,
		Args:          cobra.ExactArgs(1),
		RunE:          runReview,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       buildVersionString(),
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Configuration flags (defaults are resolved via config.Resolve with precedence: flag > env > config > default)
	rootCmd.Flags().BoolVar(&useExistingWorktree, "use-existing-worktree", false,
		"Reuse the PR worktree if it already exists instead of recreating it")
	rootCmd.Flags().StringVar(&workDir, "work-dir", "",
		"Directory inside the worktree to run the review in (default: auto-select)")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "",
		"Directory to move the review report into (default: current directory, env: GPR_OUTPUT_DIR)")
	rootCmd.Flags().StringVarP(&agentCommand, "agent", "a", "",
		"Review agent command (default: gemini, env: GPR_AGENT)")
	rootCmd.Flags().BoolVar(&noConfig, "no-config", false,
		"Skip loading .gpr.yaml config file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Print resolved configuration and the agent prompt")

	rootCmd.AddCommand(newConfigCmd())

	setGroupedUsage(rootCmd)

	return rootCmd
}

func runReview(cmd *cobra.Command, args []string) error {
	// Disable colors if stdout is not a TTY
	if !terminal.IsStdoutTTY() {
		terminal.DisableColors()
	}

	logger := terminal.NewLogger()
	logger.SetVerbose(verbose)

	prID, err := review.NormalizeID(args[0])
	if err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return exitCode(domain.ExitError)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(os.Stderr)
			logger.Log("Interrupted, stopping review...", terminal.StyleWarning)
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := github.CheckGHAvailable(); err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return exitCode(domain.ExitError)
	}

	cmdRunner := shell.NewExecRunner(logger.Command)

	repo, err := git.Open(ctx, cmdRunner, "")
	if err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return exitCode(domain.ExitError)
	}

	resolved, err := resolveConfig(cmd, repo.Root, logger)
	if err != nil {
		logger.Logf(terminal.StyleError, "Config error: %v", err)
		return exitCode(domain.ExitError)
	}
	if logger.Verbose() {
		logResolvedConfig(logger, resolved)
	}

	reviewer := agent.NewGeminiAgent(resolved.Agent)
	if err := reviewer.IsAvailable(); err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return exitCode(domain.ExitError)
	}

	pipeline := runner.New(resolved, cmdRunner, reviewer, logger)
	_, err = pipeline.Run(ctx, runner.Options{
		PRID:                prID,
		UseExistingWorktree: useExistingWorktree,
		WorkDir:             workDir,
		RepoDir:             repo.Root,
	})
	if err != nil {
		code := exitCodeFor(ctx, err)
		reportFailure(logger, prID, code, err)
		return exitCode(code)
	}

	return nil
}

// resolveConfig loads .gpr.yaml from the repository root (unless --no-config)
// and applies env vars and explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, repoRoot string, logger *terminal.Logger) (config.ResolvedConfig, error) {
	var cfg *config.Config
	if !noConfig {
		result, err := config.LoadFromDirWithWarnings(repoRoot)
		if err != nil {
			return config.ResolvedConfig{}, err
		}
		cfg = result.Config
		for _, warning := range result.Warnings {
			logger.Logf(terminal.StyleWarning, "%s", warning)
		}
	}

	flagState := config.FlagState{
		AgentSet:     cmd.Flags().Changed("agent"),
		OutputDirSet: cmd.Flags().Changed("output-dir"),
	}
	flagValues := config.ResolvedConfig{
		Agent:     agentCommand,
		OutputDir: outputDir,
	}

	resolved := config.Resolve(cfg, config.LoadEnvState(), flagState, flagValues)
	if err := resolved.Validate(); err != nil {
		return config.ResolvedConfig{}, err
	}
	return resolved, nil
}

func logResolvedConfig(logger *terminal.Logger, r config.ResolvedConfig) {
	out := r.OutputDir
	if out == "" {
		out = "(current directory)"
	}
	logger.Debugf("agent: %s", r.Agent)
	logger.Debugf("output_dir: %s", out)
	logger.Debugf("worktree_dir: %s", r.WorktreeDir)
	logger.Debugf("fork: host=%s remote_prefix=%s", r.ForkHost, r.RemotePrefix)
	logger.Debugf("review_areas: primary=%s fallback=%s", r.PrimaryArea, r.FallbackArea)
}
