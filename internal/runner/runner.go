// Package runner drives a single PR review from metadata fetch to report relocation.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/richhaase/gemini-pr-review/internal/agent"
	"github.com/richhaase/gemini-pr-review/internal/checkout"
	"github.com/richhaase/gemini-pr-review/internal/config"
	"github.com/richhaase/gemini-pr-review/internal/domain"
	"github.com/richhaase/gemini-pr-review/internal/git"
	"github.com/richhaase/gemini-pr-review/internal/github"
	"github.com/richhaase/gemini-pr-review/internal/review"
	"github.com/richhaase/gemini-pr-review/internal/shell"
	"github.com/richhaase/gemini-pr-review/internal/terminal"
)

// Options are the per-run inputs.
type Options struct {
	PRID                string
	UseExistingWorktree bool
	WorkDir             string // review directory override, relative to the worktree
	RepoDir             string // any directory inside the repository; empty means cwd
}

// Result describes a completed run.
type Result struct {
	PR         *domain.PullRequest
	Worktree   *checkout.Handle
	Selection  review.Selection
	Agent      *agent.Result
	ReportPath string
	Duration   time.Duration
}

// Pipeline runs the review steps in order and stops at the first failure.
// Nothing is rolled back: a registered remote or created worktree stays.
type Pipeline struct {
	config config.ResolvedConfig
	runner shell.Runner
	agent  agent.Agent
	logger *terminal.Logger
}

// New creates a Pipeline.
func New(cfg config.ResolvedConfig, runner shell.Runner, a agent.Agent, logger *terminal.Logger) *Pipeline {
	return &Pipeline{config: cfg, runner: runner, agent: a, logger: logger}
}

// Run reviews PR opts.PRID. A missing report is reported as domain.ErrMissingReport;
// the agent's exit code is logged but never treated as failure.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	res := &Result{}

	repo, err := git.Open(ctx, p.runner, opts.RepoDir)
	if err != nil {
		return nil, err
	}

	p.logger.Step(1, "Fetching PR information...")
	pr, err := github.FetchPullRequest(ctx, p.runner, repo.Root, opts.PRID)
	if err != nil {
		return nil, err
	}
	res.PR = pr
	p.logPullRequest(pr)

	src, err := checkout.SourceFor(pr)
	if err != nil {
		return nil, err
	}

	p.logger.Step(2, "Setting up worktree...")
	resolver := checkout.NewResolver(repo, p.logger)
	resolver.Host = p.config.ForkHost
	resolver.RemotePrefix = p.config.RemotePrefix

	ref, err := resolver.Resolve(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve branch %s: %w", pr.Branch, err)
	}

	manager := checkout.NewManager(repo, p.logger)
	manager.Dir = p.config.WorktreeDir

	handle, err := manager.Prepare(ctx, pr.Branch, ref, opts.UseExistingWorktree)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare worktree: %w", err)
	}
	res.Worktree = handle
	p.logger.Logf(terminal.StyleInfo, "Worktree: %s", handle.Path)

	p.logger.Step(3, "Selecting review directory...")
	res.Selection = review.Select(handle.Path, opts.WorkDir, pr.FilePaths(), p.config.Areas())
	p.logSelection(res.Selection)

	p.logger.Step(4, fmt.Sprintf("Running %s review...", p.agent.Name()))
	prompt := review.BuildPrompt(pr.ID)
	p.logger.Debugf("Prompt:\n%s", prompt)

	p.logger.Rule(p.agent.Name() + " output")
	agentResult, err := p.agent.Review(ctx, res.Selection.Dir, prompt)
	p.logger.Rule("")
	if err != nil {
		return res, err
	}
	res.Agent = agentResult
	if agentResult.ExitCode != 0 {
		p.logger.Logf(terminal.StyleWarning, "%s exited with code %d", p.agent.Name(), agentResult.ExitCode)
	} else {
		p.logger.Logf(terminal.StyleDim, "%s finished in %s", p.agent.Name(), terminal.FormatDuration(agentResult.Duration))
	}

	p.logger.Step(5, "Moving review file...")
	dst, err := review.Relocate(res.Selection.Dir, p.config.OutputDir, pr.ID)
	if err != nil {
		if errors.Is(err, domain.ErrMissingReport) {
			p.logger.Logf(terminal.StyleError, "Review file %s was not created", review.ReportFileName(pr.ID))
		}
		return res, err
	}
	res.ReportPath = dst
	res.Duration = time.Since(start)

	p.logger.Logf(terminal.StyleSuccess, "Review completed and saved to: %s %s(%s)%s",
		dst, terminal.Color(terminal.Dim), terminal.FormatDuration(res.Duration), terminal.Color(terminal.Reset))
	return res, nil
}

func (p *Pipeline) logPullRequest(pr *domain.PullRequest) {
	p.logger.Logf(terminal.StyleInfo, "PR #%s: %s", pr.ID, pr.Title)
	p.logger.Logf(terminal.StyleInfo, "Branch: %s", pr.Branch)
	if pr.IsFork {
		p.logger.Log("PR is from a fork", terminal.StyleInfo)
	} else {
		p.logger.Log("PR is from the same repository", terminal.StyleInfo)
	}
	p.logger.Logf(terminal.StyleDim, "Changed files: %d", len(pr.Files))
}

func (p *Pipeline) logSelection(s review.Selection) {
	if s.Override {
		p.logger.Logf(terminal.StyleInfo, "Using specified work directory: %s", s.Wanted)
	} else {
		areas := p.config.Areas()
		p.logger.Logf(terminal.StyleInfo, "Changes in %s/: %d", areas.Primary, s.Counts.Primary)
		p.logger.Logf(terminal.StyleInfo, "Changes in %s/: %d", areas.Fallback, s.Counts.Fallback)
		p.logger.Logf(terminal.StyleInfo, "Auto-selected work directory: %s", s.Wanted)
	}

	if s.FellBack {
		p.logger.Logf(terminal.StyleWarning, "Directory %s not found, using worktree root", s.Wanted)
	}
	p.logger.Logf(terminal.StyleInfo, "Review directory: %s", s.Dir)
}
