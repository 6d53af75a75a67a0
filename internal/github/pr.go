// Package github provides GitHub PR operations via the gh CLI.
package github

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/richhaase/gemini-pr-review/internal/domain"
	"github.com/richhaase/gemini-pr-review/internal/shell"
)

// ErrNoPRFound indicates no pull request exists for the given identifier.
var ErrNoPRFound = errors.New("no pull request found")

// ErrAuthFailed indicates GitHub authentication failed.
var ErrAuthFailed = errors.New("GitHub authentication failed")

// prViewFields are the gh pr view JSON fields gpr consumes.
const prViewFields = "headRefName,title,files,isCrossRepository,headRepositoryOwner"

// FetchPullRequest queries gh for the metadata of PR id.
// All failures wrap domain.ErrMetadataFetch.
func FetchPullRequest(ctx context.Context, runner shell.Runner, dir, id string) (*domain.PullRequest, error) {
	out, err := runner.Run(ctx, dir, "gh", "pr", "view", id, "--json", prViewFields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMetadataFetch, classifyGHError(err))
	}
	return ParsePullRequest(id, []byte(out))
}

// ParsePullRequest decodes gh pr view JSON output.
func ParsePullRequest(id string, data []byte) (*domain.PullRequest, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: gh returned invalid JSON", domain.ErrMetadataFetch)
	}

	fields := gjson.GetManyBytes(data,
		"headRefName", "title", "isCrossRepository", "headRepositoryOwner.login", "files.#.path")

	branch := fields[0].String()
	if branch == "" {
		return nil, fmt.Errorf("%w: response has no headRefName", domain.ErrMetadataFetch)
	}

	pr := &domain.PullRequest{
		ID:        id,
		Branch:    branch,
		Title:     fields[1].String(),
		IsFork:    fields[2].Bool(),
		ForkOwner: fields[3].String(),
	}
	for _, p := range fields[4].Array() {
		pr.Files = append(pr.Files, domain.ChangedFile{Path: p.String()})
	}

	return pr, nil
}

// classifyGHError maps gh stderr to ErrNoPRFound / ErrAuthFailed where possible,
// keeping the original command error in the chain.
func classifyGHError(err error) error {
	var cmdErr *shell.CommandError
	if !errors.As(err, &cmdErr) {
		return fmt.Errorf("gh command failed: %w", err)
	}

	var exitErr *exec.ExitError
	if !errors.As(cmdErr, &exitErr) {
		return err
	}

	stderr := strings.ToLower(cmdErr.Output)

	if strings.Contains(stderr, "no pull requests found") ||
		strings.Contains(stderr, "could not resolve to a pullrequest") {
		return fmt.Errorf("%w: %w", ErrNoPRFound, err)
	}

	if strings.Contains(stderr, "401") ||
		strings.Contains(stderr, "gh auth login") ||
		strings.Contains(stderr, "credentials") {
		return fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	return err
}

// CheckGHAvailable returns an error if the gh CLI is not on PATH.
func CheckGHAvailable() error {
	if _, err := exec.LookPath("gh"); err != nil {
		return fmt.Errorf("gh CLI not available: %w", err)
	}
	return nil
}
