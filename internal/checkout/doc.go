// Package checkout turns a pull request into a local worktree.
//
// It has two steps. Resolver decides which branch reference names the PR's
// changes: the head branch itself for same-repository PRs, or
// "<fork-remote>/<branch>" for fork PRs after registering and fetching the
// fork remote. Manager then makes sure a worktree at a deterministic path
// under the repository root has that reference checked out, either reusing
// an existing directory or recreating it.
//
// Both steps query git for current state (remote list, directory existence)
// on every run instead of remembering anything between runs. Nothing is
// rolled back on failure: a registered remote or a created worktree stays in
// place if a later step fails.
//
// Two concurrent runs for the same branch race on the same worktree path and
// remote name. There is no locking.
package checkout
