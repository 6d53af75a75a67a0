package domain

import "errors"

// ErrMetadataFetch indicates the PR metadata query failed or returned unusable output.
var ErrMetadataFetch = errors.New("failed to fetch PR metadata")

// ErrMalformedPullRequest indicates the PR metadata is internally inconsistent,
// e.g. a fork PR without a fork owner.
var ErrMalformedPullRequest = errors.New("malformed pull request")

// ErrMissingReport indicates the review agent did not write the expected report file.
var ErrMissingReport = errors.New("review report not found")
