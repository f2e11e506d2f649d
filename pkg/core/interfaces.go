package core

import (
	"context"
	"net/url"

	"github.com/LambdaTest/coverage-bridge/pkg/coverage"
)

// Requests performs authenticated http calls against jenkins
type Requests interface {
	// MakeAPIRequest sends the request and returns the body of a successful response.
	MakeAPIRequest(ctx context.Context, httpMethod, endpoint string, query url.Values, headers map[string]string) ([]byte, error)
}

// CoverageFetcher fetches and builds the coverage report of a job
type CoverageFetcher interface {
	// Fetch returns a nil report with an error when no report could be produced.
	Fetch(ctx context.Context, target *JobTarget) (coverage.Report, error)
}

// Poller refreshes coverage of every watched target
type Poller interface {
	Poll(ctx context.Context) error
}

// SummaryStore exposes the latest summary of every watched target
type SummaryStore interface {
	Snapshot() []*CoverageSummary
}
