// Package jenkins fetches coverage plugin results from a jenkins server and
// builds them into coverage reports.
package jenkins

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/LambdaTest/coverage-bridge/config"
	"github.com/LambdaTest/coverage-bridge/pkg/core"
	"github.com/LambdaTest/coverage-bridge/pkg/coverage"
	"github.com/LambdaTest/coverage-bridge/pkg/document"
	"github.com/LambdaTest/coverage-bridge/pkg/errs"
	"github.com/LambdaTest/coverage-bridge/pkg/global"
	"github.com/LambdaTest/coverage-bridge/pkg/lumber"
)

var defaultHeaders = map[string]string{"Accept": "application/json"}

// Client reads coverage results of jenkins jobs
type Client struct {
	cfg      *config.Jenkins
	requests core.Requests
	logger   lumber.Logger
}

// New returns a new jenkins client
func New(cfg *config.Jenkins, requests core.Requests, logger lumber.Logger) *Client {
	return &Client{cfg: cfg, requests: requests, logger: logger}
}

// JobURL returns the url under which every job lives
func (c *Client) JobURL() (string, error) {
	if c.cfg.Host == "" {
		return "", errs.ErrInvalidHost
	}
	u, err := url.Parse(c.cfg.BaseURL())
	if err != nil || u.Host == "" {
		return "", errs.ErrInvalidHost
	}
	if path := strings.Trim(c.cfg.Path, "/"); path != "" {
		u = u.JoinPath(path)
	}
	return u.String(), nil
}

// CoverageURL returns the coverage api endpoint of the target
func (c *Client) CoverageURL(target *core.JobTarget) (string, error) {
	if target.Job == "" || target.Provider == "" {
		return "", errs.ErrInvalidURL
	}
	jobURL, err := c.JobURL()
	if err != nil {
		return "", err
	}
	build := global.LastSuccessfulBuild
	if target.Build > 0 {
		build = strconv.Itoa(target.Build)
	}
	elems := []string{target.Job, build}
	elems = append(elems, strings.Split(strings.Trim(target.Provider, "/"), "/")...)
	elems = append(elems, strings.Split(global.APISuffix, "/")...)
	endpoint, err := url.JoinPath(jobURL, elems...)
	if err != nil {
		return "", errs.ErrInvalidURL
	}
	return endpoint, nil
}

// FetchDocument downloads the coverage results of the target as a json document.
// Every provider but jacoco is queried with the target depth.
func (c *Client) FetchDocument(ctx context.Context, target *core.JobTarget) (document.Value, error) {
	endpoint, err := c.CoverageURL(target)
	if err != nil {
		c.logger.Errorf("failed to build coverage url for job %s, error %v", target.Job, err)
		return document.Value{}, err
	}
	var query url.Values
	if target.Provider != core.ProviderJacoco {
		query = url.Values{global.DepthQueryParam: []string{strconv.Itoa(target.Depth)}}
	}
	body, err := c.requests.MakeAPIRequest(ctx, http.MethodGet, endpoint, query, defaultHeaders)
	if err != nil {
		c.logger.Errorf("failed to fetch coverage of job %s, error %v", target.Job, err)
		return document.Value{}, err
	}
	doc, err := document.Parse(body)
	if err != nil {
		c.logger.Errorf("invalid coverage document for job %s, error %v", target.Job, err)
		return document.Value{}, err
	}
	return doc, nil
}

// CoberturaCoverage fetches the tree report of the target. A response without
// a results object yields errs.ErrNoReport, while an empty results object is
// still a report.
func (c *Client) CoberturaCoverage(ctx context.Context, target *core.JobTarget) (*coverage.TreeReport, error) {
	doc, err := c.FetchDocument(ctx, target)
	if err != nil {
		return nil, err
	}
	report, err := buildTree(doc)
	if err != nil {
		c.logger.Warnf("no cobertura results for job %s", target.Job)
		return nil, err
	}
	return report, nil
}

// JacocoCoverage fetches the flat report of the target.
func (c *Client) JacocoCoverage(ctx context.Context, target *core.JobTarget) (*coverage.FlatReport, error) {
	doc, err := c.FetchDocument(ctx, target)
	if err != nil {
		return nil, err
	}
	report, err := buildFlat(doc)
	if err != nil {
		c.logger.Warnf("no jacoco results for job %s", target.Job)
		return nil, err
	}
	return report, nil
}

// Fetch returns the report of the target according to its provider.
func (c *Client) Fetch(ctx context.Context, target *core.JobTarget) (coverage.Report, error) {
	doc, err := c.FetchDocument(ctx, target)
	if err != nil {
		return nil, err
	}
	report, err := BuildReport(target.Provider, doc)
	if err != nil {
		c.logger.Warnf("no %s results for job %s", target.Provider, target.Job)
		return nil, err
	}
	return report, nil
}

// BuildReport builds a coverage api response of provider into a report.
// Providers other than jacoco are read as tree reports.
func BuildReport(provider string, doc document.Value) (coverage.Report, error) {
	if provider == core.ProviderJacoco {
		report, err := buildFlat(doc)
		if err != nil {
			return nil, err
		}
		return report, nil
	}
	report, err := buildTree(doc)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func buildTree(doc document.Value) (*coverage.TreeReport, error) {
	results := doc.Get(global.ResultsKey)
	if !results.IsObject() {
		return nil, errs.ErrNoReport
	}
	return coverage.BuildTree(results), nil
}

func buildFlat(doc document.Value) (*coverage.FlatReport, error) {
	if !doc.IsObject() {
		return nil, errs.ErrNoReport
	}
	return coverage.BuildFlat(doc), nil
}
