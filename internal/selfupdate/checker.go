// Package selfupdate checks GitHub releases for newer pathdash builds and
// replaces the running binary.
package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/mod/semver"
)

const (
	defaultOwner   = "abhisek"
	defaultRepo    = "pathdash"
	defaultBaseURL = "https://api.github.com"
)

// Checker talks to the release host.
type Checker struct {
	client       *http.Client
	owner        string
	repo         string
	baseURL      string
	execPath     func() (string, error)
	goos, goarch string
}

// Option configures a Checker.
type Option func(*Checker)

// WithBaseURL overrides the GitHub API base URL.
func WithBaseURL(u string) Option {
	return func(c *Checker) { c.baseURL = u }
}

// WithTimeout bounds every HTTP request.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client = &http.Client{Timeout: d} }
}

// WithRepository selects the GitHub owner/repo to query.
func WithRepository(owner, repo string) Option {
	return func(c *Checker) {
		c.owner = owner
		c.repo = repo
	}
}

func withExecPath(fn func() (string, error)) Option {
	return func(c *Checker) { c.execPath = fn }
}

func withPlatform(goos, goarch string) Option {
	return func(c *Checker) {
		c.goos = goos
		c.goarch = goarch
	}
}

// NewChecker creates a Checker for the pathdash releases.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:   &http.Client{Timeout: 30 * time.Second},
		owner:    defaultOwner,
		repo:     defaultRepo,
		baseURL:  defaultBaseURL,
		execPath: os.Executable,
		goos:     runtime.GOOS,
		goarch:   runtime.GOARCH,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type CheckInput struct {
	Version string
}

type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
	UpdateAvailable bool
}

type release struct {
	TagName string  `json:"tag_name"`
	HTMLURL string  `json:"html_url"`
	Assets  []asset `json:"assets"`
}

type asset struct {
	Name string `json:"name"`
	URL  string `json:"browser_download_url"`
}

// Check fetches the latest release and compares it with input.Version.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	if isDevBuild(input.Version) {
		return nil, ErrDevBuild
	}
	rel, err := c.fetchRelease(ctx, "latest")
	if err != nil {
		return nil, err
	}
	return &CheckResult{
		CurrentVersion:  input.Version,
		LatestVersion:   rel.TagName,
		ReleaseURL:      rel.HTMLURL,
		UpdateAvailable: newer(rel.TagName, input.Version),
	}, nil
}

// fetchRelease reads /releases/<which>, where which is "latest" or
// "tags/<tag>". The tag must be a semantic version.
func (c *Checker) fetchRelease(ctx context.Context, which string) (*release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/%s", strings.TrimRight(c.baseURL, "/"), c.owner, c.repo, which)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch release %s: %w", which, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch release %s: HTTP %d", which, resp.StatusCode)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if !semver.IsValid(canonical(rel.TagName)) {
		return nil, fmt.Errorf("release tag %q is not a semantic version", rel.TagName)
	}
	return &rel, nil
}

func newer(tag, current string) bool {
	return semver.Compare(canonical(tag), canonical(current)) > 0
}

// isDevBuild reports whether v identifies a build without a release tag.
func isDevBuild(v string) bool {
	return v == "" || v == "(devel)" || v == "dev" || !semver.IsValid(canonical(v))
}

func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
