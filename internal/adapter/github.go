package adapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/MKhiriev/algo-sync/internal/config"
	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/models"
)

type githubAdapter struct {
	apiURL  *url.URL
	webURL  string
	branch  string
	timeout time.Duration

	limiter *RateLimiter
	logger  *logger.Logger
}

// NewGitHubAdapter constructs a [RepositoryAdapter] for the GitHub REST API
// at cfg.GitHubAPIURL. The limiter is shared across all calls.
func NewGitHubAdapter(cfg config.Adapter, limiter *RateLimiter, logger *logger.Logger) (RepositoryAdapter, error) {
	raw := cfg.GitHubAPIURL
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}

	apiURL, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid github api url: %w", err)
	}

	branch := cfg.Branch
	if branch == "" {
		branch = "HEAD"
	}

	return &githubAdapter{
		apiURL:  apiURL,
		webURL:  strings.TrimRight(cfg.GitHubWebURL, "/"),
		branch:  branch,
		timeout: cfg.RequestTimeout,
		limiter: limiter,
		logger:  logger,
	}, nil
}

// session builds a client authenticated with token. Clients are per call so a
// token never outlives the sync run that decrypted it.
func (g *githubAdapter) session(ctx context.Context, token string) *gh.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	hc := oauth2.NewClient(ctx, ts)
	hc.Timeout = g.timeout

	client := gh.NewClient(hc)
	client.BaseURL = g.apiURL
	return client
}

func (g *githubAdapter) ListTree(ctx context.Context, repo models.RepositoryRef, token string) ([]models.TreeItem, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %w", ErrRepositoryUnavailable, err)
	}

	tree, resp, err := g.session(ctx, token).Git.GetTree(ctx, repo.Owner, repo.Name, g.branch, true)
	g.observe(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRepositoryUnavailable, repo, mapGitHubError(err))
	}

	if tree.GetTruncated() {
		g.logger.Warn().
			Str("repository", repo.String()).
			Int("entries", len(tree.Entries)).
			Msg("repository tree listing truncated upstream")
	}

	items := make([]models.TreeItem, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		items = append(items, models.TreeItem{
			Path:       entry.GetPath(),
			Kind:       entry.GetType(),
			ContentRef: entry.GetSHA(),
			URL:        entry.GetURL(),
			Size:       entry.GetSize(),
		})
	}

	return items, nil
}

func (g *githubAdapter) FetchContent(ctx context.Context, repo models.RepositoryRef, item models.TreeItem, token string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limit wait: %w", ErrContentUnavailable, err)
	}

	blob, resp, err := g.session(ctx, token).Git.GetBlob(ctx, repo.Owner, repo.Name, item.ContentRef)
	g.observe(resp)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrContentUnavailable, item.Path, mapGitHubError(err))
	}

	raw, err := decodeBlob(blob)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrContentUnavailable, item.Path, err)
	}

	return strings.ToValidUTF8(string(raw), "\uFFFD"), nil
}

func (g *githubAdapter) SourceURL(repo models.RepositoryRef, path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return fmt.Sprintf("%s/%s/%s/blob/%s/%s",
		g.webURL, repo.Owner, repo.Name, url.PathEscape(g.branch), strings.Join(segments, "/"))
}

func (g *githubAdapter) observe(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	g.limiter.UpdateFromResponse(resp.Response)
}

func decodeBlob(blob *gh.Blob) ([]byte, error) {
	switch blob.GetEncoding() {
	case "base64":
		content := strings.ReplaceAll(blob.GetContent(), "\n", "")
		return base64.StdEncoding.DecodeString(content)
	case "utf-8", "":
		return []byte(blob.GetContent()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, blob.GetEncoding())
	}
}

