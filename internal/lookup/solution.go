package lookup

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

const (
	defaultSearchBaseURL = "https://html.duckduckgo.com/html"
	desktopUserAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	maxCandidates = 10
	maxBodyBytes  = 512 * 1024
)

// solutionDomains are the educational sites a solution link may come
// from. Anything outside this list is discarded.
var solutionDomains = []string{
	"byjus.com",
	"unacademy.com",
	"toppr.com",
	"vedantu.com",
	"mathongo.com",
}

// solutionKeywords mark a page body as an actual solution page rather
// than a landing or error page.
var solutionKeywords = []string{"solution", "answer", "explanation", "jee"}

var (
	linkPattern     = regexp.MustCompile(`https?://[^\s"'<>]+`)
	redirectPattern = regexp.MustCompile(`uddg=([^&"'<>]+)`)
)

// SolutionFinder searches allow-listed educational sites for a textual
// solution page matching a question.
type SolutionFinder struct {
	client        *http.Client
	searchBaseURL string
	domains       []string
}

type SolutionOption func(*SolutionFinder)

func WithSolutionBaseURL(url string) SolutionOption {
	return func(f *SolutionFinder) { f.searchBaseURL = url }
}

func WithSolutionClient(client *http.Client) SolutionOption {
	return func(f *SolutionFinder) { f.client = client }
}

func NewSolutionFinder(opts ...SolutionOption) *SolutionFinder {
	f := &SolutionFinder{
		client:        &http.Client{Timeout: defaultTimeout},
		searchBaseURL: defaultSearchBaseURL,
		domains:       solutionDomains,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FindSolutionLink returns the first allow-listed page whose body looks
// like a solution for the question, or "" when nothing qualifies. All
// network failures along the way degrade to "".
func (f *SolutionFinder) FindSolutionLink(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", nil
	}

	candidates, err := f.search(ctx, question)
	if err != nil || len(candidates) == 0 {
		return "", nil
	}

	for _, candidate := range candidates {
		if f.isSolutionPage(ctx, candidate) {
			return candidate, nil
		}
	}
	return "", nil
}

func (f *SolutionFinder) search(ctx context.Context, question string) ([]string, error) {
	sites := make([]string, len(f.domains))
	for i, domain := range f.domains {
		sites[i] = "site:" + domain
	}
	query := fmt.Sprintf("%s JEE solution %s", question, strings.Join(sites, " OR "))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.searchBaseURL+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", desktopUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	return f.extractCandidates(string(body)), nil
}

// extractCandidates pulls result links out of a search results page.
// Redirect-wrapped targets (uddg= query params) are decoded first so
// the allow-list sees the real destination host.
func (f *SolutionFinder) extractCandidates(body string) []string {
	var links []string
	for _, m := range redirectPattern.FindAllStringSubmatch(body, -1) {
		if target, err := url.QueryUnescape(m[1]); err == nil {
			links = append(links, target)
		}
	}
	links = append(links, linkPattern.FindAllString(body, -1)...)

	seen := make(map[string]bool)
	var candidates []string
	for _, link := range links {
		if seen[link] || !f.allowed(link) {
			continue
		}
		seen[link] = true
		candidates = append(candidates, link)
		if len(candidates) == maxCandidates {
			break
		}
	}
	return candidates
}

func (f *SolutionFinder) allowed(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, domain := range f.domains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

func (f *SolutionFinder) isSolutionPage(ctx context.Context, pageURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", desktopUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return false
	}

	text := strings.ToLower(string(body))
	for _, kw := range solutionKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
