package automate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
)

// ErrNoTitle is returned when a page has no title element.
var ErrNoTitle = errors.New("could not find the page title")

var titlePattern = regexp.MustCompile(`(?is)<title>(.*?)</title>`)

// maxPageSize bounds how much of a page is read to find its title.
const maxPageSize = 4 << 20

// FetchTitle performs an HTTP GET on 'addr' and returns the page title.
func (r *Runner) FetchTitle(ctx context.Context, addr string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return "", fmt.Errorf("cannot create request for %q: %w", addr, err)
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", fmt.Errorf("cannot read %q: %w", addr, err)
	}
	return ParseTitle(string(body))
}

// ParseTitle returns the trimmed content of the first title element in 'page'.
func ParseTitle(page string) (string, error) {
	m := titlePattern.FindStringSubmatch(page)
	if m == nil {
		return "", ErrNoTitle
	}
	return strings.TrimSpace(m[1]), nil
}

// Scrape fetches the title of the target page and saves it to the title file.
func (r *Runner) Scrape(ctx context.Context) error {
	r.section("3. Web Scraping")
	fmt.Fprintf(r.Out, "Target URL: %s\n", r.Config.TargetURL)

	title, err := r.FetchTitle(ctx, r.Config.TargetURL)
	if errors.Is(err, ErrNoTitle) {
		fmt.Fprintln(r.Out, "Could not find the page title.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "Scraped Title: '%s'\n", title)

	content := fmt.Sprintf("URL: %s\nTitle: %s\n", r.Config.TargetURL, title)
	if err := os.WriteFile(r.Config.TitleFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("cannot save title: %w", err)
	}
	fmt.Fprintf(r.Out, "Title saved to: '%s'\n", r.Config.TitleFile)
	return nil
}
