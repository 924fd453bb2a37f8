package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"regexp"
	"strings"
)

// pageSize is requested on the first call of a paginated listing. The
// server-supplied next links carry it forward on their own.
const pageSize = 100

// linkRE matches one relation of a Link response header
var linkRE = regexp.MustCompile(`<([^>]+)>;\s*rel="([^"]+)"`)

// Items lazily walks every page of a collection endpoint and yields each
// element in server order. Iteration ends at the first failed page fetch,
// which is yielded as the final error. A drained or abandoned sequence
// cannot resume: restarting means calling Items again, which begins over
// from the first page.
func Items[T any](ctx context.Context, c *Client, path string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		next := firstPageURL(path)
		for next != "" {
			items, nextURL, err := fetchPage[T](ctx, c, next)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}
			next = nextURL
		}
	}
}

// Collect drains a sequence into a slice, stopping at the first error
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var items []T
	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Take caps a sequence at n items. Errors pass through unchanged, and once
// the cap is reached no further pages are fetched.
func Take[T any](seq iter.Seq2[T, error], n int) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if n <= 0 {
			return
		}
		left := n
		for item, err := range seq {
			if !yield(item, err) {
				return
			}
			if err != nil {
				return
			}
			left--
			if left == 0 {
				return
			}
		}
	}
}

// fetchPage requests one page and decodes its items. A body holding a single
// object instead of a collection is treated as a one-item page.
func fetchPage[T any](ctx context.Context, c *Client, url string) ([]T, string, error) {
	resp, err := c.rest.RequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read page from %s: %w", url, err)
	}

	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		var single T
		if err := json.Unmarshal(body, &single); err != nil {
			return nil, "", fmt.Errorf("failed to decode page from %s: %w", url, err)
		}
		items = []T{single}
	}

	return items, nextPageURL(resp), nil
}

// firstPageURL appends the page size to the initial request path
func firstPageURL(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%sper_page=%d", path, sep, pageSize)
}

// nextPageURL extracts the "next" relation from the response Link header
func nextPageURL(resp *http.Response) string {
	for _, match := range linkRE.FindAllStringSubmatch(resp.Header.Get("Link"), -1) {
		if len(match) > 2 && match[2] == "next" {
			return match[1]
		}
	}
	return ""
}
