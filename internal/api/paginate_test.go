package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

// rewriteTransport sends every request to the test server regardless of the
// host the client resolved.
type rewriteTransport struct {
	scheme string
	host   string
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.URL.Scheme = t.scheme
	r.URL.Host = t.host
	return http.DefaultTransport.RoundTrip(r)
}

// newTestClient returns a Client whose requests all land on the given server
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	serverURL, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("parsing test server URL: %v", err)
	}

	client, err := NewClient("test-token", WithTransport(rewriteTransport{
		scheme: serverURL.Scheme,
		host:   serverURL.Host,
	}))
	if err != nil {
		t.Fatalf("NewClient() unexpected error: %v", err)
	}
	return client
}

type pageItem struct {
	Login string `json:"login"`
}

func logins(items []pageItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Login)
	}
	return names
}

func TestItemsFollowsNextLink(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/orgs/test-org/members" {
			t.Errorf("request path = %q, want %q", r.URL.Path, "/orgs/test-org/members")
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "":
			if got := r.URL.Query().Get("per_page"); got != "100" {
				t.Errorf("first page per_page = %q, want %q", got, "100")
			}
			w.Header().Set("Link", `<https://api.github.com/orgs/test-org/members?per_page=100&page=2>; rel="next"`)
			fmt.Fprint(w, `[{"login":"alice"},{"login":"bob"}]`)
		case "2":
			fmt.Fprint(w, `[{"login":"carol"}]`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	}))
	defer server.Close()

	client := newTestClient(t, server)

	items, err := Collect(Items[pageItem](context.Background(), client, "orgs/test-org/members"))
	if err != nil {
		t.Fatalf("Collect() unexpected error: %v", err)
	}

	if got, want := strings.Join(logins(items), ","), "alice,bob,carol"; got != want {
		t.Errorf("collected logins = %q, want %q", got, want)
	}
	if requests != 2 {
		t.Errorf("requests = %d, want 2", requests)
	}
}

func TestItemsStopsWithoutNextLink(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"login":"alice"}]`)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	items, err := Collect(Items[pageItem](context.Background(), client, "orgs/test-org/members"))
	if err != nil {
		t.Fatalf("Collect() unexpected error: %v", err)
	}
	if len(items) != 1 || requests != 1 {
		t.Errorf("items = %d, requests = %d, want 1 and 1", len(items), requests)
	}
}

func TestItemsYieldsSingleObjectBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"login":"solo"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	items, err := Collect(Items[pageItem](context.Background(), client, "orgs/test-org/members"))
	if err != nil {
		t.Fatalf("Collect() unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Login != "solo" {
		t.Errorf("items = %+v, want single login %q", items, "solo")
	}
}

func TestItemsYieldsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"message":"boom"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	items, err := Collect(Items[pageItem](context.Background(), client, "orgs/test-org/members"))
	if err == nil {
		t.Fatal("Collect() expected an error for a failed page fetch")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("Collect() error = %v, want it to mention status 500", err)
	}
	if items != nil {
		t.Errorf("Collect() items = %+v, want none", items)
	}
}

func TestItemsIsLazy(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Link", `<https://api.github.com/orgs/test-org/members?per_page=100&page=2>; rel="next"`)
		fmt.Fprint(w, `[{"login":"alice"},{"login":"bob"}]`)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	for item, err := range Items[pageItem](context.Background(), client, "orgs/test-org/members") {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Login == "alice" {
			break
		}
	}

	if requests != 1 {
		t.Errorf("requests = %d, want 1 (no page fetched past the break)", requests)
	}
}

func TestTakeStopsFetchingEarly(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Link", `<https://api.github.com/orgs/test-org/members?per_page=100&page=2>; rel="next"`)
		fmt.Fprint(w, `[{"login":"alice"},{"login":"bob"}]`)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	items, err := Collect(Take(Items[pageItem](context.Background(), client, "orgs/test-org/members"), 2))
	if err != nil {
		t.Fatalf("Collect() unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("items = %d, want 2", len(items))
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1 (cap reached before the next page)", requests)
	}
}

func TestTakeZeroYieldsNothing(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := newTestClient(t, server)

	items, err := Collect(Take(Items[pageItem](context.Background(), client, "orgs/test-org/members"), 0))
	if err != nil {
		t.Fatalf("Collect() unexpected error: %v", err)
	}
	if len(items) != 0 || requests != 0 {
		t.Errorf("items = %d, requests = %d, want 0 and 0", len(items), requests)
	}
}

func TestFirstPageURL(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "plain path",
			path: "orgs/test-org/members",
			want: "orgs/test-org/members?per_page=100",
		},
		{
			name: "path with existing query",
			path: "orgs/test-org/members?filter=2fa_disabled",
			want: "orgs/test-org/members?filter=2fa_disabled&per_page=100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstPageURL(tt.path); got != tt.want {
				t.Errorf("firstPageURL(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNextPageURL(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{
			name: "next among other relations",
			link: `<https://api.github.com/orgs/o/members?page=2>; rel="next", <https://api.github.com/orgs/o/members?page=9>; rel="last"`,
			want: "https://api.github.com/orgs/o/members?page=2",
		},
		{
			name: "no header",
			link: "",
			want: "",
		},
		{
			name: "no next relation",
			link: `<https://api.github.com/orgs/o/members?page=1>; rel="prev"`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{Header: http.Header{}}
			if tt.link != "" {
				resp.Header.Set("Link", tt.link)
			}
			if got := nextPageURL(resp); got != tt.want {
				t.Errorf("nextPageURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
