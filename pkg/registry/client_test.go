package registry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mainalysis/domain-analyzer/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.RegistryConfig{
		Endpoint: srv.URL,
		APIKey:   "test-key",
		ChainID:  97476,
	})
}

func decodeGraphQLRequest(t *testing.T, r *http.Request) (string, map[string]any) {
	t.Helper()

	var req struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.Fatalf("failed to decode graphql request: %v", err)
	}
	return req.Query, req.Variables
}

func TestListings_SendsVariablesAndAPIKey(t *testing.T) {
	var gotVars map[string]any
	var gotAPIKey string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("Api-Key")
		_, gotVars = decodeGraphQLRequest(t, r)
		_, _ = w.Write([]byte(`{"data": {"listings": {
			"currentPage": 1,
			"hasNextPage": false,
			"items": [{"name": "example.com", "price": 1.5}],
			"totalPages": 1
		}}}`))
	})

	page, err := c.Listings(context.Background(), ListingsParams{Take: 20, Skip: 40, TLDs: []string{"com"}, SLD: "example"})
	if err != nil {
		t.Fatalf("Listings() failed: %v", err)
	}
	if gotAPIKey != "test-key" {
		t.Fatalf("expected Api-Key header, got %q", gotAPIKey)
	}
	if gotVars["take"] != float64(20) || gotVars["skip"] != float64(40) || gotVars["sld"] != "example" {
		t.Fatalf("unexpected variables: %v", gotVars)
	}
	if len(page.Items) != 1 || page.Items[0].Name != "example.com" {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Items[0].Price != 1.5 {
		t.Fatalf("expected price 1.5, got %v", page.Items[0].Price)
	}
}

func TestListings_OmitsZeroVariables(t *testing.T) {
	var gotVars map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, gotVars = decodeGraphQLRequest(t, r)
		_, _ = w.Write([]byte(`{"data": {"listings": {"items": []}}}`))
	})

	if _, err := c.Listings(context.Background(), ListingsParams{}); err != nil {
		t.Fatalf("Listings() failed: %v", err)
	}
	for _, key := range []string{"take", "skip", "tlds", "sld"} {
		if _, ok := gotVars[key]; ok {
			t.Fatalf("expected %s to be omitted, got %v", key, gotVars)
		}
	}
}

func TestNamesOwnedBy_UsesCAIP10Address(t *testing.T) {
	var gotVars map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, gotVars = decodeGraphQLRequest(t, r)
		_, _ = w.Write([]byte(`{"data": {"names": {"items": [
			{"name": "crypto.xyz"},
			{"name": "bare"}
		]}}}`))
	})

	domains, err := c.NamesOwnedBy(context.Background(), "0xdddddddddddddddddddddddddddddddddddddddd")
	if err != nil {
		t.Fatalf("NamesOwnedBy() failed: %v", err)
	}

	ownedBy := gotVars["ownedBy"].([]any)
	if ownedBy[0] != "eip155:97476:0xdddddddddddddddddddddddddddddddddddddddd" {
		t.Fatalf("unexpected CAIP-10 address: %v", ownedBy[0])
	}

	if len(domains) != 2 {
		t.Fatalf("expected 2 domains, got %d", len(domains))
	}
	if domains[0].Name != "crypto" || domains[0].Extension != ".xyz" {
		t.Fatalf("unexpected split: %+v", domains[0])
	}
	// Names without a dot get the default extension.
	if domains[1].Name != "bare" || domains[1].Extension != ".com" {
		t.Fatalf("unexpected default extension: %+v", domains[1])
	}
}

func TestCheckListed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, vars := decodeGraphQLRequest(t, r)
		if vars["sld"] == "listed" {
			_, _ = w.Write([]byte(`{"data": {"listings": {"items": [{"name": "listed.com"}]}}}`))
			return
		}
		_, _ = w.Write([]byte(`{"data": {"listings": {"items": []}}}`))
	})

	listed, err := c.CheckListed(context.Background(), "listed", ".com")
	if err != nil {
		t.Fatalf("CheckListed() failed: %v", err)
	}
	if !listed {
		t.Fatal("expected listed domain to be reported listed")
	}

	listed, err = c.CheckListed(context.Background(), "unlisted", "com")
	if err != nil {
		t.Fatalf("CheckListed() failed: %v", err)
	}
	if listed {
		t.Fatal("expected unlisted domain to be reported unlisted")
	}
}

func TestQuery_GraphQLErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": null, "errors": [{"message": "rate limited"}]}`))
	})

	if _, err := c.Listings(context.Background(), ListingsParams{}); err == nil {
		t.Fatal("expected graphql errors to surface, got nil")
	}
}

func TestQuery_HTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	if _, err := c.FractionalTokens(context.Background(), 10); err == nil {
		t.Fatal("expected error for 502 response, got nil")
	}
}

func TestSplitDomainName(t *testing.T) {
	cases := []struct {
		in        string
		name      string
		extension string
	}{
		{"example.com", "example", ".com"},
		{"sub.example.xyz", "sub", ".example.xyz"},
		{"bare", "bare", ".com"},
	}
	for _, tc := range cases {
		got := splitDomainName(tc.in)
		if got.Name != tc.name || got.Extension != tc.extension {
			t.Fatalf("splitDomainName(%q) = %+v, want {%s %s}", tc.in, got, tc.name, tc.extension)
		}
	}
}
