// Package registry queries the tokenized-domain registry's GraphQL API for
// listings, fractional tokens and wallet holdings, and proxies that data to
// the frontend so the API key never leaves the server.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mainalysis/domain-analyzer/internal/metrics"
	"github.com/mainalysis/domain-analyzer/pkg/config"
)

const defaultRequestTimeout = 30 * time.Second

const listingsQuery = `query Listings($take: Int, $skip: Int, $tlds: [String!], $sld: String) {
  listings(take: $take, skip: $skip, tlds: $tlds, sld: $sld) {
    currentPage
    hasNextPage
    hasPreviousPage
    items {
      name
      price
      createdAt
      registrar { name }
      chain { name }
    }
    pageSize
    totalPages
  }
}`

const fractionalTokensQuery = `query FractionalTokens($take: Int) {
  fractionalTokens(take: $take) {
    items {
      address
      boughtOutAt
      boughtOutBy
      boughtOutTxHash
      buyoutPrice
      chain { name }
      currentPrice
      fractionalizedAt
      fractionalizedBy
      fractionalizedTxHash
      graduatedAt
      id
      launchpadAddress
      metadata {
        description
        title
        image
        primaryWebsite
        xLink
        additionalWebsites { name url }
      }
      metadataURI
      name
      params {
        decimals
        finalLaunchpadPrice
        initialLaunchpadPrice
        initialPoolPrice
        initialValuation
        launchEndDate
        launchStartDate
        launchpadData
        launchpadFeeBps
        launchpadSupply
        launchpadType
        metadataURI
        name
        poolFeeBps
        poolSupply
        symbol
        totalSupply
        vestingCliffSeconds
        vestingDurationSeconds
      }
      poolAddress
      status
      vestingWalletAddress
    }
  }
}`

const namesOwnedByQuery = `query NamesOwnedBy($ownedBy: [AddressCAIP10!]) {
  names(ownedBy: $ownedBy) {
    items { name }
  }
}`

// Registry is the query surface exposed to services and handlers.
type Registry interface {
	Listings(ctx context.Context, params ListingsParams) (*ListingsPage, error)
	FractionalTokens(ctx context.Context, take int) ([]FractionalToken, error)
	NamesOwnedBy(ctx context.Context, walletAddress string) ([]WalletDomain, error)
	CheckListed(ctx context.Context, sld, tld string) (bool, error)
}

// Client is a GraphQL-over-HTTP registry client.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	chainID    int64
}

// NewClient creates a registry client from config.
func NewClient(cfg *config.RegistryConfig) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		chainID:    cfg.ChainID,
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitzero"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors,omitzero"`
}

// query executes a GraphQL request and unmarshals the data payload into out.
func (c *Client) query(ctx context.Context, name, query string, variables map[string]any, out any) error {
	jsonBody, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RegistryRequestsTotal.WithLabelValues(name, "error").Inc()
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		metrics.RegistryRequestsTotal.WithLabelValues(name, "error").Inc()
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		metrics.RegistryRequestsTotal.WithLabelValues(name, "error").Inc()
		return fmt.Errorf("registry request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var gqlResp graphqlResponse
	if err := json.Unmarshal(body, &gqlResp); err != nil {
		metrics.RegistryRequestsTotal.WithLabelValues(name, "error").Inc()
		return fmt.Errorf("failed to unmarshal graphql response: %w", err)
	}
	if len(gqlResp.Errors) > 0 {
		metrics.RegistryRequestsTotal.WithLabelValues(name, "error").Inc()
		return fmt.Errorf("graphql request failed: %s", gqlResp.Errors[0].Message)
	}

	metrics.RegistryRequestsTotal.WithLabelValues(name, "ok").Inc()

	if err := json.Unmarshal(gqlResp.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal graphql data: %w", err)
	}
	return nil
}

// Listings returns one page of sale listings.
func (c *Client) Listings(ctx context.Context, params ListingsParams) (*ListingsPage, error) {
	variables := map[string]any{}
	if params.Take > 0 {
		variables["take"] = params.Take
	}
	if params.Skip > 0 {
		variables["skip"] = params.Skip
	}
	if len(params.TLDs) > 0 {
		variables["tlds"] = params.TLDs
	}
	if params.SLD != "" {
		variables["sld"] = params.SLD
	}

	var data struct {
		Listings ListingsPage `json:"listings"`
	}
	if err := c.query(ctx, "listings", listingsQuery, variables, &data); err != nil {
		return nil, err
	}
	return &data.Listings, nil
}

// FractionalTokens returns up to take fractionalized domain tokens.
func (c *Client) FractionalTokens(ctx context.Context, take int) ([]FractionalToken, error) {
	var data struct {
		FractionalTokens struct {
			Items []FractionalToken `json:"items"`
		} `json:"fractionalTokens"`
	}
	if err := c.query(ctx, "fractional_tokens", fractionalTokensQuery, map[string]any{"take": take}, &data); err != nil {
		return nil, err
	}
	return data.FractionalTokens.Items, nil
}

// NamesOwnedBy returns the domains held by a wallet, addressed in CAIP-10
// form (eip155:<chainID>:<address>).
func (c *Client) NamesOwnedBy(ctx context.Context, walletAddress string) ([]WalletDomain, error) {
	caip10 := fmt.Sprintf("eip155:%d:%s", c.chainID, walletAddress)

	var data struct {
		Names struct {
			Items []struct {
				Name string `json:"name"`
			} `json:"items"`
		} `json:"names"`
	}
	if err := c.query(ctx, "names_owned_by", namesOwnedByQuery, map[string]any{"ownedBy": []string{caip10}}, &data); err != nil {
		return nil, err
	}

	domains := make([]WalletDomain, 0, len(data.Names.Items))
	for _, item := range data.Names.Items {
		domains = append(domains, splitDomainName(item.Name))
	}
	return domains, nil
}

// CheckListed reports whether sld.tld currently has an active listing.
func (c *Client) CheckListed(ctx context.Context, sld, tld string) (bool, error) {
	page, err := c.Listings(ctx, ListingsParams{
		SLD:  sld,
		TLDs: []string{strings.TrimPrefix(tld, ".")},
	})
	if err != nil {
		return false, err
	}
	return len(page.Items) > 0, nil
}

// splitDomainName separates a full domain into second-level name and
// extension. Names without a dot default to ".com".
func splitDomainName(name string) WalletDomain {
	dot := strings.IndexByte(name, '.')
	if dot < 0 {
		return WalletDomain{Name: name, Extension: ".com"}
	}
	return WalletDomain{Name: name[:dot], Extension: name[dot:]}
}
