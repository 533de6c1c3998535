package pg

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/mainalysis/domain-analyzer/pkg/analysis"
	"github.com/mainalysis/domain-analyzer/pkg/analysis/store"
	"github.com/mainalysis/domain-analyzer/pkg/credit"
	creditstore "github.com/mainalysis/domain-analyzer/pkg/credit/store"
	creditpg "github.com/mainalysis/domain-analyzer/pkg/credit/store/pg"
	"github.com/mainalysis/domain-analyzer/pkg/pgutil"
	mghelper "github.com/mainalysis/domain-analyzer/pkg/pgutil/migrations"
	"github.com/mainalysis/domain-analyzer/pkg/valuation"
)

const testAccount = "0xcccccccccccccccccccccccccccccccccccccccc"

func setupStore(t *testing.T) (context.Context, store.Store, creditstore.Store) {
	t.Helper()
	requireDockerAccess(t)

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	err := mghelper.CreateSchema(ctx, db,
		&AnalyzedDomainDao{}, &HistoryDao{},
		&creditpg.BalanceDao{}, &creditpg.TransactionDao{},
	)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	// The upsert in ChargeAndSave targets this index.
	err = mghelper.CreateCompositeUniqueIndex(ctx, db, (*AnalyzedDomainDao)(nil),
		"idx_analyzed_domains_account_domain", "account_id", "domain_name")
	if err != nil {
		t.Fatalf("failed to create composite index: %v", err)
	}

	credits := creditpg.NewStore(db)
	return ctx, NewStore(db, credits), credits
}

func requireDockerAccess(t *testing.T) {
	t.Helper()

	candidates := []string{
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	}

	for _, sock := range candidates {
		if sock == "" {
			continue
		}
		if _, err := os.Stat(sock); err != nil {
			continue
		}
		conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", sock)
		if err == nil {
			_ = conn.Close()
			return
		}
	}

	t.Skip("docker daemon socket is not accessible; skipping testcontainer-backed analysis store tests")
}

func testRecord(domainName, price string) *analysis.Record {
	return &analysis.Record{
		AccountID:  testAccount,
		DomainName: domainName,
		Price:      price,
		Data: &valuation.AnalysisData{
			ValueHistory: []valuation.ValuePoint{{Month: "2024-01", Value: 1000}},
			TrafficData:  []valuation.TrafficPoint{{Month: "Jan", Visits: 500}},
			SEOMetrics:   []valuation.SEOMetric{{Label: "Domain Authority", Score: 40, Max: 100}},
			MarketScore:  75,
			Summary:      "solid",
		},
	}
}

func TestChargeAndSave_DebitsAndCaches(t *testing.T) {
	ctx, s, credits := setupStore(t)

	if err := credits.AddCredits(ctx, testAccount, 10, "", nil); err != nil {
		t.Fatalf("AddCredits() failed: %v", err)
	}

	rec := testRecord("example.com", "2000000000000000000")
	err := s.ChargeAndSave(ctx, rec, 3, "New Analysis - example.com", nil)
	if err != nil {
		t.Fatalf("ChargeAndSave() failed: %v", err)
	}

	got, err := s.GetAnalysis(ctx, testAccount, "example.com")
	if err != nil {
		t.Fatalf("GetAnalysis() failed: %v", err)
	}
	if got.Price != "2000000000000000000" {
		t.Fatalf("unexpected price: %s", got.Price)
	}
	if got.Data.MarketScore != 75 {
		t.Fatalf("analysis data did not round-trip: %+v", got.Data)
	}

	balance, err := credits.GetBalance(ctx, testAccount)
	if err != nil {
		t.Fatalf("GetBalance() failed: %v", err)
	}
	if balance.Balance != 7 {
		t.Fatalf("expected balance 7, got %d", balance.Balance)
	}
}

func TestChargeAndSave_InsufficientCredits_LeavesNoRow(t *testing.T) {
	ctx, s, credits := setupStore(t)

	if err := credits.AddCredits(ctx, testAccount, 1, "", nil); err != nil {
		t.Fatalf("AddCredits() failed: %v", err)
	}

	err := s.ChargeAndSave(ctx, testRecord("example.com", ""), 3, "New Analysis", nil)
	if !errors.Is(err, credit.ErrInsufficientCredits) {
		t.Fatalf("expected ErrInsufficientCredits, got %v", err)
	}

	if _, err := s.GetAnalysis(ctx, testAccount, "example.com"); !errors.Is(err, store.ErrAnalysisNotFound) {
		t.Fatalf("expected rollback to leave no cached row, got %v", err)
	}

	balance, err := credits.GetBalance(ctx, testAccount)
	if err != nil {
		t.Fatalf("GetBalance() failed: %v", err)
	}
	if balance.Balance != 1 {
		t.Fatalf("expected untouched balance 1, got %d", balance.Balance)
	}
}

func TestChargeAndSave_UpsertReplacesExistingRow(t *testing.T) {
	ctx, s, credits := setupStore(t)

	if err := credits.AddCredits(ctx, testAccount, 10, "", nil); err != nil {
		t.Fatalf("AddCredits() failed: %v", err)
	}

	if err := s.ChargeAndSave(ctx, testRecord("example.com", "1000000000000000000"), 3, "", nil); err != nil {
		t.Fatalf("first ChargeAndSave() failed: %v", err)
	}
	if err := s.ChargeAndSave(ctx, testRecord("example.com", "4000000000000000000"), 3, "", nil); err != nil {
		t.Fatalf("second ChargeAndSave() failed: %v", err)
	}

	got, err := s.GetAnalysis(ctx, testAccount, "example.com")
	if err != nil {
		t.Fatalf("GetAnalysis() failed: %v", err)
	}
	if got.Price != "4000000000000000000" {
		t.Fatalf("expected the upsert to replace the price, got %s", got.Price)
	}
}

func TestGetAnalysis_NotFound(t *testing.T) {
	ctx, s, _ := setupStore(t)

	if _, err := s.GetAnalysis(ctx, testAccount, "missing.com"); !errors.Is(err, store.ErrAnalysisNotFound) {
		t.Fatalf("expected ErrAnalysisNotFound, got %v", err)
	}
}

func TestHistory_RoundTrip(t *testing.T) {
	ctx, s, _ := setupStore(t)

	for _, domainName := range []string{"first.com", "second.com", "third.com"} {
		err := s.RecordHistory(ctx, &analysis.HistoryEntry{
			AccountID:  testAccount,
			DomainName: domainName,
			Price:      "1000000000000000000",
		})
		if err != nil {
			t.Fatalf("RecordHistory(%s) failed: %v", domainName, err)
		}
	}

	entries, err := s.ListHistory(ctx, testAccount, 2)
	if err != nil {
		t.Fatalf("ListHistory() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID == "" || entries[0].AnalyzedAt.IsZero() {
		t.Fatalf("expected populated id and timestamp, got %+v", entries[0])
	}
}
