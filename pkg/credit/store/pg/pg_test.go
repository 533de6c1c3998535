package pg

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/mainalysis/domain-analyzer/pkg/credit"
	"github.com/mainalysis/domain-analyzer/pkg/credit/store"
	"github.com/mainalysis/domain-analyzer/pkg/pgutil"
	mghelper "github.com/mainalysis/domain-analyzer/pkg/pgutil/migrations"
)

const testAccount = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func setupStore(t *testing.T) (context.Context, store.Store) {
	t.Helper()
	requireDockerAccess(t)

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &BalanceDao{}, &TransactionDao{}, &PackageDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return ctx, NewStore(db)
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

	t.Skip("docker daemon socket is not accessible; skipping testcontainer-backed credit store tests")
}

func TestGetBalance_NoRow_ReadsAsZero(t *testing.T) {
	ctx, s := setupStore(t)

	balance, err := s.GetBalance(ctx, testAccount)
	if err != nil {
		t.Fatalf("GetBalance() failed: %v", err)
	}
	if balance.Balance != 0 || balance.TotalPurchased != 0 || balance.TotalUsed != 0 {
		t.Fatalf("expected zero balance, got %+v", balance)
	}
}

func TestAddCredits_ThenUseCredits_RoundTrip(t *testing.T) {
	ctx, s := setupStore(t)

	if err := s.AddCredits(ctx, testAccount, 100, "Starter package", map[string]any{"order_id": "o-1"}); err != nil {
		t.Fatalf("AddCredits() failed: %v", err)
	}
	if err := s.UseCredits(ctx, testAccount, 30, "New Analysis - example.com", nil); err != nil {
		t.Fatalf("UseCredits() failed: %v", err)
	}

	balance, err := s.GetBalance(ctx, testAccount)
	if err != nil {
		t.Fatalf("GetBalance() failed: %v", err)
	}
	if balance.Balance != 70 {
		t.Fatalf("expected balance 70, got %d", balance.Balance)
	}
	if balance.TotalPurchased != 100 {
		t.Fatalf("expected total purchased 100, got %d", balance.TotalPurchased)
	}
	if balance.TotalUsed != 30 {
		t.Fatalf("expected total used 30, got %d", balance.TotalUsed)
	}
}

func TestAddCredits_UpsertsExistingBalance(t *testing.T) {
	ctx, s := setupStore(t)

	if err := s.AddCredits(ctx, testAccount, 100, "", nil); err != nil {
		t.Fatalf("AddCredits() failed: %v", err)
	}
	if err := s.AddCredits(ctx, testAccount, 500, "", nil); err != nil {
		t.Fatalf("AddCredits() failed: %v", err)
	}

	balance, err := s.GetBalance(ctx, testAccount)
	if err != nil {
		t.Fatalf("GetBalance() failed: %v", err)
	}
	if balance.Balance != 600 {
		t.Fatalf("expected balance 600, got %d", balance.Balance)
	}
	if balance.TotalPurchased != 600 {
		t.Fatalf("expected total purchased 600, got %d", balance.TotalPurchased)
	}
}

func TestUseCredits_InsufficientBalance(t *testing.T) {
	ctx, s := setupStore(t)

	if err := s.AddCredits(ctx, testAccount, 2, "", nil); err != nil {
		t.Fatalf("AddCredits() failed: %v", err)
	}

	err := s.UseCredits(ctx, testAccount, 3, "New Analysis", nil)
	if !errors.Is(err, credit.ErrInsufficientCredits) {
		t.Fatalf("expected ErrInsufficientCredits, got %v", err)
	}

	// The failed debit must leave the ledger untouched.
	balance, err := s.GetBalance(ctx, testAccount)
	if err != nil {
		t.Fatalf("GetBalance() failed: %v", err)
	}
	if balance.Balance != 2 {
		t.Fatalf("expected balance 2 after failed debit, got %d", balance.Balance)
	}
	txs, err := s.ListTransactions(ctx, testAccount, 0)
	if err != nil {
		t.Fatalf("ListTransactions() failed: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction (the purchase), got %d", len(txs))
	}
}

func TestUseCredits_NoBalanceRow(t *testing.T) {
	ctx, s := setupStore(t)

	err := s.UseCredits(ctx, testAccount, 1, "", nil)
	if !errors.Is(err, credit.ErrInsufficientCredits) {
		t.Fatalf("expected ErrInsufficientCredits for a missing row, got %v", err)
	}
}

func TestLedger_RecordsBalanceAfterEachEntry(t *testing.T) {
	ctx, s := setupStore(t)

	if err := s.AddCredits(ctx, testAccount, 100, "Starter package", nil); err != nil {
		t.Fatalf("AddCredits() failed: %v", err)
	}
	if err := s.UseCredits(ctx, testAccount, 3, "New Analysis - example.com", map[string]any{"source": "new_analysis"}); err != nil {
		t.Fatalf("UseCredits() failed: %v", err)
	}

	txs, err := s.ListTransactions(ctx, testAccount, 0)
	if err != nil {
		t.Fatalf("ListTransactions() failed: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}

	// Newest first.
	usage, purchase := txs[0], txs[1]
	if usage.Type != credit.TypeUsage || usage.Amount != 3 || usage.BalanceAfter != 97 {
		t.Fatalf("unexpected usage entry: %+v", usage)
	}
	if usage.Metadata["source"] != "new_analysis" {
		t.Fatalf("expected metadata to round-trip, got %v", usage.Metadata)
	}
	if purchase.Type != credit.TypePurchase || purchase.Amount != 100 || purchase.BalanceAfter != 100 {
		t.Fatalf("unexpected purchase entry: %+v", purchase)
	}
}

func TestListTransactions_RespectsLimit(t *testing.T) {
	ctx, s := setupStore(t)

	if err := s.AddCredits(ctx, testAccount, 10, "", nil); err != nil {
		t.Fatalf("AddCredits() failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		if err := s.UseCredits(ctx, testAccount, 1, "", nil); err != nil {
			t.Fatalf("UseCredits() failed: %v", err)
		}
	}

	txs, err := s.ListTransactions(ctx, testAccount, 2)
	if err != nil {
		t.Fatalf("ListTransactions() failed: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
}

func TestListTransactions_ScopedToAccount(t *testing.T) {
	ctx, s := setupStore(t)
	other := "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

	if err := s.AddCredits(ctx, testAccount, 5, "", nil); err != nil {
		t.Fatalf("AddCredits() failed: %v", err)
	}
	if err := s.AddCredits(ctx, other, 7, "", nil); err != nil {
		t.Fatalf("AddCredits() failed: %v", err)
	}

	txs, err := s.ListTransactions(ctx, other, 0)
	if err != nil {
		t.Fatalf("ListTransactions() failed: %v", err)
	}
	if len(txs) != 1 || txs[0].Amount != 7 {
		t.Fatalf("expected only the other account's entry, got %+v", txs)
	}
}
