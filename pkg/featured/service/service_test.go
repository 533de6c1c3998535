package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	apperrors "github.com/mainalysis/domain-analyzer/pkg/app/errors"
	"github.com/mainalysis/domain-analyzer/pkg/featured"
)

func TestGet_EmptyDateReturnsLatest(t *testing.T) {
	latestCalled := false
	storeMock := &MockStore{
		GetLatestFunc: func(context.Context) (*featured.Domain, error) {
			latestCalled = true
			return &featured.Domain{ID: "id-1", DomainName: "example.com"}, nil
		},
	}

	svc := NewService(storeMock, zap.NewNop())
	dom, err := svc.Get(context.Background(), "")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !latestCalled {
		t.Fatal("expected GetLatest to be used for an empty date")
	}
	if dom.DomainName != "example.com" {
		t.Fatalf("unexpected domain: %+v", dom)
	}
}

func TestGet_ByDate(t *testing.T) {
	var gotDate string
	storeMock := &MockStore{
		GetByDateFunc: func(_ context.Context, date string) (*featured.Domain, error) {
			gotDate = date
			return &featured.Domain{ID: "id-1", FeaturedDate: date}, nil
		},
	}

	svc := NewService(storeMock, zap.NewNop())
	if _, err := svc.Get(context.Background(), "2025-06-01"); err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if gotDate != "2025-06-01" {
		t.Fatalf("unexpected date: %s", gotDate)
	}
}

func TestGet_BadDateFormat(t *testing.T) {
	svc := NewService(&MockStore{}, zap.NewNop())
	if _, err := svc.Get(context.Background(), "06/01/2025"); !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected CategoryDataError, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(&MockStore{}, zap.NewNop())
	_, err := svc.Get(context.Background(), "")
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected CategoryResourceNotFound, got %v", err)
	}
}

func TestCreate_FillsDefaults(t *testing.T) {
	var created *featured.Domain
	storeMock := &MockStore{
		CreateFunc: func(_ context.Context, dom *featured.Domain) error {
			created = dom
			return nil
		},
	}

	svc := NewService(storeMock, zap.NewNop())
	description := "a great domain"
	dom, err := svc.Create(context.Background(), "admin", &featured.Payload{
		DomainName:   "example.com",
		FeaturedDate: "2025-06-01",
		Description:  &description,
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if dom.ID == "" {
		t.Fatal("expected a generated id")
	}
	if dom.CreatedBy != "admin" {
		t.Fatalf("expected created_by admin, got %s", dom.CreatedBy)
	}
	if dom.Tags == nil || len(dom.Tags) != 0 {
		t.Fatalf("expected empty tags slice, got %v", dom.Tags)
	}
	if created == nil || created.Description != "a great domain" {
		t.Fatalf("unexpected stored domain: %+v", created)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&MockStore{}, zap.NewNop())

	_, err := svc.Create(context.Background(), "admin", &featured.Payload{FeaturedDate: "2025-06-01"})
	if !errors.Is(err, ErrDomainNameRequired) {
		t.Fatalf("expected ErrDomainNameRequired, got %v", err)
	}

	_, err = svc.Create(context.Background(), "admin", &featured.Payload{DomainName: "example.com"})
	if !errors.Is(err, ErrFeaturedDateRequired) {
		t.Fatalf("expected ErrFeaturedDateRequired, got %v", err)
	}

	_, err = svc.Create(context.Background(), "admin", &featured.Payload{
		DomainName:   "example.com",
		FeaturedDate: "June 1st",
	})
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected CategoryDataError, got %v", err)
	}
}

func TestUpdate_ScopedToCreator(t *testing.T) {
	var gotID, gotCreatedBy string
	storeMock := &MockStore{
		UpdateFunc: func(_ context.Context, id, createdBy string, _ *featured.Payload) (*featured.Domain, error) {
			gotID, gotCreatedBy = id, createdBy
			return &featured.Domain{ID: id}, nil
		},
	}

	svc := NewService(storeMock, zap.NewNop())
	if _, err := svc.Update(context.Background(), "id-1", "admin", &featured.Payload{}); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if gotID != "id-1" || gotCreatedBy != "admin" {
		t.Fatalf("expected scoped update, got id=%s created_by=%s", gotID, gotCreatedBy)
	}
}

func TestUpdate_RequiresID(t *testing.T) {
	svc := NewService(&MockStore{}, zap.NewNop())
	if _, err := svc.Update(context.Background(), "", "admin", &featured.Payload{}); !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected CategoryDataError, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(&MockStore{}, zap.NewNop())
	_, err := svc.Update(context.Background(), "missing", "admin", &featured.Payload{})
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected CategoryResourceNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	deleted := false
	storeMock := &MockStore{
		DeleteFunc: func(_ context.Context, id, createdBy string) error {
			if id != "id-1" || createdBy != "admin" {
				t.Fatalf("unexpected delete args: id=%s created_by=%s", id, createdBy)
			}
			deleted = true
			return nil
		},
	}

	svc := NewService(storeMock, zap.NewNop())
	if err := svc.Delete(context.Background(), "id-1", "admin"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to reach the store")
	}
}

func TestDelete_RequiresID(t *testing.T) {
	svc := NewService(&MockStore{}, zap.NewNop())
	if err := svc.Delete(context.Background(), "", "admin"); !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected CategoryDataError, got %v", err)
	}
}
