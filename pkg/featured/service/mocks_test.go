package service

import (
	"context"

	"github.com/mainalysis/domain-analyzer/pkg/featured"
	"github.com/mainalysis/domain-analyzer/pkg/featured/store"
)

// MockStore is a mock implementation of store.Store
type MockStore struct {
	GetLatestFunc func(ctx context.Context) (*featured.Domain, error)
	GetByDateFunc func(ctx context.Context, date string) (*featured.Domain, error)
	CreateFunc    func(ctx context.Context, dom *featured.Domain) error
	UpdateFunc    func(ctx context.Context, id, createdBy string, payload *featured.Payload) (*featured.Domain, error)
	DeleteFunc    func(ctx context.Context, id, createdBy string) error
}

func (m *MockStore) GetLatest(ctx context.Context) (*featured.Domain, error) {
	if m.GetLatestFunc != nil {
		return m.GetLatestFunc(ctx)
	}
	return nil, store.ErrDomainNotFound
}

func (m *MockStore) GetByDate(ctx context.Context, date string) (*featured.Domain, error) {
	if m.GetByDateFunc != nil {
		return m.GetByDateFunc(ctx, date)
	}
	return nil, store.ErrDomainNotFound
}

func (m *MockStore) Create(ctx context.Context, dom *featured.Domain) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, dom)
	}
	return nil
}

func (m *MockStore) Update(ctx context.Context, id, createdBy string, payload *featured.Payload) (*featured.Domain, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, createdBy, payload)
	}
	return nil, store.ErrDomainNotFound
}

func (m *MockStore) Delete(ctx context.Context, id, createdBy string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, createdBy)
	}
	return store.ErrDomainNotFound
}
