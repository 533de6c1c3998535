package store

import (
	"context"
	"errors"

	"github.com/mainalysis/domain-analyzer/pkg/featured"
)

var ErrDomainNotFound = errors.New("featured domain not found")

// Store defines the interface for featured domain persistence
type Store interface {
	// GetLatest returns the most recently dated entry.
	GetLatest(ctx context.Context) (*featured.Domain, error)

	// GetByDate returns the entry featured on a YYYY-MM-DD date.
	GetByDate(ctx context.Context, date string) (*featured.Domain, error)

	Create(ctx context.Context, dom *featured.Domain) error

	// Update applies the payload's set fields to the entry with the given
	// id, only when it was created by createdBy.
	Update(ctx context.Context, id, createdBy string, payload *featured.Payload) (*featured.Domain, error)

	// Delete removes the entry with the given id when created by createdBy.
	Delete(ctx context.Context, id, createdBy string) error
}
