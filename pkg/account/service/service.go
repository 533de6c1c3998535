package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mainalysis/domain-analyzer/pkg/account"
	"github.com/mainalysis/domain-analyzer/pkg/account/store"
	apperrors "github.com/mainalysis/domain-analyzer/pkg/app/errors"
	"github.com/mainalysis/domain-analyzer/pkg/auth"
)

var (
	ErrInvalidWalletAddress = errors.New("invalid wallet address")
	ErrSignatureMismatch    = errors.New("signature does not match wallet address")
)

// Service defines the interface for the account business logic
type Service interface {
	Connect(ctx context.Context, req *account.ConnectRequest) (*account.ConnectResponse, error)
	GetAccount(ctx context.Context, walletAddress string) (*account.Account, error)
}

type accountService struct {
	store                 store.Store
	logger                *zap.Logger
	verifyWalletSignature bool
}

// NewService creates a new account service
func NewService(store store.Store, logger *zap.Logger, verifyWalletSignature bool) Service {
	return &accountService{
		store:                 store,
		logger:                logger,
		verifyWalletSignature: verifyWalletSignature,
	}
}

// Connect resolves a wallet connection to an account, creating one on first
// contact and updating last_login on every subsequent connect.
//
// When signature verification is enabled, the address recovered from the
// EIP-191 signature must match the submitted wallet address.
func (s *accountService) Connect(ctx context.Context, req *account.ConnectRequest) (*account.ConnectResponse, error) {
	if !auth.ValidateAddress(req.WalletAddress) {
		return nil, apperrors.BadRequestError(ErrInvalidWalletAddress, "invalid wallet address")
	}
	walletAddress := auth.NormalizeAddress(req.WalletAddress)

	if s.verifyWalletSignature {
		if req.Signature == "" || req.Message == "" {
			return nil, apperrors.UnAuthorizedError(nil, "signature and message required")
		}
		recovered, err := auth.VerifyPersonalSignature(req.Message, req.Signature)
		if err != nil {
			return nil, apperrors.BadRequestError(err, "invalid signature")
		}
		if !strings.EqualFold(recovered, walletAddress) {
			return nil, apperrors.UnAuthorizedError(ErrSignatureMismatch, "signature does not match wallet address")
		}
	}

	existing, err := s.store.GetAccount(ctx, walletAddress)
	if err != nil && !errors.Is(err, store.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if existing != nil {
		if err := s.store.TouchLastLogin(ctx, walletAddress); err != nil {
			return nil, fmt.Errorf("failed to update last login: %w", err)
		}
		return &account.ConnectResponse{
			ID:            existing.ID,
			WalletAddress: existing.WalletAddress,
			IsNew:         false,
		}, nil
	}

	acc := &account.Account{
		ID:            uuid.NewString(),
		WalletAddress: walletAddress,
	}
	if err := s.store.CreateAccount(ctx, acc); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("account created", zap.String("wallet_address", walletAddress))

	return &account.ConnectResponse{
		ID:            acc.ID,
		WalletAddress: acc.WalletAddress,
		IsNew:         true,
	}, nil
}

// GetAccount returns the account for a wallet address.
func (s *accountService) GetAccount(ctx context.Context, walletAddress string) (*account.Account, error) {
	if !auth.ValidateAddress(walletAddress) {
		return nil, apperrors.BadRequestError(ErrInvalidWalletAddress, "invalid wallet address")
	}

	acc, err := s.store.GetAccount(ctx, auth.NormalizeAddress(walletAddress))
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "account not found")
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return acc, nil
}
