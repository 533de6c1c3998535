package account

import "time"

// Account represents the domain model for a wallet-backed account.
// Accounts are keyed by their normalized (lowercased) wallet address.
type Account struct {
	ID            string
	WalletAddress string
	DisplayName   string
	Email         string
	AvatarURL     string
	CreatedAt     time.Time
	LastLogin     *time.Time
}

// ConnectRequest represents a wallet connection request.
// Signature and Message are optional; when signature verification is enabled
// the recovered signer must match WalletAddress.
type ConnectRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required,eth_addr"`
	Signature     string `json:"signature,omitzero"`
	Message       string `json:"message,omitzero"`
}

// ConnectResponse represents a wallet connection response
type ConnectResponse struct {
	ID            string `json:"id"`
	WalletAddress string `json:"walletAddress"`
	IsNew         bool   `json:"isNew"`
}
