package registry

// Listing is a live sale listing for a tokenized domain.
type Listing struct {
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt string    `json:"createdAt"`
	Registrar NamedRef  `json:"registrar"`
	Chain     NamedRef  `json:"chain"`
}

// NamedRef is a registry entity referenced only by name.
type NamedRef struct {
	Name string `json:"name"`
}

// ListingsPage is one page of listings with cursor metadata.
type ListingsPage struct {
	CurrentPage     int       `json:"currentPage"`
	HasNextPage     bool      `json:"hasNextPage"`
	HasPreviousPage bool      `json:"hasPreviousPage"`
	Items           []Listing `json:"items"`
	PageSize        int       `json:"pageSize"`
	TotalPages      int       `json:"totalPages"`
}

// ListingsParams filters and paginates a listings query.
type ListingsParams struct {
	Take int
	Skip int
	TLDs []string
	SLD  string
}

// FractionalToken is a domain fractionalized into a tradeable token.
// The shape mirrors the registry's fractionalTokens payload and is proxied
// to the frontend as-is.
type FractionalToken struct {
	Address              string                 `json:"address"`
	BoughtOutAt          *string                `json:"boughtOutAt"`
	BoughtOutBy          *string                `json:"boughtOutBy"`
	BoughtOutTxHash      *string                `json:"boughtOutTxHash"`
	BuyoutPrice          *string                `json:"buyoutPrice"`
	Chain                NamedRef               `json:"chain"`
	CurrentPrice         string                 `json:"currentPrice"`
	FractionalizedAt     string                 `json:"fractionalizedAt"`
	FractionalizedBy     string                 `json:"fractionalizedBy"`
	FractionalizedTxHash string                 `json:"fractionalizedTxHash"`
	GraduatedAt          *string                `json:"graduatedAt"`
	ID                   string                 `json:"id"`
	LaunchpadAddress     string                 `json:"launchpadAddress"`
	Metadata             map[string]any         `json:"metadata"`
	MetadataURI          string                 `json:"metadataURI"`
	Name                 string                 `json:"name"`
	Params               map[string]any         `json:"params"`
	PoolAddress          string                 `json:"poolAddress"`
	Status               string                 `json:"status"`
	VestingWalletAddress string                 `json:"vestingWalletAddress"`
}

// WalletDomain is a domain owned by a wallet, split into second-level name
// and extension.
type WalletDomain struct {
	Name      string `json:"name"`
	Extension string `json:"extension"`
}
