package factoryconst

const (
	// MintAmount is a supply increase made by a single mint of a registered
	// token.
	MintAmount = 40_000_000_000_000_000
	// FeePercent is a part of transfers paid to the token's fee receiver in
	// common.FeePrecision units (1%).
	FeePercent = 10_000_000_000_000_000

	// NotFoundError is thrown when token is missing in the registry.
	NotFoundError = "token not found"
)
