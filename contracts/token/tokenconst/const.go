package tokenconst

const (
	// DefaultMintInterval is a cooldown in seconds between two mints made by
	// the same account.
	DefaultMintInterval = 24 * 60 * 60
	// DefaultFeePercent is a part of every transfer skimmed to the fee
	// receiver in common.FeePrecision units (1%).
	DefaultFeePercent = 10_000_000_000_000_000
	// DefaultMintAmount is an amount credited by a single successful mint.
	DefaultMintAmount = 400_000_000_000_000_000
	// MaxDecimals is the largest number of decimals a token can declare.
	MaxDecimals = 255

	// ErrMintDisabled is thrown on mint when minting is turned off.
	ErrMintDisabled = "mint is disabled"
	// ErrMintOnCooldown is thrown on mint when the account has already minted
	// within the current interval.
	ErrMintOnCooldown = "already minted recently, wait for the mint interval to pass"
	// ErrContractLocked is thrown on any governance call after ownership lock.
	ErrContractLocked = "contract is locked"
	// ErrInsufficientAllowance is thrown when delegated transfer exceeds
	// spender's allowance.
	ErrInsufficientAllowance = "insufficient allowance"
	// ErrAllowanceExpired is thrown when delegated transfer uses an expired
	// allowance.
	ErrAllowanceExpired = "allowance is expired"
	// ErrInvalidDecimals is thrown on deploy when decimals are out of
	// [0, MaxDecimals] range.
	ErrInvalidDecimals = "invalid decimals"
	// ErrInvalidInterval is thrown when mint interval is negative or exceeds
	// common.MaxAmount().
	ErrInvalidInterval = "invalid mint interval"
	// ErrInvalidExpiration is thrown when allowance expiration time is
	// negative.
	ErrInvalidExpiration = "invalid allowance expiration"
	// ErrOwnAllowance is thrown on attempt to approve spending to the
	// account itself.
	ErrOwnAllowance = "cannot set allowance to own account"
	// ErrNegativeSupply is thrown if burn would make total supply negative.
	ErrNegativeSupply = "negative supply after burn"
)
