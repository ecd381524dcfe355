package contract

import "nft_editions/sdk"

// -----------------------------------------------------------------------------
// Share / royalty math
// -----------------------------------------------------------------------------

// BpsDenominator is the basis point scale: every share and royalty percentage
// is expressed in 1/10000 units and the full share table always sums to it.
const BpsDenominator uint64 = 10000

// -----------------------------------------------------------------------------
// Sale asset
// -----------------------------------------------------------------------------

// SaleAsset is the ledger asset every sale, deposit and withdrawal settles in.
const SaleAsset = sdk.AssetHive

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxNameLength limits the edition name.
	MaxNameLength = 200
	// MaxURLLength limits the size of the content URL.
	MaxURLLength = 500
	// MaxShareholders bounds the share table so the withdraw fan-out stays cheap.
	MaxShareholders = 64
	// MaxBatchRecipients bounds a single mint_batch call.
	MaxBatchRecipients = 256
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// TokensCount holds the number of tokens ever minted (next id = count + 1).
	TokensCount = "count:token"
	// BurnedCount holds the number of tokens burned since creation.
	BurnedCount = "count:burned"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kEdition stores the encoded Edition record (singleton).
	kEdition byte = 0x01
	// kSalePrice stores the current sale price as a decimal string (singleton).
	kSalePrice byte = 0x02
	// kLedger stores the encoded revenue ledger totals (singleton).
	kLedger byte = 0x03
	// kShareTable stores the encoded shareholder table (singleton).
	kShareTable byte = 0x04
	// kTokenOwner maps token id to current holder address.
	kTokenOwner byte = 0x10
	// kTokenApproval maps token id to the one approved operator address.
	kTokenApproval byte = 0x11
	// kHolderBalance counts alive tokens per holder address.
	kHolderBalance byte = 0x12
	// kMinterQuota stores remaining allowlist quota per minter address.
	kMinterQuota byte = 0x13
	// kWithdrawn stores cumulative withdrawn revenue per shareholder address.
	kWithdrawn byte = 0x14
)
