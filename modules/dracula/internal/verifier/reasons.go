package verifier

const (
	REASON_MALFORMED_SIGNATURE  = "malformed transaction signature"
	REASON_NOT_CONFIRMED        = "transaction not confirmed in time"
	REASON_TX_MISSING           = "transaction not returned by ledger"
	REASON_TX_FAILED            = "transaction failed on ledger"
	REASON_TRANSFER_MISSING     = "first instruction missing"
	REASON_TRANSFER_PROGRAM     = "first instruction is not a system program instruction"
	REASON_TRANSFER_UNPARSED    = "first instruction was not parsed by ledger"
	REASON_TRANSFER_KIND        = "first instruction is not a transfer"
	REASON_TRANSFER_DESTINATION = "transfer destination is not the service wallet"
	REASON_TRANSFER_SOURCE      = "transfer source is missing"
	REASON_TRANSFER_TOO_SMALL   = "transfer is below the minimum fee"
	REASON_MEMO_MISSING         = "second instruction missing"
	REASON_MEMO_PROGRAM         = "second instruction is not a memo"
	REASON_MEMO_PAYLOAD         = "memo payload is not a string"
	REASON_MEMO_LENGTH          = "memo payload length out of range"
	REASON_ASSET_ADDRESS        = "memo payload is not an asset address"
	REASON_ASSET_NO_ACCOUNTS    = "asset has no token accounts"
	REASON_ASSET_REJECTED       = "ledger rejected asset lookup"
	REASON_HOLDER_MISSING       = "asset holder account not found"
	REASON_HOLDER_UNPARSED      = "asset holder account has no parsed owner"
	REASON_OWNER_MISMATCH       = "transfer source does not own the asset"
)
