package entity

import "github.com/soldracula/dracula/pkg/solana"

// TransferClaim is the payment instruction of a submitted transaction.
type TransferClaim struct {
	Program     string
	Kind        string
	Source      string
	Destination string
	Lamports    uint64
}

// MemoClaim is the memo instruction carrying the asset address.
type MemoClaim struct {
	Program string
	Payload string
}

// OwnershipProof is the ledger's current view of who holds the asset.
type OwnershipProof struct {
	Asset        solana.PublicKey
	TokenAccount string
	Owner        string
}
