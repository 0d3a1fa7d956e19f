package solana

import (
	"crypto/ed25519"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/cockroachdb/errors"
	"github.com/soldracula/dracula/common/errs"
)

const PublicKeySize = ed25519.PublicKeySize

// Program addresses referenced by the service.
var (
	SystemProgramID = MustParsePublicKey("11111111111111111111111111111111")
	MemoProgramID   = MustParsePublicKey("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")
)

// PublicKey is a 32 byte ledger address, rendered as base58.
type PublicKey [PublicKeySize]byte

// ParsePublicKey decodes a base58 address.
func ParsePublicKey(s string) (PublicKey, error) {
	var pk PublicKey
	if s == "" {
		return pk, errors.Wrap(errs.InvalidArgument, "empty public key")
	}
	raw := base58.Decode(s)
	if len(raw) != PublicKeySize {
		return pk, errors.Wrapf(errs.InvalidArgument, "public key %q decodes to %d bytes, want %d", s, len(raw), PublicKeySize)
	}
	copy(pk[:], raw)
	return pk, nil
}

func MustParsePublicKey(s string) PublicKey {
	pk, err := ParsePublicKey(s)
	if err != nil {
		panic(err)
	}
	return pk
}

func (pk PublicKey) String() string {
	return base58.Encode(pk[:])
}

func (pk PublicKey) IsZero() bool {
	return pk == PublicKey{}
}

func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

func (pk *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}
