package solana

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/cockroachdb/errors"
	"github.com/soldracula/dracula/common/errs"
)

// Keypair is the service wallet. It is loaded once at startup and never mutated.
type Keypair struct {
	private ed25519.PrivateKey
	public  PublicKey
}

// NewKeypair generates a random keypair.
func NewKeypair() (*Keypair, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "generate ed25519 key")
	}
	return KeypairFromSecretKey(priv)
}

// KeypairFromSecretKey builds a keypair from the 64 byte secret key (seed followed by public key).
func KeypairFromSecretKey(secret []byte) (*Keypair, error) {
	if len(secret) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(errs.InvalidArgument, "secret key must be %d bytes, got %d", ed25519.PrivateKeySize, len(secret))
	}
	priv := ed25519.NewKeyFromSeed(secret[:ed25519.SeedSize])
	var pub PublicKey
	copy(pub[:], priv.Public().(ed25519.PublicKey))
	if string(pub[:]) != string(secret[ed25519.SeedSize:]) {
		return nil, errors.Wrap(errs.InvalidArgument, "secret key public half does not match its seed")
	}
	return &Keypair{private: priv, public: pub}, nil
}

// LoadKeypair reads a keypair file, a JSON array of the 64 secret key bytes.
func LoadKeypair(path string) (*Keypair, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, "read keypair file %q", path)
	}
	var secret []byte
	var ints []int
	if err := json.Unmarshal(raw, &ints); err != nil {
		return nil, errors.Wrapf(errs.InvalidArgument, "keypair file %q is not a JSON byte array: %v", path, err)
	}
	secret = make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return nil, errors.Wrapf(errs.InvalidArgument, "keypair file %q has out of range byte %d at %d", path, v, i)
		}
		secret[i] = byte(v)
	}
	kp, err := KeypairFromSecretKey(secret)
	if err != nil {
		return nil, errors.Wrapf(err, "keypair file %q", path)
	}
	return kp, nil
}

// Save writes the keypair in the same JSON array format [LoadKeypair] reads.
func (k *Keypair) Save(path string) error {
	ints := make([]int, len(k.private))
	for i, b := range k.private {
		ints[i] = int(b)
	}
	raw, err := json.Marshal(ints)
	if err != nil {
		return errors.Wrap(err, "marshal keypair")
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return errors.Wrapf(err, "write keypair file %q", path)
	}
	return nil
}

func (k *Keypair) PublicKey() PublicKey {
	return k.public
}

// Sign signs message and returns the raw signature.
func (k *Keypair) Sign(message []byte) []byte {
	return ed25519.Sign(k.private, message)
}

// SignBase58 signs message and returns the base58 encoded signature.
func (k *Keypair) SignBase58(message []byte) string {
	return base58.Encode(k.Sign(message))
}

// VerifyBase58 checks a base58 signature of message against pub.
func VerifyBase58(pub PublicKey, message []byte, signature string) bool {
	sig := base58.Decode(signature)
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub[:]), message, sig)
}
