package storyclient

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// ItemHash returns the CIDv1 (raw, sha2-256) of the item's JSON encoding.
func ItemHash(item Item) (cid.Cid, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return cid.Undef, errors.Wrap(err, "can't marshal item")
	}
	sum, err := multihash.Sum(raw, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, errors.Wrap(err, "can't hash item")
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}
