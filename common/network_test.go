package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetwork(t *testing.T) {
	assert.True(t, NetworkLocalnet.IsSupported())
	assert.True(t, NetworkDevnet.IsSupported())
	assert.False(t, Network("mainnet").IsSupported())

	assert.Equal(t, "http://localhost:8899", NetworkLocalnet.RPCEndpoint())
	assert.Equal(t, "https://api.devnet.solana.com", NetworkDevnet.RPCEndpoint())
	assert.Empty(t, Network("mainnet").RPCEndpoint())
}
