package common

type Network string

const (
	NetworkLocalnet Network = "localnet"
	NetworkDevnet   Network = "devnet"
)

var supportedNetworks = map[Network]struct{}{
	NetworkLocalnet: {},
	NetworkDevnet:   {},
}

var rpcEndpoints = map[Network]string{
	NetworkLocalnet: "http://localhost:8899",
	NetworkDevnet:   "https://api.devnet.solana.com",
}

func (n Network) IsSupported() bool {
	_, ok := supportedNetworks[n]
	return ok
}

// RPCEndpoint returns the default ledger JSON-RPC endpoint of the network.
func (n Network) RPCEndpoint() string {
	return rpcEndpoints[n]
}

func (n Network) String() string {
	return string(n)
}
