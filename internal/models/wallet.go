package models

// WalletAddress is one entry of the desk's deposit-address catalog.
type WalletAddress struct {
	Coin    string `json:"coin"`    // Ticker, e.g. BTC
	Network string `json:"network"` // Chain/network the address lives on
	Address string `json:"address"`
}

// DefaultWalletCatalog returns the shipped read-only address catalog.
// Operators override individual coins at runtime through the directory;
// the catalog guarantees a safe default for every listed coin.
func DefaultWalletCatalog() []WalletAddress {
	return []WalletAddress{
		{Coin: "BTC", Network: "Bitcoin", Address: "bc1qf3ww5u4ekl3yd2m0eqjleqzpkd24l9c45ql0ys"},
		{Coin: "ETH", Network: "ERC20", Address: "0x5bD9E4bb3a899C14F47Fb8E8eEc5BB8a0d2c4C2f"},
		{Coin: "USDT", Network: "TRC20", Address: "TQ5bXJ4Lx6yrWWv7VVuqzW6ScNWnD3Dw6s"},
		{Coin: "USDC", Network: "ERC20", Address: "0x14cE500a86F1e3aCE039571e657783E069643617"},
		{Coin: "BNB", Network: "BEP20", Address: "bnb1u9j9hkst6gf09nkhtsqwjqrvchnextsdpp0gqc"},
		{Coin: "SOL", Network: "Solana", Address: "7v91N7iZ9mNicL8WfG6cgSCKyRXydQjLh6UYBWwm6y1Q"},
		{Coin: "LTC", Network: "Litecoin", Address: "ltc1qhyrmda9g2rg7kjqzjwqzy8u2mc7p9l5nw5q2d9"},
		{Coin: "TRX", Network: "TRC20", Address: "TN3W4H6rK2ce4vX9YnFQHwKENnHjoxb3m9"},
	}
}
