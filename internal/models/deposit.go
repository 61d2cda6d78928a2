package models

// DepositStatusSuccess is the exchange's terminal success value; only
// deposits in this state count during reconciliation.
const DepositStatusSuccess = "success"

// DepositRecord is one entry of the custodial exchange's deposit ledger,
// read-only from this service's point of view. Size is kept as the decimal
// string the exchange returns.
type DepositRecord struct {
	Coin        string `json:"coin"`
	Size        string `json:"size"`
	TradeID     string `json:"tradeId,omitempty"`
	OrderID     string `json:"orderId,omitempty"`
	Status      string `json:"status"`
	CTime       string `json:"cTime"`
	Chain       string `json:"chain,omitempty"`
	ToAddress   string `json:"toAddress,omitempty"`
	FromAddress string `json:"fromAddress,omitempty"`
}

// MatchesReference reports whether id equals the record's visible hash.
// The exchange does not guarantee whether tradeId or orderId carries it,
// so the OR lives here and nowhere else.
func (d DepositRecord) MatchesReference(id string) bool {
	if id == "" {
		return false
	}
	return id == d.TradeID || id == d.OrderID
}
