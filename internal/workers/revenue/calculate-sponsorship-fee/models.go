// internal/workers/revenue/calculate-sponsorship-fee/models.go
package calculatesponsorshipfee

type Input struct {
	NeedID string `json:"needId"`
	Amount int64  `json:"amount"`
}

type Output struct {
	PlatformFee int64 `json:"platformFee"`
	NetAmount   int64 `json:"netAmount"`
}
