package request

type FaucetRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
	// When true the faucet also approves the market custody to pull the
	// same amount, so a confirm can follow immediately.
	Approve bool `json:"approve"`
}
