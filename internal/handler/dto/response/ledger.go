package response

import "github.com/google/uuid"

type BalanceResponse struct {
	Account uuid.UUID `json:"account"`
	Balance int64     `json:"balance"`
}
