package response

import (
	"time"

	"rental-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PropertyResponse struct {
	ID            uint64    `json:"id"`
	Owner         uuid.UUID `json:"owner"`
	PricePerNight int64     `json:"pricePerNight"`
	CreatedAt     time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	PropertyID uint64 `json:"propertyId"`
	StartDay   int64  `json:"startDay"`
	Days       []bool `json:"days"`
}

type QuoteResponse struct {
	PropertyID uint64 `json:"propertyId"`
	TotalCost  int64  `json:"totalCost"`
}

type PropertyIDsResponse struct {
	PropertyIDs []uint64 `json:"propertyIds"`
}

func FromPropertyView(v *queries.PropertyView) *PropertyResponse {
	var resp PropertyResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
