package response

import (
	"time"

	"rental-market/internal/usecase/commands"
	"rental-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID         uint64    `json:"id"`
	PropertyID uint64    `json:"propertyId"`
	Renter     uuid.UUID `json:"renter"`
	StartDay   int64     `json:"startDay"`
	EndDay     int64     `json:"endDay"`
	Status     string    `json:"status"`
	TotalPrice int64     `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BookingIDsResponse struct {
	BookingIDs []uint64 `json:"bookingIds"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromBookingSnapshot(s *commands.BookingSnapshot) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, s)
	resp.UpdatedAt = s.CreatedAt
	return &resp
}
