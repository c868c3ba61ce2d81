package request

type CreateBookingRequest struct {
	PropertyID uint64 `json:"property_id" binding:"required"`
	Start      int64  `json:"start" binding:"required,gt=0"`
	End        int64  `json:"end" binding:"required,gt=0"`
}
