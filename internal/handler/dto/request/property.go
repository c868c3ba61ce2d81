package request

type CreatePropertyRequest struct {
	// Pointer so an explicit zero survives "required": free listings are legal.
	PricePerNight *int64 `json:"price_per_night" binding:"required,gte=0"`
}

type SetAvailabilityRequest struct {
	Start int64 `json:"start" binding:"required,gt=0"`
	End   int64 `json:"end" binding:"required,gt=0"`
	Open  *bool `json:"open" binding:"required"`
}
