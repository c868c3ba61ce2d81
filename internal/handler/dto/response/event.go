package response

import (
	"rental-market/internal/usecase/shared"
)

type EventsResponse struct {
	Events []shared.Event `json:"events"`
	// NextSeq is the cursor to pass as "after" on the next poll.
	NextSeq uint64 `json:"nextSeq"`
}

func FromEvents(events []shared.Event, afterSeq uint64) *EventsResponse {
	next := afterSeq
	if len(events) > 0 {
		next = events[len(events)-1].Seq
	}
	return &EventsResponse{Events: events, NextSeq: next}
}
