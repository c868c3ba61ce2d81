//go:build e2e

package market_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "rental-market/internal/handler/dto/response"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/usecase/shared"
	"rental-market/tests/common/httptest"
	"rental-market/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	registerURL   = "/api/auth/register"
	loginURL      = "/api/auth/login"
	propertiesURL = "/api/properties"
	bookingsURL   = "/api/bookings"
	faucetURL     = "/api/ledger/faucet"
	balanceURL    = "/api/ledger/balance"
	eventsURL     = "/api/events"
)

type marketSuite struct {
	e2e.SharedSuite
	ownerToken  string
	renterToken string
}

func TestMarketSuite(t *testing.T) {
	suite.Run(t, new(marketSuite))
}

func (s *marketSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.ownerToken = s.registerAndLogin("owner@example.com")
	s.renterToken = s.registerAndLogin("renter@example.com")
}

func (s *marketSuite) registerAndLogin(email string) string {
	body := map[string]any{"email": email, "password": "password123"}

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, body, "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, body, "")
	var login resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &login)
	s.Require().NotEmpty(login.AccessToken)
	return login.AccessToken
}

func (s *marketSuite) balance(token string) int64 {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, balanceURL, nil, token)
	var response resdto.BalanceResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	return response.Balance
}

// TestBookingSettlementFlow walks the whole lifecycle over HTTP against
// the postgres ledger and journal: list, open days, fund, request,
// pre-approve, confirm, settle. The stay is placed in the past so the
// settlement is already due.
func (s *marketSuite) TestBookingSettlementFlow() {
	day := clock.SecondsPerDay
	today := time.Now().Unix() / day
	stayStart := (today - 5) * day
	stayEnd := (today - 3) * day // two nights, already ended

	// Owner lists a property and opens the window
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, propertiesURL,
		map[string]any{"price_per_night": 100}, s.ownerToken)
	var created resdto.PropertyResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

	availabilityURL := fmt.Sprintf("%s/%d/availability", propertiesURL, created.ID)
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, availabilityURL,
		map[string]any{"start": stayStart, "end": stayEnd, "open": true}, s.ownerToken)
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	// Renter funds the wallet and approves custody
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, faucetURL,
		map[string]any{"amount": 1000, "approve": true}, s.renterToken)
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	s.Require().Equal(int64(1000), s.balance(s.renterToken))

	// Request: pending, priced at 2 nights x 100
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
		map[string]any{"property_id": created.ID, "start": stayStart, "end": stayEnd}, s.renterToken)
	var booked resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booked)
	s.Equal("pending", booked.Status)
	s.Equal(int64(200), booked.TotalPrice)

	// Owner pre-approves, renter confirms and pays into escrow
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf("%s/%d/pre-approve", bookingsURL, booked.ID), nil, s.ownerToken)
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf("%s/%d/confirm", bookingsURL, booked.ID), nil, s.renterToken)
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	s.Equal(int64(800), s.balance(s.renterToken))
	s.Equal(int64(0), s.balance(s.ownerToken))

	// Settlement is permissionless; the renter triggers it here
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf("%s/%d/complete", bookingsURL, booked.ID), nil, s.renterToken)
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	s.Equal(int64(200), s.balance(s.ownerToken))

	// Final state and double settlement
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		fmt.Sprintf("%s/%d", bookingsURL, booked.ID), nil, s.renterToken)
	var final resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &final)
	s.Equal("completed", final.Status)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf("%s/%d/complete", bookingsURL, booked.ID), nil, s.renterToken)
	s.Equal(http.StatusConflict, rec.Code)

	// The journal recorded the whole story in order
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, eventsURL+"?after=0", nil, "")
	var events resdto.EventsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &events)
	s.Require().Len(events.Events, 6)
	s.Equal(shared.EventPropertyListed, events.Events[0].Kind)
	s.Equal(shared.EventAvailabilityUpdated, events.Events[1].Kind)
	s.Equal(shared.EventBookingRequested, events.Events[2].Kind)
	s.Equal(shared.EventBookingStatusUpdated, events.Events[3].Kind)
	s.Equal("completed", events.Events[5].Status)
	s.Equal(uint64(6), events.NextSeq)
}

func (s *marketSuite) TestUnderfundedConfirmIsRetryable() {
	day := clock.SecondsPerDay
	today := time.Now().Unix() / day
	stayStart := (today + 10) * day
	stayEnd := (today + 12) * day

	poorToken := s.registerAndLogin("poor-renter@example.com")

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, propertiesURL,
		map[string]any{"price_per_night": 300}, s.ownerToken)
	var created resdto.PropertyResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
		fmt.Sprintf("%s/%d/availability", propertiesURL, created.ID),
		map[string]any{"start": stayStart, "end": stayEnd, "open": true}, s.ownerToken)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
		map[string]any{"property_id": created.ID, "start": stayStart, "end": stayEnd}, poorToken)
	var booked resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booked)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf("%s/%d/pre-approve", bookingsURL, booked.ID), nil, s.ownerToken)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	// No funds approved yet: confirm fails with 402 and stays pre-approved
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf("%s/%d/confirm", bookingsURL, booked.ID), nil, poorToken)
	s.Equal(http.StatusPaymentRequired, rec.Code)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		fmt.Sprintf("%s/%d", bookingsURL, booked.ID), nil, poorToken)
	var pending resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &pending)
	s.Equal("pre_approved", pending.Status)

	// Fund and retry the identical call
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, faucetURL,
		map[string]any{"amount": 600, "approve": true}, poorToken)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf("%s/%d/confirm", bookingsURL, booked.ID), nil, poorToken)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *marketSuite) TestAuthIsRequiredForMutations() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, propertiesURL,
		map[string]any{"price_per_night": 100}, "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
		map[string]any{"property_id": 1, "start": 1, "end": 2}, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}
