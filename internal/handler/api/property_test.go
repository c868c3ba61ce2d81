//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"rental-market/internal/handler/api"
	resdto "rental-market/internal/handler/dto/response"
	"rental-market/internal/usecase/commands"
	"rental-market/internal/usecase/queries"
	"rental-market/tests/common/httptest"
	commandsmock "rental-market/tests/mock/commands"
	queriesmock "rental-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PropertyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMarketCommands
	mockQueries  *queriesmock.MockMarketQueries
	handler      *api.PropertyHandler
	actorID      uuid.UUID
}

func (s *PropertyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMarketCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMarketQueries(s.mockCtrl)
	s.handler = api.NewPropertyHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Stand-in for the auth middleware
	injectActor := func(c *gin.Context) {
		c.Set("actor_id", s.actorID)
	}

	s.router.POST("/properties", injectActor, s.handler.Create)
	s.router.GET("/properties", s.handler.Search)
	s.router.GET("/properties/mine", injectActor, s.handler.Mine)
	s.router.GET("/properties/:id", s.handler.Get)
	s.router.PUT("/properties/:id/availability", injectActor, s.handler.SetAvailability)
	s.router.GET("/properties/:id/availability", s.handler.AvailabilityRange)
	s.router.GET("/properties/:id/quote", s.handler.Quote)
	s.router.GET("/properties/:id/bookings", injectActor, s.handler.Bookings)
}

func (s *PropertyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPropertyHandlerSuite(t *testing.T) {
	suite.Run(t, new(PropertyHandlerTestSuite))
}

func (s *PropertyHandlerTestSuite) propertyView(id uint64, price int64) *queries.PropertyView {
	return &queries.PropertyView{
		ID:            id,
		Owner:         s.actorID,
		PricePerNight: price,
		CreatedAt:     time.Unix(0, 0),
	}
}

func (s *PropertyHandlerTestSuite) TestCreate() {
	s.Run("success: returns 201 Created with the listing", func() {
		s.mockCommands.EXPECT().ListProperty(gomock.Any(), s.actorID, int64(100)).
			Return(uint64(1), nil).Times(1)
		s.mockQueries.EXPECT().Property(gomock.Any(), uint64(1)).
			Return(s.propertyView(1, 100), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/properties",
			map[string]any{"price_per_night": 100}, "")

		var response resdto.PropertyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(uint64(1), response.ID)
		s.Equal(int64(100), response.PricePerNight)
	})

	s.Run("success: zero price binds", func() {
		s.mockCommands.EXPECT().ListProperty(gomock.Any(), s.actorID, int64(0)).
			Return(uint64(2), nil).Times(1)
		s.mockQueries.EXPECT().Property(gomock.Any(), uint64(2)).
			Return(s.propertyView(2, 0), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/properties",
			map[string]any{"price_per_night": 0}, "")

		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 on missing price", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/properties",
			map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 on negative price", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/properties",
			map[string]any{"price_per_night": -5}, "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *PropertyHandlerTestSuite) TestGet() {
	s.Run("success: returns the property", func() {
		s.mockQueries.EXPECT().Property(gomock.Any(), uint64(7)).
			Return(s.propertyView(7, 100), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/7", nil, "")

		var response resdto.PropertyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(uint64(7), response.ID)
	})

	s.Run("error: 404 for unknown property", func() {
		s.mockQueries.EXPECT().Property(gomock.Any(), uint64(99)).
			Return(nil, queries.ErrPropertyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/99", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Property not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/abc", nil, "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *PropertyHandlerTestSuite) TestMine() {
	s.mockQueries.EXPECT().MyProperties(gomock.Any(), s.actorID).
		Return([]uint64{1, 3}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/mine", nil, "")

	var response resdto.PropertyIDsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal([]uint64{1, 3}, response.PropertyIDs)
}

func (s *PropertyHandlerTestSuite) TestSetAvailability() {
	url := "/properties/5/availability"
	day := int64(86400)

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().SetAvailability(gomock.Any(), s.actorID, uint64(5), 10*day, 15*day, true).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"start": 10 * day, "end": 15 * day, "open": true}, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: open false binds", func() {
		s.mockCommands.EXPECT().SetAvailability(gomock.Any(), s.actorID, uint64(5), 10*day, 15*day, false).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"start": 10 * day, "end": 15 * day, "open": false}, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 when not the owner", func() {
		s.mockCommands.EXPECT().SetAvailability(gomock.Any(), s.actorID, uint64(5), 10*day, 15*day, true).
			Return(commands.ErrNotAuthorized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"start": 10 * day, "end": 15 * day, "open": true}, "")

		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: 400 when open flag is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"start": 10 * day, "end": 15 * day}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *PropertyHandlerTestSuite) TestAvailabilityRange() {
	day := int64(86400)

	s.Run("success: returns day flags and start day", func() {
		s.mockQueries.EXPECT().AvailabilityRange(gomock.Any(), uint64(5), 10*day, 13*day).
			Return([]bool{true, true, false}, nil).Times(1)

		url := fmt.Sprintf("/properties/5/availability?start=%d&end=%d", 10*day, 13*day)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(10), response.StartDay)
		s.Equal([]bool{true, true, false}, response.Days)
	})

	s.Run("error: 400 on missing query params", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/5/availability", nil, "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *PropertyHandlerTestSuite) TestQuote() {
	day := int64(86400)

	s.Run("success: returns the total cost", func() {
		s.mockQueries.EXPECT().TotalCost(gomock.Any(), uint64(5), 10*day, 12*day).
			Return(int64(200), nil).Times(1)

		url := fmt.Sprintf("/properties/5/quote?start=%d&end=%d", 10*day, 12*day)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(200), response.TotalCost)
	})

	s.Run("error: 400 on inverted range", func() {
		s.mockQueries.EXPECT().TotalCost(gomock.Any(), uint64(5), 12*day, 10*day).
			Return(int64(0), queries.ErrInvalidRange).Times(1)

		url := fmt.Sprintf("/properties/5/quote?start=%d&end=%d", 12*day, 10*day)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *PropertyHandlerTestSuite) TestSearch() {
	day := int64(86400)

	s.Run("success: returns matching ids", func() {
		s.mockQueries.EXPECT().AvailableProperties(gomock.Any(), 10*day, 13*day, int64(100)).
			Return([]uint64{1, 4}, nil).Times(1)

		url := fmt.Sprintf("/properties?start=%d&end=%d&max_price=100", 10*day, 13*day)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.PropertyIDsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]uint64{1, 4}, response.PropertyIDs)
	})

	s.Run("error: 400 on missing max_price", func() {
		url := fmt.Sprintf("/properties?start=%d&end=%d", 10*day, 13*day)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *PropertyHandlerTestSuite) TestBookings() {
	s.Run("success: all bookings", func() {
		s.mockQueries.EXPECT().PropertyBookings(gomock.Any(), uint64(5), false).
			Return([]uint64{1, 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/5/bookings", nil, "")

		var response resdto.BookingIDsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]uint64{1, 2}, response.BookingIDs)
	})

	s.Run("success: only open bookings", func() {
		s.mockQueries.EXPECT().PropertyBookings(gomock.Any(), uint64(5), true).
			Return([]uint64{1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/5/bookings?only_open=true", nil, "")

		var response resdto.BookingIDsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]uint64{1}, response.BookingIDs)
	})
}
