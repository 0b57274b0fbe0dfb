//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/handler/api"
	"fleetbook/internal/usecase/commands"
	"fleetbook/internal/usecase/queries"
	commandsmock "fleetbook/tests/mock/commands"
	queriesmock "fleetbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	memberID     uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.memberID = uuid.New()

	// Stand-in for the auth middleware.
	s.router.Use(func(c *gin.Context) {
		c.Set("member_id", s.memberID)
		c.Next()
	})
	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings", s.handler.GetMyBookings)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
	s.router.PUT("/bookings/:id", s.handler.UpdateBooking)
	s.router.DELETE("/bookings/:id", s.handler.DeleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) validBody() map[string]any {
	return map[string]any{
		"boat_id":    uuid.New().String(),
		"start_time": "2026-01-07T10:00:00Z",
		"end_time":   "2026-01-07T14:00:00Z",
		"allocations": []map[string]any{
			{"member_id": s.memberID.String(), "credits": 40},
		},
	}
}

func (s *BookingHandlerTestSuite) doJSON(method, url string, body map[string]any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	s.Run("success: returns 201 with the stored view", func() {
		view := &queries.BookingView{ID: uuid.New(), CreditsUsed: 40}
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.memberID).
			Return(view, nil).Times(1)

		rec := s.doJSON(http.MethodPost, "/bookings", s.validBody())

		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), view.ID.String())
	})

	s.Run("rejection reasons surface verbatim with 422", func() {
		cases := []struct {
			name string
			err  error
			want string
		}{
			{"standing", booking.ErrNotGoodStanding, "not in good standing"},
			{"credits", booking.ErrInsufficientCredits, "member does not have enough credits"},
			{"overlap", booking.ErrAlreadyReserved, "date has been previously reserved"},
			{"day skipper", booking.ErrDaySkipperRequired, "member must have day skipper status"},
			{"cruise skipper", booking.ErrCruiseSkipperRequired, "member must have cruise skipper status"},
			{"boat down", booking.ErrBoatNotOperational, "boat not operational"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.memberID).
					Return(nil, tc.err).Times(1)

				rec := s.doJSON(http.MethodPost, "/bookings", s.validBody())

				s.Equal(http.StatusUnprocessableEntity, rec.Code)
				s.Contains(rec.Body.String(), tc.want)
			})
		}
	})

	s.Run("window errors are 400", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.memberID).
			Return(nil, booking.ErrSpanTooLong).Times(1)

		rec := s.doJSON(http.MethodPost, "/bookings", s.validBody())

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "bookings cannot be more than 3 days")
	})

	s.Run("missing boat is 404", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.memberID).
			Return(nil, booking.ErrBoatNotFound).Times(1)

		rec := s.doJSON(http.MethodPost, "/bookings", s.validBody())

		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), "boat does not exist")
	})

	s.Run("malformed body is 400 without reaching the usecase", func() {
		body := s.validBody()
		delete(body, "boat_id")

		rec := s.doJSON(http.MethodPost, "/bookings", body)

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestUpdateBooking() {
	id := uuid.New()

	s.Run("success: returns 200 with bumped version", func() {
		view := &queries.BookingView{ID: id, Version: 1}
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), id, gomock.Any()).
			Return(view, nil).Times(1)

		rec := s.doJSON(http.MethodPut, "/bookings/"+id.String(), s.validBody())

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("lost race is 409", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrBookingConflict).Times(1)

		rec := s.doJSON(http.MethodPut, "/bookings/"+id.String(), s.validBody())

		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("missing booking is 404", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := s.doJSON(http.MethodPut, "/bookings/"+id.String(), s.validBody())

		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("bad id is 400", func() {
		rec := s.doJSON(http.MethodPut, "/bookings/not-a-uuid", s.validBody())
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id).
			Return(nil).Times(1)

		rec := s.doJSON(http.MethodDelete, "/bookings/"+id.String(), nil)

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("missing booking is 404", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := s.doJSON(http.MethodDelete, "/bookings/"+id.String(), nil)

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	id := uuid.New()

	s.Run("success: returns the view", func() {
		view := &queries.BookingView{
			ID:        id,
			StartTime: time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 1, 7, 14, 0, 0, 0, time.UTC),
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(view, nil).Times(1)

		rec := s.doJSON(http.MethodGet, "/bookings/"+id.String(), nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), id.String())
	})

	s.Run("missing booking is 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := s.doJSON(http.MethodGet, "/bookings/"+id.String(), nil)

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetMyBookings() {
	s.Run("success: returns the member's list", func() {
		items := []*queries.BookingListItem{
			{ID: uuid.New(), BoatName: "Serenity"},
		}
		s.mockQueries.EXPECT().ListByMember(gomock.Any(), s.memberID).
			Return(items, nil).Times(1)

		rec := s.doJSON(http.MethodGet, "/bookings", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Serenity")
	})
}
