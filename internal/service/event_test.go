package service

import (
	"testing"

	"github.com/Kal1-linux/CouponCo/internal/api/dto"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type EventServiceSuite struct {
	testutil.BaseServiceTestSuite
	service EventService
}

func TestEventService(t *testing.T) {
	suite.Run(t, new(EventServiceSuite))
}

func (s *EventServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.service = NewEventService(ServiceParams{
		Logger:    s.GetLogger(),
		Config:    s.GetConfig(),
		DB:        s.GetDB(),
		Cache:     s.GetCache(),
		EventRepo: stores.EventRepo,
	})
}

func (s *EventServiceSuite) TestCreateEvent() {
	resp, err := s.service.CreateEvent(s.GetContext(), &dto.CreateEventRequest{Name: "Black Friday"})
	s.NoError(err)
	s.Equal(1, resp.Total)
	s.Equal("Black Friday", resp.Items[0].Name)
}

func (s *EventServiceSuite) TestCreateEventDuplicate() {
	_, err := s.service.CreateEvent(s.GetContext(), &dto.CreateEventRequest{Name: "Black Friday"})
	s.NoError(err)

	_, err = s.service.CreateEvent(s.GetContext(), &dto.CreateEventRequest{Name: "Black Friday"})
	s.True(ierr.IsAlreadyExists(err))
}

func (s *EventServiceSuite) TestCreateEventValidation() {
	_, err := s.service.CreateEvent(s.GetContext(), &dto.CreateEventRequest{})
	s.True(ierr.IsValidation(err))
}

func (s *EventServiceSuite) TestListEventsSorted() {
	for _, name := range []string{"Cyber Monday", "Black Friday", "Summer Sale"} {
		_, err := s.service.CreateEvent(s.GetContext(), &dto.CreateEventRequest{Name: name})
		s.NoError(err)
	}

	resp, err := s.service.ListEvents(s.GetContext())
	s.NoError(err)
	s.Equal(3, resp.Total)
	s.Equal("Black Friday", resp.Items[0].Name)
	s.Equal("Summer Sale", resp.Items[2].Name)
}
