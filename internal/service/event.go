package service

import (
	"context"

	"github.com/Kal1-linux/CouponCo/internal/api/dto"
)

// EventService manages the admin-curated sale event list
type EventService interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.ListEventsResponse, error)
	ListEvents(ctx context.Context) (*dto.ListEventsResponse, error)
}

type eventService struct {
	ServiceParams
}

func NewEventService(params ServiceParams) EventService {
	return &eventService{ServiceParams: params}
}

func (s *eventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.ListEventsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.EventRepo.Create(ctx, req.ToEvent()); err != nil {
		return nil, err
	}
	return s.ListEvents(ctx)
}

func (s *eventService) ListEvents(ctx context.Context) (*dto.ListEventsResponse, error) {
	events, err := s.EventRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ListEventsResponse{Items: events, Total: len(events)}, nil
}
