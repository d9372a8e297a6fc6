package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"tatzy/config"
	"tatzy/infras/otel"
	"tatzy/internal/domains/booking/model"
	"tatzy/internal/domains/booking/model/dto"
	"tatzy/internal/domains/booking/repository"
	"tatzy/shared"
	"tatzy/shared/cache"
	"tatzy/shared/constant"
	gDto "tatzy/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"

	messageBookingNotFound = "Réservation non trouvée"
	messageDriverNotFound  = "Chauffeur introuvable"
)

// Booking covers public intake and the dispatcher's query and mutation operations.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, meta dto.RequestMetadata) (dto.CreateBookingResult, error)
	GetAll(ctx context.Context, req dto.BookingQueryRequest) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

// actor names who performs a mutation; admin when no dispatcher identity is attached.
func actor(ctx context.Context) string {
	if user, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && user != "" {
		return user
	}

	return constant.ContextAdmin
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save booking cache")
	}
}

// invalidate drops every cached read a write to id could have made stale.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if id != "" {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
}
