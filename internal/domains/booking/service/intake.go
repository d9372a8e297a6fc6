package service

import (
	"context"
	"fmt"
	"tatzy/internal/domains/booking/model/dto"
	"tatzy/shared/constant"
	"tatzy/shared/failure"

	"github.com/rs/zerolog/log"
)

// Create persists a validated public booking. A filled honeypot yields the same
// response as a real booking but nothing is stored.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, meta dto.RequestMetadata) (res dto.CreateBookingResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel(meta, constant.ContextGuest)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.Validation(constant.ResponseErrorInvalidData, []failure.FieldError{ // nolint:wrapcheck
			{Field: "pickupDateTime", Message: "Date/heure invalide"},
		})
	}

	res.Booking.FromModel(booking)

	if req.IsSpam() {
		scope.AddEvent("honeypot")
		log.Warn().Str("ip", meta.IPAddress).Str("source", meta.Source).Msg("honeypot filled, booking silently dropped")

		res.Outcome = dto.OutcomeRejected

		return res, nil
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return dto.CreateBookingResult{}, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidate(ctx, "")

	res.Outcome = dto.OutcomeCreated

	return res, nil
}
