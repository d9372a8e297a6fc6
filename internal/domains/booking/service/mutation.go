package service

import (
	"context"
	"errors"
	"fmt"
	"tatzy/internal/domains/booking/model"
	"tatzy/internal/domains/booking/model/dto"
	"tatzy/shared"
	"tatzy/shared/constant"
	"tatzy/shared/failure"
	"tatzy/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) ensureExists(ctx context.Context, id string) error {
	exist, err := s.repo.Exist(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound(messageBookingNotFound) // nolint:wrapcheck
	}

	return nil
}

// Update writes only the fields present in req and returns the stored record.
// An explicit null driverId clears the assignment. Concurrent updates are last write wins.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureExists(ctx, id); err != nil {
		return res, err
	}

	if !req.IsEmpty() {
		updatedFields := shared.TransformFields(req, actor(ctx))

		if err = s.repo.Update(ctx, updatedFields, byID(id)); err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
				return res, failure.Validation(constant.ResponseErrorInvalidData, []failure.FieldError{ // nolint:wrapcheck
					{Field: "driverId", Message: messageDriverNotFound},
				})
			}

			log.Error().Err(err).Msg("failed to update booking")

			return res, fmt.Errorf("failed to update booking: %w", err)
		}

		s.invalidate(ctx, id)
	}

	booking, err := s.repo.Get(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated booking")

		return res, fmt.Errorf("failed to get updated booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(messageBookingNotFound) // nolint:wrapcheck
	}

	res.FromModel(booking, false)

	return res, nil
}

// Cancel soft deletes a booking whatever its current status. Cancelling twice still writes.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureExists(ctx, id); err != nil {
		return err
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor(ctx),
	}

	if err = s.repo.Update(ctx, updatedFields, byID(id)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}
