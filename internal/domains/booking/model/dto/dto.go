package dto

import (
	"tatzy/internal/domains/booking/model"
	"tatzy/shared"
	gDto "tatzy/shared/dto"
	gModel "tatzy/shared/model"
	"tatzy/shared/phone"
	"tatzy/shared/timezone"
	"time"

	"github.com/google/uuid"
)

// CreateBookingRequest is the public intake form. Website is the honeypot: it
// carries no rule so a bot filling it still passes validation.
type CreateBookingRequest struct {
	CustomerName   string   `json:"customerName"   validate:"required,min=2,max=100"`
	CustomerPhone  string   `json:"customerPhone"  validate:"required,min=10,phone,mindigits=10"`
	CustomerEmail  string   `json:"customerEmail"  validate:"omitempty,email"`
	PickupAddress  string   `json:"pickupAddress"  validate:"required,min=5,max=500"`
	PickupLat      *float64 `json:"pickupLat"      validate:"omitempty,latitude"`
	PickupLng      *float64 `json:"pickupLng"      validate:"omitempty,longitude"`
	DropoffAddress string   `json:"dropoffAddress" validate:"required,min=5,max=500"`
	DropoffLat     *float64 `json:"dropoffLat"     validate:"omitempty,latitude"`
	DropoffLng     *float64 `json:"dropoffLng"     validate:"omitempty,longitude"`
	PickupDateTime string   `json:"pickupDateTime" validate:"required,rfc3339,future"`
	CustomerNotes  *string  `json:"customerNotes"  validate:"omitempty,max=1000"`
	Website        string   `json:"website"`
}

// IsSpam reports whether the honeypot field was filled.
func (c *CreateBookingRequest) IsSpam() bool {
	return c.Website != ""
}

// RequestMetadata is captured from the transport for abuse auditing.
type RequestMetadata struct {
	IPAddress string
	UserAgent string
	Source    string
}

func optional(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

// ToModel builds a pending booking. The request must already be validated.
func (c *CreateBookingRequest) ToModel(meta RequestMetadata, user string) (model.Booking, error) {
	pickupDateTime, err := time.Parse(time.RFC3339, c.PickupDateTime)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	now := timezone.Now()

	return model.Booking{
		ID:             uuid.NewString(),
		CustomerName:   c.CustomerName,
		CustomerPhone:  phone.Normalize(c.CustomerPhone),
		CustomerEmail:  optional(c.CustomerEmail),
		PickupAddress:  c.PickupAddress,
		PickupLat:      c.PickupLat,
		PickupLng:      c.PickupLng,
		DropoffAddress: c.DropoffAddress,
		DropoffLat:     c.DropoffLat,
		DropoffLng:     c.DropoffLng,
		PickupDateTime: pickupDateTime.UTC(),
		CustomerNotes:  c.CustomerNotes,
		Status:         model.StatusPending,
		IsLongDistance: false, // distance lookup is not integrated yet
		IPAddress:      optional(meta.IPAddress),
		UserAgent:      optional(meta.UserAgent),
		Source:         meta.Source,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// CreateBookingResponse is all a public caller ever sees of its booking.
type CreateBookingResponse struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	PickupDateTime string `json:"pickupDateTime"`
}

func (r *CreateBookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.Status = booking.Status
	r.PickupDateTime = timezone.Format(booking.PickupDateTime, time.RFC3339)
}

type CreateOutcome int

const (
	OutcomeCreated CreateOutcome = iota + 1
	// OutcomeRejected is a silent spam rejection: nothing was stored.
	OutcomeRejected
)

// CreateBookingResult carries the public response and how it was produced.
// Both outcomes render the same response shape.
type CreateBookingResult struct {
	Booking CreateBookingResponse
	Outcome CreateOutcome
}

func (r CreateBookingResult) Silent() bool {
	return r.Outcome == OutcomeRejected
}

type UpdateBookingRequest struct {
	Status          *string               `db:"status"           json:"status"          validate:"omitempty,oneof=PENDING CONFIRMED ASSIGNED IN_PROGRESS COMPLETED CANCELLED NO_SHOW"`
	DriverID        gDto.Nullable[string] `db:"driver_id"        json:"driverId"        validate:"omitnil,uuid"`
	DispatcherNotes *string               `db:"dispatcher_notes" json:"dispatcherNotes" validate:"omitempty,max=2000"`
	FinalPrice      *float64              `db:"final_price"      json:"finalPrice"      validate:"omitempty,gt=0"`
}

// IsEmpty reports whether no field was present in the payload.
func (u *UpdateBookingRequest) IsEmpty() bool {
	return u.Status == nil && !u.DriverID.IsSet() && u.DispatcherNotes == nil && u.FinalPrice == nil
}

type DriverResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email *string `json:"email,omitempty"`
}

type BookingResponse struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	CustomerEmail   *string         `json:"customerEmail"`
	PickupAddress   string          `json:"pickupAddress"`
	PickupLat       *float64        `json:"pickupLat"`
	PickupLng       *float64        `json:"pickupLng"`
	DropoffAddress  string          `json:"dropoffAddress"`
	DropoffLat      *float64        `json:"dropoffLat"`
	DropoffLng      *float64        `json:"dropoffLng"`
	PickupDateTime  string          `json:"pickupDateTime"`
	CustomerNotes   *string         `json:"customerNotes"`
	Status          string          `json:"status"`
	DriverID        *string         `json:"driverId"`
	DispatcherNotes *string         `json:"dispatcherNotes"`
	FinalPrice      *float64        `json:"finalPrice"`
	IsLongDistance  bool            `json:"isLongDistance"`
	IPAddress       *string         `json:"ipAddress"`
	UserAgent       *string         `json:"userAgent"`
	Source          string          `json:"source"`
	AssignedDriver  *DriverResponse `json:"assignedDriver"`
	gDto.Metadata
}

// FromModel copies the booking. withEmail controls whether the driver's email is exposed.
func (r *BookingResponse) FromModel(booking model.Booking, withEmail bool) {
	r.ID = booking.ID
	r.CustomerName = booking.CustomerName
	r.CustomerPhone = booking.CustomerPhone
	r.CustomerEmail = booking.CustomerEmail
	r.PickupAddress = booking.PickupAddress
	r.PickupLat = booking.PickupLat
	r.PickupLng = booking.PickupLng
	r.DropoffAddress = booking.DropoffAddress
	r.DropoffLat = booking.DropoffLat
	r.DropoffLng = booking.DropoffLng
	r.PickupDateTime = timezone.Format(booking.PickupDateTime, time.RFC3339)
	r.CustomerNotes = booking.CustomerNotes
	r.Status = booking.Status
	r.DriverID = booking.DriverID
	r.DispatcherNotes = booking.DispatcherNotes
	r.FinalPrice = booking.FinalPrice
	r.IsLongDistance = booking.IsLongDistance
	r.IPAddress = booking.IPAddress
	r.UserAgent = booking.UserAgent
	r.Source = booking.Source
	r.Metadata.FromModel(booking.Metadata)

	r.AssignedDriver = nil
	if booking.HasDriver() {
		r.AssignedDriver = &DriverResponse{
			ID:    *booking.DriverID,
			Name:  *booking.DriverName,
			Phone: deref(booking.DriverPhone),
		}

		if withEmail {
			r.AssignedDriver.Email = booking.DriverEmail
		}
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type GetBookingsResponse struct {
	Items      []BookingResponse `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, total int, params gDto.QueryParams) {
	r.Pagination = Pagination{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: shared.CalculateTotalPage(total, params.Limit),
	}

	r.Items = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod, false)
	}
}
