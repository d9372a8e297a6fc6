package model

import (
	"tatzy/shared/model"
	"time"
)

const (
	TableName       = "bookings"
	DriverTableName = "drivers"
	EntityName      = "booking"

	FieldID              = "id"
	FieldStatus          = "status"
	FieldDriverID        = "driver_id"
	FieldPickupDateTime  = "pickup_date_time"
	FieldDispatcherNotes = "dispatcher_notes"
	FieldFinalPrice      = "final_price"
	FieldCreatedAt       = "created_at"
)

const (
	StatusPending    = "PENDING"
	StatusConfirmed  = "CONFIRMED"
	StatusAssigned   = "ASSIGNED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
	StatusNoShow     = "NO_SHOW"
)

// Statuses lists every value a booking status may take. Any status may follow any other.
var Statuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusAssigned,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

type Booking struct {
	ID              string    `db:"id"`
	CustomerName    string    `db:"customer_name"`
	CustomerPhone   string    `db:"customer_phone"`
	CustomerEmail   *string   `db:"customer_email"`
	PickupAddress   string    `db:"pickup_address"`
	PickupLat       *float64  `db:"pickup_lat"`
	PickupLng       *float64  `db:"pickup_lng"`
	DropoffAddress  string    `db:"dropoff_address"`
	DropoffLat      *float64  `db:"dropoff_lat"`
	DropoffLng      *float64  `db:"dropoff_lng"`
	PickupDateTime  time.Time `db:"pickup_date_time"`
	CustomerNotes   *string   `db:"customer_notes"`
	Status          string    `db:"status"`
	DriverID        *string   `db:"driver_id"`
	DispatcherNotes *string   `db:"dispatcher_notes"`
	FinalPrice      *float64  `db:"final_price"`
	IsLongDistance  bool      `db:"is_long_distance"`
	IPAddress       *string   `db:"ip_address"`
	UserAgent       *string   `db:"user_agent"`
	Source          string    `db:"source"`

	// assigned driver, read through the join
	DriverName  *string `column:"name"  db:"driver_name"  table:"drivers"`
	DriverPhone *string `column:"phone" db:"driver_phone" table:"drivers"`
	DriverEmail *string `column:"email" db:"driver_email" table:"drivers"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN drivers ON drivers.id = bookings.driver_id"
}

// HasDriver reports whether the join found the referenced driver.
func (b Booking) HasDriver() bool {
	return b.DriverID != nil && b.DriverName != nil
}
