// Package timezone keeps every timestamp the API renders in one configured zone.
//
//	now := timezone.Now()
//	formatted := timezone.Format(booking.PickupDateTime, time.RFC3339)
//	t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
// The zone comes from APP_TIMEZONE and must be an IANA name ("UTC",
// "America/Toronto"). It is loaded when the package is imported.
package timezone
