package dto

import (
	"net/http"
	"strconv"
	"tatzy/internal/domains/booking/model"
	"tatzy/shared/constant"
	gDto "tatzy/shared/dto"
	"time"
)

// BookingQueryRequest holds the raw list query string; values are validated before conversion.
type BookingQueryRequest struct {
	Page     string `query:"page"     validate:"omitempty,positiveint"`
	Limit    string `query:"limit"    validate:"omitempty,positiveint"`
	Status   string `query:"status"   validate:"omitempty,oneof=PENDING CONFIRMED ASSIGNED IN_PROGRESS COMPLETED CANCELLED NO_SHOW"`
	DriverID string `query:"driverId" validate:"omitempty,uuid"`
	FromDate string `query:"fromDate" validate:"omitempty,rfc3339"`
	ToDate   string `query:"toDate"   validate:"omitempty,rfc3339"`
}

func (q *BookingQueryRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	q.Page = query.Get(constant.RequestParamPage)
	q.Limit = query.Get(constant.RequestParamLimit)
	q.Status = query.Get(constant.RequestParamStatus)
	q.DriverID = query.Get(constant.RequestParamDriverID)
	q.FromDate = query.Get(constant.RequestParamFromDate)
	q.ToDate = query.Get(constant.RequestParamToDate)
}

func atoiOr(value string, fallback int) int {
	number, err := strconv.Atoi(value)
	if err != nil || number <= 0 {
		return fallback
	}

	return number
}

// ToQuery applies defaults, clamps the limit to the maximum and builds the filter.
// Newest bookings come first.
func (q *BookingQueryRequest) ToQuery() (gDto.QueryParams, gDto.FilterGroup) {
	params := gDto.QueryParams{
		Page:    atoiOr(q.Page, constant.DefaultValuePage),
		Limit:   min(atoiOr(q.Limit, constant.DefaultValueLimit), constant.MaxValueLimit),
		SortBy:  model.TableName + "." + model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	filters := []any{}

	if q.Status != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    q.Status,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if q.DriverID != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldDriverID,
			Value:    q.DriverID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if from, err := time.Parse(time.RFC3339, q.FromDate); err == nil {
		filters = append(filters, gDto.Filter{
			ArgName:  "from_date",
			Field:    model.FieldPickupDateTime,
			Value:    from.UTC(),
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if to, err := time.Parse(time.RFC3339, q.ToDate); err == nil {
		filters = append(filters, gDto.Filter{
			ArgName:  "to_date",
			Field:    model.FieldPickupDateTime,
			Value:    to.UTC(),
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		})
	}

	return params, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}
