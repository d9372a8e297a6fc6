package validator_test

import (
	"net/http"
	"strings"
	"tatzy/shared/dto"
	"tatzy/shared/failure"
	"tatzy/shared/validator"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ValidTestStruct struct {
	Name     string  `validate:"required,min=2,max=100"     json:"customerName"`
	Phone    string  `validate:"required,phone,mindigits=10" json:"customerPhone"`
	Email    string  `validate:"omitempty,email"            json:"customerEmail"`
	Pickup   string  `validate:"required,rfc3339,future"    json:"pickupDateTime"`
	Price    float64 `validate:"omitempty,gt=0"             json:"finalPrice"`
	Category string  `validate:"omitempty,oneof=PENDING CANCELLED" json:"status"`
}

type nullableStruct struct {
	DriverID dto.Nullable[string] `validate:"omitnil,uuid" json:"driverId"`
}

type queryStruct struct {
	Page string `validate:"omitempty,positiveint" query:"page"`
}

func tomorrow() string {
	return time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
}

func valid() ValidTestStruct {
	return ValidTestStruct{
		Name:   "Jean Dupont",
		Phone:  "(514) 555-1234",
		Pickup: tomorrow(),
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	require.Error(t, err)

	fields := map[string]string{}
	for _, field := range failure.GetFieldErrors(err) {
		fields[field.Field] = field.Message
	}

	return fields
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ValidTestStruct)
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid struct",
			mutate: func(*ValidTestStruct) {},
		},
		{
			name:      "name too short",
			mutate:    func(v *ValidTestStruct) { v.Name = "J" },
			wantField: "customerName",
			wantMsg:   "Le nom doit contenir au moins 2 caractères",
		},
		{
			name:      "phone with letters",
			mutate:    func(v *ValidTestStruct) { v.Phone = "514-555-CALL" },
			wantField: "customerPhone",
			wantMsg:   "Format de numéro invalide",
		},
		{
			name:      "phone with too few digits",
			mutate:    func(v *ValidTestStruct) { v.Phone = "(514) 555-12" },
			wantField: "customerPhone",
			wantMsg:   "Le numéro doit contenir au moins 10 chiffres",
		},
		{
			name:      "invalid email",
			mutate:    func(v *ValidTestStruct) { v.Email = "not-an-email" },
			wantField: "customerEmail",
			wantMsg:   "Adresse email invalide",
		},
		{
			name:   "empty email is allowed",
			mutate: func(v *ValidTestStruct) { v.Email = "" },
		},
		{
			name:      "unparseable date",
			mutate:    func(v *ValidTestStruct) { v.Pickup = "demain matin" },
			wantField: "pickupDateTime",
			wantMsg:   "Date/heure invalide",
		},
		{
			name: "past date",
			mutate: func(v *ValidTestStruct) {
				v.Pickup = time.Now().Add(-24 * time.Hour).Format(time.RFC3339)
			},
			wantField: "pickupDateTime",
			wantMsg:   "La date doit être dans le futur",
		},
		{
			name: "fractional seconds with offset",
			mutate: func(v *ValidTestStruct) {
				loc := time.FixedZone("EST", -5*60*60)
				v.Pickup = time.Now().Add(48 * time.Hour).In(loc).Format(time.RFC3339Nano)
			},
		},
		{
			name:      "negative price",
			mutate:    func(v *ValidTestStruct) { v.Price = -3 },
			wantField: "finalPrice",
			wantMsg:   "Le prix doit être positif",
		},
		{
			name:      "unknown status uses generic message",
			mutate:    func(v *ValidTestStruct) { v.Category = "LOST" },
			wantField: "status",
			wantMsg:   "status doit être l'une des valeurs: PENDING CANCELLED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := valid()
			tt.mutate(&data)

			err := validator.ValidateStruct(&data)

			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, "Données invalides", err.Error())
			assert.Equal(t, tt.wantMsg, fieldsOf(t, err)[tt.wantField])
		})
	}
}

func TestValidateStruct_ReportsEveryField(t *testing.T) {
	err := validator.ValidateStruct(&ValidTestStruct{Email: "bad"})

	fields := fieldsOf(t, err)

	assert.Len(t, fields, 4)
	assert.Contains(t, fields, "customerName")
	assert.Contains(t, fields, "customerPhone")
	assert.Contains(t, fields, "customerEmail")
	assert.Contains(t, fields, "pickupDateTime")
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid uuid", field: "3b241101-e2bb-4255-8caf-4136c566a962", tag: "uuid", expectError: false},
		{name: "invalid uuid", field: "42", tag: "uuid", expectError: true},
		{name: "positive int", field: "2", tag: "positiveint", expectError: false},
		{name: "zero is not positive", field: "0", tag: "positiveint", expectError: true},
		{name: "decimal is not an int", field: "1.5", tag: "positiveint", expectError: true},
		{name: "valid oneof", field: "ASSIGNED", tag: "oneof=PENDING ASSIGNED", expectError: false},
		{name: "invalid oneof", field: "DONE", tag: "oneof=PENDING ASSIGNED", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		jsonBody  string
		wantCode  int
		wantMsg   string
		wantField string
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"customerName":"Jean Dupont","customerPhone":"(514) 555-1234","pickupDateTime":"` + tomorrow() + `"}`,
		},
		{
			name:      "type mismatch is a field error",
			jsonBody:  `{"customerName":42,"customerPhone":"(514) 555-1234","pickupDateTime":"` + tomorrow() + `"}`,
			wantCode:  http.StatusBadRequest,
			wantMsg:   "Données invalides",
			wantField: "customerName",
		},
		{
			name:     "malformed JSON",
			jsonBody: `{"customerName":"Jean",`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Corps de requête invalide",
		},
		{
			name:     "empty body",
			jsonBody: ``,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Corps de requête invalide",
		},
		{
			name:      "empty object",
			jsonBody:  `{}`,
			wantCode:  http.StatusBadRequest,
			wantMsg:   "Données invalides",
			wantField: "customerName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data ValidTestStruct

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.Equal(t, tt.wantMsg, err.Error())

			if tt.wantField != "" {
				assert.Contains(t, fieldsOf(t, err), tt.wantField)
			} else {
				assert.Empty(t, failure.GetFieldErrors(err))
			}
		})
	}
}

func TestValidate_TypeMismatchNotDuplicated(t *testing.T) {
	var data ValidTestStruct

	err := validator.Validate(strings.NewReader(`{"customerName":42}`), &data)
	require.Error(t, err)

	count := 0
	for _, field := range failure.GetFieldErrors(err) {
		if field.Field == "customerName" {
			count++
			assert.Equal(t, "Type invalide", field.Message)
		}
	}

	assert.Equal(t, 1, count)
}

func TestValidate_Nullable(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{name: "absent", body: `{}`},
		{name: "null clears", body: `{"driverId":null}`},
		{name: "valid id", body: `{"driverId":"3b241101-e2bb-4255-8caf-4136c566a962"}`},
		{name: "invalid id", body: `{"driverId":"driver-1"}`, expectError: true},
		{name: "empty id", body: `{"driverId":""}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data nullableStruct

			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError {
				assert.Equal(t, "Identifiant de chauffeur invalide", fieldsOf(t, err)["driverId"])
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateQuery(t *testing.T) {
	assert.NoError(t, validator.ValidateQuery(&queryStruct{Page: "3"}))

	err := validator.ValidateQuery(&queryStruct{Page: "-1"})

	assert.Equal(t, "Paramètres invalides", err.Error())
	assert.Equal(t, "page doit être un entier positif", fieldsOf(t, err)["page"])
}
