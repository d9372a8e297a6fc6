package validator

import (
	"errors"
	"strings"
	"tatzy/shared/failure"

	val "github.com/go-playground/validator/v10"
)

const messageTypeMismatch = "Type invalide"

var (
	// fieldMessages override the generic message for a field and tag pair.
	fieldMessages = map[string]string{
		"customerName.required":   "Le nom est requis",
		"customerName.min":        "Le nom doit contenir au moins 2 caractères",
		"customerName.max":        "Le nom est trop long",
		"customerPhone.required":  "Le numéro de téléphone est requis",
		"customerPhone.min":       "Le numéro doit contenir au moins 10 chiffres",
		"customerPhone.mindigits": "Le numéro doit contenir au moins 10 chiffres",
		"customerPhone.phone":     "Format de numéro invalide",
		"customerEmail.email":     "Adresse email invalide",
		"pickupAddress.required":  "L'adresse de départ est requise",
		"pickupAddress.min":       "L'adresse est trop courte",
		"pickupAddress.max":       "L'adresse est trop longue",
		"dropoffAddress.required": "L'adresse de destination est requise",
		"dropoffAddress.min":      "L'adresse est trop courte",
		"dropoffAddress.max":      "L'adresse est trop longue",
		"pickupDateTime.required": "La date de prise en charge est requise",
		"pickupDateTime.rfc3339":  "Date/heure invalide",
		"pickupDateTime.future":   "La date doit être dans le futur",
		"customerNotes.max":       "Notes trop longues",
		"dispatcherNotes.max":     "Notes trop longues",
		"finalPrice.gt":           "Le prix doit être positif",
		"driverId.uuid":           "Identifiant de chauffeur invalide",
	}

	messages = map[string]string{
		"required":    "{field} est requis",
		"gt":          "{field} doit être supérieur à {param}",
		"gte":         "{field} doit être supérieur ou égal à {param}",
		"lte":         "{field} doit être inférieur ou égal à {param}",
		"oneof":       "{field} doit être l'une des valeurs: {param}",
		"max":         "{field} doit contenir au plus {param} caractères",
		"min":         "{field} doit contenir au moins {param} caractères",
		"email":       "{field} doit être une adresse email valide",
		"uuid":        "{field} doit être un identifiant valide",
		"latitude":    "{field} doit être une latitude valide",
		"longitude":   "{field} doit être une longitude valide",
		"rfc3339":     "{field} doit être une date ISO 8601 valide",
		"future":      "{field} doit être dans le futur",
		"positiveint": "{field} doit être un entier positif",
		"phone":       "{field} contient des caractères invalides",
		"mindigits":   "{field} doit contenir au moins {param} chiffres",
	}
)

// fieldPath drops the root struct name from the namespace: "Req.pickup.lat" -> "pickup.lat".
func fieldPath(valErr val.FieldError) string {
	namespace := valErr.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return valErr.Field()
}

func render(valErr val.FieldError) string {
	path := fieldPath(valErr)

	if msg, ok := fieldMessages[path+"."+valErr.Tag()]; ok {
		return msg
	}

	msg, ok := messages[valErr.Tag()]
	if !ok {
		msg = "{field} est invalide"
	}

	msg = strings.ReplaceAll(msg, "{field}", path)
	msg = strings.ReplaceAll(msg, "{param}", valErr.Param())

	return msg
}

func fieldErrors(err error) []failure.FieldError {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return nil
	}

	fields := make([]failure.FieldError, 0, len(valErrors))
	for _, valErr := range valErrors {
		fields = append(fields, failure.FieldError{
			Field:   fieldPath(valErr),
			Message: render(valErr),
		})
	}

	return fields
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) && len(valErrors) > 0 {
		return render(valErrors[0])
	}

	return err.Error()
}
