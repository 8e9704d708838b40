package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// InitValidator initialise le validateur et ses règles personnalisées
func InitValidator() {
	validate = validator.New()
	validate.RegisterValidation("username", validateUsername)
}

// GetValidator retourne l'instance partagée du validateur
func GetValidator() *validator.Validate {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// validateUsername lettres, chiffres et tiret bas, longueur 3 à 50
func validateUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if len(username) < 3 || len(username) > 50 {
		return false
	}
	matched, _ := regexp.MatchString("^[a-zA-Z0-9_]+$", username)
	return matched
}

// ValidateStruct valide une structure annotée
func ValidateStruct(s interface{}) error {
	v := GetValidator()
	if err := v.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError traduit les erreurs de validation en messages lisibles
func formatValidationError(err error) error {
	var messages []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			tag := e.Tag()
			param := e.Param()

			var message string
			switch tag {
			case "required":
				message = fmt.Sprintf("%s est obligatoire", field)
			case "min":
				message = fmt.Sprintf("%s doit contenir au moins %s caractères", field, param)
			case "max":
				message = fmt.Sprintf("%s ne doit pas dépasser %s caractères", field, param)
			case "email":
				message = fmt.Sprintf("%s doit être une adresse email valide", field)
			case "oneof":
				message = fmt.Sprintf("%s doit être parmi: %s", field, param)
			case "username":
				message = fmt.Sprintf("%s ne peut contenir que lettres, chiffres et tiret bas, longueur 3 à 50", field)
			default:
				message = fmt.Sprintf("%s invalide: %s", field, tag)
			}

			messages = append(messages, message)
		}
	}

	if len(messages) > 0 {
		return fmt.Errorf("%s", strings.Join(messages, "; "))
	}

	return err
}
