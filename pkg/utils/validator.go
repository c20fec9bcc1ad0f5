package utils

import (
	"log"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsObjectID reports whether value is a well-formed document identifier.
func IsObjectID(value string) bool {
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}

var objectIDValidator validator.Func = func(fl validator.FieldLevel) bool {
	return IsObjectID(fl.Field().String())
}

func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("objectid", objectIDValidator)
	} else {
		log.Fatalf("error register validation")
	}
}

// FirstValidationMessage maps the first failing field of a binding error to
// its request-specific message. Validation fails fast: only the first
// violation is reported.
func FirstValidationMessage(err error, messages map[string]string) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		if message, ok := messages[errs[0].Field()]; ok {
			return message
		}
	}
	return "Invalid request"
}
