package validator

import (
	"log"

	"letify_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("adult", validateAdult)
	mustRegister("is-property-type", validatePropertyType)
	mustRegister("is-request-type", validateRequestType)
	mustRegister("is-mailing-category", validateMailingCategory)
	mustRegister("is-booking-status", validateBookingStatus)
}

func validateAdult(fl validator.FieldLevel) bool {
	return fl.Field().Int() >= models.MinimumAge
}

// The enum rules accept empty values; 'required' handles presence.

func validatePropertyType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := models.NormalizePropertyType(value)
	return ok
}

func validateRequestType(fl validator.FieldLevel) bool {
	switch models.RequestType(fl.Field().String()) {
	case "", models.RequestTypeService, models.RequestTypePurchase:
		return true
	}
	return false
}

func validateMailingCategory(fl validator.FieldLevel) bool {
	switch models.MailingCategory(fl.Field().String()) {
	case "", models.MailingCategoryProperty, models.MailingCategoryService:
		return true
	}
	return false
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.IsBookingStatus(value)
}
