package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"properties_service/domain"
)

var phoneRegex = regexp.MustCompile(`^[+]?[0-9 \-()]{7,20}$`)

// FieldViolation is one broken creation rule. The gate reports every
// violation it finds so a caller can correct all fields in one round
// trip.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type PropertyValidator struct {
	validate *validator.Validate
}

func NewPropertyValidator() *PropertyValidator {
	validate := validator.New()
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	validate.RegisterStructValidation(createPropertyRules, domain.CreateProperty{})
	return &PropertyValidator{
		validate: validate,
	}
}

// Validate runs every rule against the creation request and returns
// the full violation list, nil when the request is valid. It never
// mutates the request and never touches storage.
func (propertyValidator *PropertyValidator) Validate(request *domain.CreateProperty) []FieldViolation {
	err := propertyValidator.validate.Struct(request)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldViolation{{Field: "", Message: err.Error()}}
	}

	violations := make([]FieldViolation, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		violations = append(violations, FieldViolation{
			Field:   fieldError.Field(),
			Message: messageFor(fieldError),
		})
	}
	return violations
}

// createPropertyRules covers the rules tags cannot express: the
// at-least-one-price invariant, the wall-clock upper bound on
// yearBuilt and the legacy image fallback when the image list is
// empty.
func createPropertyRules(sl validator.StructLevel) {
	request := sl.Current().Interface().(domain.CreateProperty)

	if request.SalePrice == nil && request.RentPrice == nil {
		sl.ReportError(request.SalePrice, "SalePrice", "SalePrice", "one_price_required", "")
	}
	if request.YearBuilt > time.Now().Year() {
		sl.ReportError(request.YearBuilt, "YearBuilt", "YearBuilt", "year_built_range", "")
	}
	if len(request.Images) == 0 && request.Image == "" {
		sl.ReportError(request.Image, "Image", "Image", "legacy_image_required", "")
	}
}

func messageFor(fieldError validator.FieldError) string {
	field := fieldError.Field()
	if strings.HasPrefix(field, "Images[") {
		return "Image URL cannot be empty"
	}

	switch field {
	case "IDOwner":
		return "Owner ID is required"
	case "Name":
		return "Property name is required and must be less than 200 characters"
	case "Address":
		return "Address is required and must be less than 300 characters"
	case "Description":
		return "Description is required and must be less than 1000 characters"
	case "SalePrice":
		if fieldError.Tag() == "one_price_required" {
			return "Either sale price or rent price must be specified"
		}
		return "Sale price must be greater than 0"
	case "RentPrice":
		return "Rent price must be greater than 0"
	case "Bedrooms":
		return "Bedrooms must be 0 or more"
	case "Bathrooms":
		return "Bathrooms must be greater than 0"
	case "Area":
		return "Area must be greater than 0"
	case "PropertyType":
		return "Property type is required"
	case "YearBuilt":
		return "Year built must be between 1800 and current year"
	case "Images":
		return "Property must have between 3 and 10 images"
	case "OwnerName":
		return "Owner name is required and must be less than 100 characters"
	case "OwnerEmail":
		return "Valid owner email is required"
	case "OwnerPhone":
		return "Valid owner phone number is required"
	case "OwnerWhatsApp":
		return "WhatsApp number format is invalid"
	case "OwnerCompany":
		return "Company name must be less than 100 characters"
	case "Image":
		return "Image is required if Images list is empty"
	}
	return fieldError.Error()
}
