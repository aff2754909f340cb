package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"properties_service/domain"
)

func price(value float64) *float64 {
	return &value
}

func validRequest() *domain.CreateProperty {
	return &domain.CreateProperty{
		IDOwner:      "owner-1",
		Name:         "Oceanfront Penthouse",
		Address:      "Cra 1 # 100-200, Barranquilla",
		Description:  "Penthouse with panoramic ocean views.",
		SalePrice:    price(1500000000),
		RentPrice:    price(8500000),
		Bedrooms:     4,
		Bathrooms:    5,
		Area:         450,
		PropertyType: "Penthouse",
		YearBuilt:    2020,
		Images:       []string{"a.jpg", "b.jpg", "c.jpg"},
		OwnerName:    "Maria Lopez",
		OwnerEmail:   "maria@realty.co",
		OwnerPhone:   "+57 300 123 4567",
	}
}

func fields(violations []FieldViolation) []string {
	names := make([]string, 0, len(violations))
	for _, violation := range violations {
		names = append(names, violation.Field)
	}
	return names
}

func messages(violations []FieldViolation) []string {
	texts := make([]string, 0, len(violations))
	for _, violation := range violations {
		texts = append(texts, violation.Message)
	}
	return texts
}

func TestValidRequestPasses(t *testing.T) {
	assert.Empty(t, NewPropertyValidator().Validate(validRequest()))
}

func TestBothPricesAbsentIsRejected(t *testing.T) {
	request := validRequest()
	request.SalePrice = nil
	request.RentPrice = nil

	violations := NewPropertyValidator().Validate(request)
	assert.Len(t, violations, 1)
	assert.Equal(t, "Either sale price or rent price must be specified", violations[0].Message)
}

func TestNonPositivePricesAreRejected(t *testing.T) {
	request := validRequest()
	request.SalePrice = price(0)
	request.RentPrice = price(-5)

	violations := NewPropertyValidator().Validate(request)
	assert.Contains(t, messages(violations), "Sale price must be greater than 0")
	assert.Contains(t, messages(violations), "Rent price must be greater than 0")
}

func TestTwoImagesAreRejected(t *testing.T) {
	request := validRequest()
	request.Images = []string{"a.jpg", "b.jpg"}

	violations := NewPropertyValidator().Validate(request)
	assert.Len(t, violations, 1)
	assert.Equal(t, "Property must have between 3 and 10 images", violations[0].Message)
}

func TestElevenImagesAreRejected(t *testing.T) {
	request := validRequest()
	request.Images = make([]string, 11)
	for i := range request.Images {
		request.Images[i] = "img.jpg"
	}

	violations := NewPropertyValidator().Validate(request)
	assert.Contains(t, messages(violations), "Property must have between 3 and 10 images")
}

func TestEmptyImageEntryIsRejected(t *testing.T) {
	request := validRequest()
	request.Images = []string{"a.jpg", "", "c.jpg"}

	violations := NewPropertyValidator().Validate(request)
	assert.Contains(t, messages(violations), "Image URL cannot be empty")
}

func TestEmptyImagesFallsBackToLegacyField(t *testing.T) {
	request := validRequest()
	request.Images = nil
	request.Image = "legacy.jpg"

	assert.Empty(t, NewPropertyValidator().Validate(request))
}

func TestNoImageSourceAtAllIsRejected(t *testing.T) {
	request := validRequest()
	request.Images = nil
	request.Image = ""

	violations := NewPropertyValidator().Validate(request)
	assert.Len(t, violations, 1)
	assert.Equal(t, "Image is required if Images list is empty", violations[0].Message)
}

func TestYearBuiltBounds(t *testing.T) {
	propertyValidator := NewPropertyValidator()

	request := validRequest()
	request.YearBuilt = 1799
	assert.Contains(t, messages(propertyValidator.Validate(request)),
		"Year built must be between 1800 and current year")

	// Evaluated against the wall clock, not a constant.
	request = validRequest()
	request.YearBuilt = time.Now().Year() + 1
	assert.Contains(t, messages(propertyValidator.Validate(request)),
		"Year built must be between 1800 and current year")

	request = validRequest()
	request.YearBuilt = time.Now().Year()
	assert.Empty(t, propertyValidator.Validate(request))
}

func TestOwnerContactRules(t *testing.T) {
	propertyValidator := NewPropertyValidator()

	request := validRequest()
	request.OwnerEmail = "not-an-email"
	assert.Contains(t, messages(propertyValidator.Validate(request)), "Valid owner email is required")

	request = validRequest()
	request.OwnerPhone = "abc"
	assert.Contains(t, messages(propertyValidator.Validate(request)), "Valid owner phone number is required")

	request = validRequest()
	request.OwnerWhatsApp = "123"
	assert.Contains(t, messages(propertyValidator.Validate(request)), "WhatsApp number format is invalid")

	request = validRequest()
	request.OwnerCompany = strings.Repeat("x", 101)
	assert.Contains(t, messages(propertyValidator.Validate(request)), "Company name must be less than 100 characters")

	request = validRequest()
	request.OwnerWhatsApp = "+57 (300) 123-4567"
	assert.Empty(t, propertyValidator.Validate(request))
}

func TestStructuralBounds(t *testing.T) {
	propertyValidator := NewPropertyValidator()

	request := validRequest()
	request.Name = strings.Repeat("n", 201)
	assert.Contains(t, messages(propertyValidator.Validate(request)),
		"Property name is required and must be less than 200 characters")

	request = validRequest()
	request.Bedrooms = -1
	assert.Contains(t, messages(propertyValidator.Validate(request)), "Bedrooms must be 0 or more")

	request = validRequest()
	request.Bathrooms = 0
	assert.Contains(t, messages(propertyValidator.Validate(request)), "Bathrooms must be greater than 0")

	request = validRequest()
	request.Area = 0
	assert.Contains(t, messages(propertyValidator.Validate(request)), "Area must be greater than 0")

	request = validRequest()
	request.PropertyType = ""
	assert.Contains(t, messages(propertyValidator.Validate(request)), "Property type is required")
}

// Every broken rule is reported, the gate never stops at the first
// failure.
func TestAllViolationsAreReportedTogether(t *testing.T) {
	request := validRequest()
	request.Name = ""
	request.SalePrice = nil
	request.RentPrice = nil
	request.Images = []string{"a.jpg", "b.jpg"}
	request.OwnerEmail = "broken"

	violations := NewPropertyValidator().Validate(request)
	assert.Len(t, violations, 4)

	names := fields(violations)
	assert.Contains(t, names, "Name")
	assert.Contains(t, names, "SalePrice")
	assert.Contains(t, names, "Images")
	assert.Contains(t, names, "OwnerEmail")
}
