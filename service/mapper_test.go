package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"properties_service/domain"
)

func storedProperty() *domain.Property {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Property{
		ID:                "abc123",
		IDOwner:           "owner-1",
		Name:              "Oceanfront Penthouse",
		Address:           "Cra 1 # 100-200, Barranquilla",
		Description:       "Penthouse with ocean views.",
		SalePrice:         price(1500000000),
		RentPrice:         price(8500000),
		Bedrooms:          4,
		Bathrooms:         5,
		Area:              450,
		PropertyType:      "Penthouse",
		Images:            []string{"a.jpg", "b.jpg", "c.jpg"},
		Amenities:         []string{"pool", "gym"},
		OwnerName:         "Maria Lopez",
		OwnerEmail:        "maria@realty.co",
		OwnerPhone:        "+57 300 123 4567",
		OwnerWhatsApp:     "+57 300 123 4567",
		OwnerCompany:      "Luxury Realty",
		OwnerProfileImage: "maria.jpg",
		IsOwnerAgent:      true,
		IsOwnerVerified:   true,
		YearBuilt:         2020,
		IsAvailable:       true,
		CreatedAt:         now,
		UpdatedAt:         now,
		Image:             "a.jpg",
	}
}

func TestToPropertyResponseNestsOwnerContact(t *testing.T) {
	response := ToPropertyResponse(storedProperty())

	assert.Equal(t, domain.OwnerContact{
		Name:         "Maria Lopez",
		Email:        "maria@realty.co",
		Phone:        "+57 300 123 4567",
		WhatsApp:     "+57 300 123 4567",
		Company:      "Luxury Realty",
		ProfileImage: "maria.jpg",
		IsAgent:      true,
		IsVerified:   true,
	}, response.Owner)
}

func TestToPropertyResponseDerivesLegacyImage(t *testing.T) {
	response := ToPropertyResponse(storedProperty())

	assert.Equal(t, "a.jpg", response.Image)
	assert.Equal(t, response.Images[0], response.Image)
}

// Even a record that slipped past normalization with an empty image
// list maps gracefully, substituting the legacy field.
func TestToPropertyResponseSubstitutesLegacyImageWhenImagesEmpty(t *testing.T) {
	property := storedProperty()
	property.Images = nil
	property.Image = "legacy.jpg"

	response := ToPropertyResponse(property)
	assert.Equal(t, []string{"legacy.jpg"}, response.Images)
	assert.Equal(t, "legacy.jpg", response.Image)
}

func TestToPropertyResponseReplacesNilAmenities(t *testing.T) {
	property := storedProperty()
	property.Amenities = nil

	response := ToPropertyResponse(property)
	assert.NotNil(t, response.Amenities)
	assert.Empty(t, response.Amenities)
}

// Store -> API -> Store is the identity on every field, the derived
// legacy image included since it already mirrors images[0].
func TestMapperRoundTrip(t *testing.T) {
	property := storedProperty()

	roundTripped := FromPropertyResponse(ToPropertyResponse(property))
	assert.Equal(t, property, roundTripped)
}

func TestMapperRoundTripRederivesLegacyImage(t *testing.T) {
	property := storedProperty()
	property.Image = "stale.jpg"

	roundTripped := FromPropertyResponse(ToPropertyResponse(property))
	assert.Equal(t, "a.jpg", roundTripped.Image)
}

// Mapping is idempotent on the image fields: re-deriving always lands
// on the head of the resolved list.
func TestToPropertyResponseIdempotentOnImages(t *testing.T) {
	property := storedProperty()
	property.Images = nil
	property.Image = "legacy.jpg"

	once := ToPropertyResponse(property)
	twice := ToPropertyResponse(FromPropertyResponse(once))
	assert.Equal(t, once.Images, twice.Images)
	assert.Equal(t, once.Images[0], twice.Image)
}
