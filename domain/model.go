package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Property is the stored representation of a real-estate listing.
// Owner contact fields are flattened and copied at creation time, they
// are never re-synchronized with an owner master record.
type Property struct {
	ID                string    `bson:"_id" json:"id"`
	IDOwner           string    `bson:"idOwner" json:"idOwner"`
	Name              string    `bson:"name" json:"name"`
	Address           string    `bson:"addressProperty" json:"addressProperty"`
	Description       string    `bson:"description" json:"description"`
	SalePrice         *float64  `bson:"priceProperty,omitempty" json:"priceProperty,omitempty"`
	RentPrice         *float64  `bson:"rentProperty,omitempty" json:"rentProperty,omitempty"`
	Bedrooms          int       `bson:"bedrooms" json:"bedrooms"`
	Bathrooms         int       `bson:"bathrooms" json:"bathrooms"`
	Area              int       `bson:"area" json:"area"`
	PropertyType      string    `bson:"propertyType" json:"propertyType"`
	Images            []string  `bson:"images" json:"images"`
	Amenities         []string  `bson:"amenities" json:"amenities"`
	OwnerName         string    `bson:"ownerName" json:"ownerName"`
	OwnerEmail        string    `bson:"ownerEmail" json:"ownerEmail"`
	OwnerPhone        string    `bson:"ownerPhone" json:"ownerPhone"`
	OwnerWhatsApp     string    `bson:"ownerWhatsApp" json:"ownerWhatsApp"`
	OwnerCompany      string    `bson:"ownerCompany" json:"ownerCompany"`
	OwnerProfileImage string    `bson:"ownerProfileImage" json:"ownerProfileImage"`
	IsOwnerAgent      bool      `bson:"isOwnerAgent" json:"isOwnerAgent"`
	IsOwnerVerified   bool      `bson:"isOwnerVerified" json:"isOwnerVerified"`
	YearBuilt         int       `bson:"yearBuilt" json:"yearBuilt"`
	IsAvailable       bool      `bson:"isAvailable" json:"isAvailable"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
	// Image is kept for backward compatibility, it always mirrors
	// the first element of Images.
	Image string `bson:"image" json:"image"`
}

// OwnerContact is the nested owner sub-object of the API shape.
type OwnerContact struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	WhatsApp     string `json:"whatsApp"`
	Company      string `json:"company"`
	ProfileImage string `json:"profileImage"`
	IsAgent      bool   `json:"isAgent"`
	IsVerified   bool   `json:"isVerified"`
}

// PropertyResponse is the API-facing shape of a listing. It carries
// the same fields as Property with the owner contact nested.
type PropertyResponse struct {
	ID           string       `json:"id"`
	IDOwner      string       `json:"idOwner"`
	Name         string       `json:"name"`
	Address      string       `json:"addressProperty"`
	Description  string       `json:"description"`
	SalePrice    *float64     `json:"priceProperty,omitempty"`
	RentPrice    *float64     `json:"rentProperty,omitempty"`
	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    int          `json:"bathrooms"`
	Area         int          `json:"area"`
	PropertyType string       `json:"propertyType"`
	Images       []string     `json:"images"`
	Amenities    []string     `json:"amenities"`
	Owner        OwnerContact `json:"owner"`
	YearBuilt    int          `json:"yearBuilt"`
	IsAvailable  bool         `json:"isAvailable"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	Image        string       `json:"image"`
}

// CreateProperty is the creation request: every Property field except
// identity, timestamps and the derived legacy image. IsAvailable is a
// pointer so an omitted field defaults to true instead of false.
type CreateProperty struct {
	IDOwner           string   `json:"idOwner" validate:"required"`
	Name              string   `json:"name" validate:"required,max=200"`
	Address           string   `json:"addressProperty" validate:"required,max=300"`
	Description       string   `json:"description" validate:"required,max=1000"`
	SalePrice         *float64 `json:"priceProperty" validate:"omitempty,gt=0"`
	RentPrice         *float64 `json:"rentProperty" validate:"omitempty,gt=0"`
	Bedrooms          int      `json:"bedrooms" validate:"min=0"`
	Bathrooms         int      `json:"bathrooms" validate:"gt=0"`
	Area              int      `json:"area" validate:"gt=0"`
	PropertyType      string   `json:"propertyType" validate:"required"`
	Images            []string `json:"images" validate:"omitempty,min=3,max=10,dive,required"`
	Amenities         []string `json:"amenities"`
	OwnerName         string   `json:"ownerName" validate:"required,max=100"`
	OwnerEmail        string   `json:"ownerEmail" validate:"required,email"`
	OwnerPhone        string   `json:"ownerPhone" validate:"required,phone"`
	OwnerWhatsApp     string   `json:"ownerWhatsApp" validate:"omitempty,phone"`
	OwnerCompany      string   `json:"ownerCompany" validate:"max=100"`
	OwnerProfileImage string   `json:"ownerProfileImage"`
	IsOwnerAgent      bool     `json:"isOwnerAgent"`
	IsOwnerVerified   bool     `json:"isOwnerVerified"`
	YearBuilt         int      `json:"yearBuilt" validate:"min=1800"`
	IsAvailable       *bool    `json:"isAvailable"`
	// Image seeds Images when the list is empty.
	Image string `json:"image"`
}

// NewPropertyID returns a fresh collision-resistant identity token in
// the 32 character dashless form the catalog has always used.
func NewPropertyID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
