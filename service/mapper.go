package application

import "properties_service/domain"

// resolveImages picks the canonical image list: the multi-image list
// verbatim when present, otherwise the legacy single-image field
// wrapped in a one-element list. Both the creation path and the read
// mapping funnel through here so the fallback exists exactly once.
func resolveImages(images []string, legacyImage string) []string {
	if len(images) > 0 {
		return images
	}
	return []string{legacyImage}
}

// ToPropertyResponse converts the stored shape to the API shape: the
// flat owner contact fields become a nested sub-object and the legacy
// image is re-derived from the resolved image list. The image fallback
// is defensive here, normalization already guarantees a non-empty list
// for records created through the service.
func ToPropertyResponse(property *domain.Property) *domain.PropertyResponse {
	images := resolveImages(property.Images, property.Image)

	amenities := property.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &domain.PropertyResponse{
		ID:           property.ID,
		IDOwner:      property.IDOwner,
		Name:         property.Name,
		Address:      property.Address,
		Description:  property.Description,
		SalePrice:    property.SalePrice,
		RentPrice:    property.RentPrice,
		Bedrooms:     property.Bedrooms,
		Bathrooms:    property.Bathrooms,
		Area:         property.Area,
		PropertyType: property.PropertyType,
		Images:       images,
		Amenities:    amenities,
		Owner: domain.OwnerContact{
			Name:         property.OwnerName,
			Email:        property.OwnerEmail,
			Phone:        property.OwnerPhone,
			WhatsApp:     property.OwnerWhatsApp,
			Company:      property.OwnerCompany,
			ProfileImage: property.OwnerProfileImage,
			IsAgent:      property.IsOwnerAgent,
			IsVerified:   property.IsOwnerVerified,
		},
		YearBuilt:   property.YearBuilt,
		IsAvailable: property.IsAvailable,
		CreatedAt:   property.CreatedAt,
		UpdatedAt:   property.UpdatedAt,
		Image:       images[0],
	}
}

// FromPropertyResponse converts the API shape back to the stored
// shape, flattening the nested owner contact. Round-tripping a record
// through both directions is the identity on every field except the
// derived legacy image, which ends up as the first resolved image.
func FromPropertyResponse(response *domain.PropertyResponse) *domain.Property {
	images := resolveImages(response.Images, response.Image)

	return &domain.Property{
		ID:                response.ID,
		IDOwner:           response.IDOwner,
		Name:              response.Name,
		Address:           response.Address,
		Description:       response.Description,
		SalePrice:         response.SalePrice,
		RentPrice:         response.RentPrice,
		Bedrooms:          response.Bedrooms,
		Bathrooms:         response.Bathrooms,
		Area:              response.Area,
		PropertyType:      response.PropertyType,
		Images:            images,
		Amenities:         response.Amenities,
		OwnerName:         response.Owner.Name,
		OwnerEmail:        response.Owner.Email,
		OwnerPhone:        response.Owner.Phone,
		OwnerWhatsApp:     response.Owner.WhatsApp,
		OwnerCompany:      response.Owner.Company,
		OwnerProfileImage: response.Owner.ProfileImage,
		IsOwnerAgent:      response.Owner.IsAgent,
		IsOwnerVerified:   response.Owner.IsVerified,
		YearBuilt:         response.YearBuilt,
		IsAvailable:       response.IsAvailable,
		CreatedAt:         response.CreatedAt,
		UpdatedAt:         response.UpdatedAt,
		Image:             images[0],
	}
}
