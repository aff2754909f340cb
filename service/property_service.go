package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"properties_service/domain"
	"properties_service/validation"
)

type PropertyService struct {
	store     domain.PropertyStore
	cache     domain.PropertyCache
	validator *validation.PropertyValidator
	tracer    trace.Tracer
	logger    *logrus.Logger
}

func NewPropertyService(store domain.PropertyStore, cache domain.PropertyCache, validator *validation.PropertyValidator, tracer trace.Tracer, logger *logrus.Logger) *PropertyService {
	return &PropertyService{
		store:     store,
		cache:     cache,
		validator: validator,
		tracer:    tracer,
		logger:    logger,
	}
}

// Search returns the API shape of every available listing matching the
// filter. A store failure propagates, it is never reported as an empty
// result.
func (service *PropertyService) Search(ctx context.Context, filter domain.PropertyFilter) ([]*domain.PropertyResponse, error) {
	ctx, span := service.tracer.Start(ctx, "PropertyService.Search")
	defer span.End()

	properties, err := service.store.Search(ctx, filter)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		service.logger.Println("Database exception: ", err)
		return nil, err
	}

	responses := make([]*domain.PropertyResponse, 0, len(properties))
	for _, property := range properties {
		responses = append(responses, ToPropertyResponse(property))
	}
	return responses, nil
}

// Get resolves a listing by id, consulting the cache first. Absent
// listings resolve to domain.ErrPropertyNotFound.
func (service *PropertyService) Get(ctx context.Context, id string) (*domain.PropertyResponse, error) {
	ctx, span := service.tracer.Start(ctx, "PropertyService.Get")
	defer span.End()

	if service.cache != nil {
		cached, err := service.cache.Get(ctx, id)
		if err == nil {
			return ToPropertyResponse(cached), nil
		}
	}

	property, err := service.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		if err := service.cache.Post(ctx, property); err != nil {
			service.logger.Println("Cache exception: ", err)
		}
	}
	return ToPropertyResponse(property), nil
}

// Create runs the creation request through the validation gate,
// normalizes it into the stored shape and persists it. A non-nil
// violation list means the gate rejected the request and nothing was
// produced.
func (service *PropertyService) Create(ctx context.Context, request *domain.CreateProperty) (*domain.PropertyResponse, []validation.FieldViolation, error) {
	ctx, span := service.tracer.Start(ctx, "PropertyService.Create")
	defer span.End()

	if violations := service.validator.Validate(request); len(violations) > 0 {
		return nil, violations, nil
	}

	property := newProperty(request)
	created, err := service.store.Insert(ctx, property)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		service.logger.Println("Database exception: ", err)
		return nil, nil, err
	}

	if service.cache != nil {
		if err := service.cache.Post(ctx, created); err != nil {
			service.logger.Println("Cache exception: ", err)
		}
	}

	service.logger.Println("Property created successfully: ", created.ID)
	return ToPropertyResponse(created), nil, nil
}

// DeleteAll clears the collection. Seeding utility only, not reachable
// over HTTP.
func (service *PropertyService) DeleteAll(ctx context.Context) (int64, error) {
	ctx, span := service.tracer.Start(ctx, "PropertyService.DeleteAll")
	defer span.End()

	return service.store.DeleteAll(ctx)
}

// newProperty normalizes a validated creation request into the
// canonical stored record: fresh identity, resolved image list, legacy
// image derived from its head, timestamps stamped, everything else
// copied verbatim.
func newProperty(request *domain.CreateProperty) *domain.Property {
	now := time.Now().UTC()
	images := resolveImages(request.Images, request.Image)

	isAvailable := true
	if request.IsAvailable != nil {
		isAvailable = *request.IsAvailable
	}

	return &domain.Property{
		ID:                domain.NewPropertyID(),
		IDOwner:           request.IDOwner,
		Name:              request.Name,
		Address:           request.Address,
		Description:       request.Description,
		SalePrice:         request.SalePrice,
		RentPrice:         request.RentPrice,
		Bedrooms:          request.Bedrooms,
		Bathrooms:         request.Bathrooms,
		Area:              request.Area,
		PropertyType:      request.PropertyType,
		Images:            images,
		Amenities:         request.Amenities,
		OwnerName:         request.OwnerName,
		OwnerEmail:        request.OwnerEmail,
		OwnerPhone:        request.OwnerPhone,
		OwnerWhatsApp:     request.OwnerWhatsApp,
		OwnerCompany:      request.OwnerCompany,
		OwnerProfileImage: request.OwnerProfileImage,
		IsOwnerAgent:      request.IsOwnerAgent,
		IsOwnerVerified:   request.IsOwnerVerified,
		YearBuilt:         request.YearBuilt,
		IsAvailable:       isAvailable,
		CreatedAt:         now,
		UpdatedAt:         now,
		Image:             images[0],
	}
}
