package application

import (
	"context"

	"github.com/sirupsen/logrus"
	"properties_service/domain"
)

// DataSeeder replaces the collection contents with the sample catalog.
// It runs through the regular creation path so seeded records pass the
// same gate and normalization as submitted ones.
type DataSeeder struct {
	service *PropertyService
	logger  *logrus.Logger
}

func NewDataSeeder(service *PropertyService, logger *logrus.Logger) *DataSeeder {
	return &DataSeeder{
		service: service,
		logger:  logger,
	}
}

func (seeder *DataSeeder) Seed(ctx context.Context) error {
	count, err := seeder.service.DeleteAll(ctx)
	if err != nil {
		return err
	}
	seeder.logger.Printf("Cleared %d existing properties", count)

	for _, request := range sampleProperties() {
		created, violations, err := seeder.service.Create(ctx, request)
		if err != nil {
			return err
		}
		if len(violations) > 0 {
			seeder.logger.Printf("Skipping invalid sample %q: %v", request.Name, violations)
			continue
		}
		seeder.logger.Printf("Seeded property: %s", created.Name)
	}
	return nil
}

func price(value float64) *float64 {
	return &value
}

func sampleProperties() []*domain.CreateProperty {
	return []*domain.CreateProperty{
		{
			IDOwner:      "owner-1",
			Name:         "Oceanfront Penthouse",
			Address:      "Cra 1 # 100-200, El Prado, Barranquilla",
			Description:  "Stunning penthouse with panoramic ocean views, featuring floor-to-ceiling windows, marble finishes, and a private rooftop terrace.",
			SalePrice:    price(1500000000),
			RentPrice:    price(8500000),
			Bedrooms:     4,
			Bathrooms:    5,
			Area:         450,
			PropertyType: "Penthouse",
			YearBuilt:    2020,
			Images: []string{
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1613977257363-707ba9348227?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1615529328331-f8917597711f?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1582063289852-62e3ba2747f8?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&h=600&fit=crop",
			},
			Amenities:       []string{"parking", "pool", "gym", "security", "elevator", "balcony", "ocean_view", "rooftop_terrace"},
			OwnerName:       "Maria Fernanda Lopez",
			OwnerEmail:      "maria.lopez@luxuryrealty.co",
			OwnerPhone:      "+57 300 123 4567",
			OwnerWhatsApp:   "+57 300 123 4567",
			OwnerCompany:    "Luxury Realty Colombia",
			IsOwnerAgent:    true,
			IsOwnerVerified: true,
		},
		{
			IDOwner:      "owner-2",
			Name:         "Modern Villa with Pool",
			Address:      "Km 7 Via al Mar, Puerto Colombia",
			Description:  "Contemporary architectural masterpiece with infinity pool, smart home automation, and lush tropical gardens.",
			SalePrice:    price(2800000000),
			RentPrice:    price(12000000),
			Bedrooms:     5,
			Bathrooms:    6,
			Area:         680,
			PropertyType: "Villa",
			YearBuilt:    2019,
			Images: []string{
				"https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&h=600&fit=crop",
			},
			Amenities:       []string{"parking", "pool", "garden", "security", "smart_home", "bbq_area"},
			OwnerName:       "Carlos Andres Rodriguez",
			OwnerEmail:      "carlos.rodriguez@premiumproperties.co",
			OwnerPhone:      "+57 310 987 6543",
			OwnerCompany:    "Premium Properties",
			IsOwnerAgent:    true,
			IsOwnerVerified: true,
		},
		{
			IDOwner:      "owner-3",
			Name:         "Cozy Studio Apartment",
			Address:      "Calle 84 # 45-20, Riomar, Barranquilla",
			Description:  "Bright and functional studio close to universities and shopping, ideal for students and young professionals.",
			RentPrice:    price(1200000),
			Bedrooms:     1,
			Bathrooms:    1,
			Area:         42,
			PropertyType: "Studio",
			YearBuilt:    2015,
			Images: []string{
				"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1536376072261-38c75010e6c9?w=800&h=600&fit=crop",
			},
			Amenities:       []string{"elevator", "laundry", "security"},
			OwnerName:       "Ana Milena Torres",
			OwnerEmail:      "ana.torres@gmail.com",
			OwnerPhone:      "+57 315 222 8899",
			IsOwnerVerified: true,
		},
		{
			IDOwner:      "owner-4",
			Name:         "Family House in Cartagena",
			Address:      "Barrio Manga, Cartagena",
			Description:  "Spacious two-story family house with interior patio, five minutes from the historic walled city.",
			SalePrice:    price(950000000),
			Bedrooms:     3,
			Bathrooms:    3,
			Area:         280,
			PropertyType: "House",
			YearBuilt:    2008,
			Images: []string{
				"https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1598228723793-52759bba239c?w=800&h=600&fit=crop",
			},
			Amenities:       []string{"parking", "patio", "security"},
			OwnerName:       "Jorge Luis Martinez",
			OwnerEmail:      "jorge.martinez@hotmail.com",
			OwnerPhone:      "310-555-0134",
			OwnerCompany:    "",
			IsOwnerVerified: true,
		},
	}
}
