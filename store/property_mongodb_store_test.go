package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"properties_service/domain"
)

func price(value float64) *float64 {
	return &value
}

func TestSearchQueryAlwaysRequiresAvailability(t *testing.T) {
	query := searchQuery(domain.PropertyFilter{})

	assert.Equal(t, bson.M{"$and": []bson.M{
		{"isAvailable": true},
	}}, query)
}

func TestSearchQueryNameAxis(t *testing.T) {
	query := searchQuery(domain.PropertyFilter{Name: "Villa"})

	assert.Equal(t, bson.M{"$and": []bson.M{
		{"isAvailable": true},
		{"name": primitive.Regex{Pattern: "Villa", Options: "i"}},
	}}, query)
}

func TestSearchQueryAddressAxis(t *testing.T) {
	query := searchQuery(domain.PropertyFilter{Address: "Cartagena"})

	assert.Equal(t, bson.M{"$and": []bson.M{
		{"isAvailable": true},
		{"addressProperty": primitive.Regex{Pattern: "Cartagena", Options: "i"}},
	}}, query)
}

func TestSearchQueryEscapesRegexMetaCharacters(t *testing.T) {
	query := searchQuery(domain.PropertyFilter{Address: "Cra 1 # 100-200 (El Prado)"})

	conditions := query["$and"].([]bson.M)
	regex := conditions[1]["addressProperty"].(primitive.Regex)
	assert.Equal(t, `Cra 1 # 100-200 \(El Prado\)`, regex.Pattern)
}

// The lower bound may be cleared on either price axis; a document
// missing the field fails $gte on that axis.
func TestSearchQueryMinPriceAxis(t *testing.T) {
	query := searchQuery(domain.PropertyFilter{MinPrice: price(8000000)})

	assert.Equal(t, bson.M{"$and": []bson.M{
		{"isAvailable": true},
		{"$or": []bson.M{
			{"priceProperty": bson.M{"$gte": 8000000.0}},
			{"rentProperty": bson.M{"$gte": 8000000.0}},
		}},
	}}, query)
}

// The upper bound guards each axis with $exists so a missing price
// never satisfies it.
func TestSearchQueryMaxPriceAxis(t *testing.T) {
	query := searchQuery(domain.PropertyFilter{MaxPrice: price(9000000)})

	assert.Equal(t, bson.M{"$and": []bson.M{
		{"isAvailable": true},
		{"$or": []bson.M{
			{"priceProperty": bson.M{"$exists": true, "$lte": 9000000.0}},
			{"rentProperty": bson.M{"$exists": true, "$lte": 9000000.0}},
		}},
	}}, query)
}

func TestSearchQueryConjoinsAllPresentAxes(t *testing.T) {
	query := searchQuery(domain.PropertyFilter{
		Name:     "Villa",
		Address:  "Cartagena",
		MinPrice: price(100),
		MaxPrice: price(200),
	})

	conditions := query["$and"].([]bson.M)
	assert.Len(t, conditions, 5)
}
