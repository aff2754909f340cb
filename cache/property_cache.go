package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"properties_service/domain"
)

type PropertyCache struct {
	cli    *redis.Client
	logger *logrus.Logger
	tracer trace.Tracer
}

// Construct Redis client
func New(logger *logrus.Logger, tracer trace.Tracer) (*PropertyCache, error) {
	redisHost := os.Getenv("PROPERTY_CACHE_HOST")
	redisPort := os.Getenv("PROPERTY_CACHE_PORT")
	redisAddress := fmt.Sprintf("%s:%s", redisHost, redisPort)

	client := redis.NewClient(&redis.Options{
		Addr: redisAddress,
	})

	return &PropertyCache{
		cli:    client,
		logger: logger,
		tracer: tracer,
	}, nil
}

// Check connection function
func (propertyCache *PropertyCache) Ping() {
	val, _ := propertyCache.cli.Ping().Result()
	propertyCache.logger.Println(val)
}

// Set key-value pair with default expiration
func (propertyCache *PropertyCache) Post(ctx context.Context, property *domain.Property) error {
	ctx, span := propertyCache.tracer.Start(ctx, "PropertyCache.Post")
	defer span.End()

	value, err := json.Marshal(property)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = propertyCache.cli.Set(constructKey(property.ID), value, 30*time.Minute).Err()
	if err == nil {
		propertyCache.logger.Println("Cache hit - set property")
	}
	return err
}

// Get value by key
func (propertyCache *PropertyCache) Get(ctx context.Context, propertyId string) (*domain.Property, error) {
	ctx, span := propertyCache.tracer.Start(ctx, "PropertyCache.Get")
	defer span.End()

	value, err := propertyCache.cli.Get(constructKey(propertyId)).Bytes()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var property domain.Property
	err = json.Unmarshal(value, &property)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	propertyCache.logger.Println("Cache hit - get property")
	return &property, nil
}
