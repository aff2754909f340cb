package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"properties_service/domain"
)

// Client consumes the properties API. Outbound calls run behind a
// circuit breaker so a struggling backend trips fast instead of piling
// up requests.
type Client struct {
	address    string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker
	logger     *logrus.Logger
}

func NewClient(address string, logger *logrus.Logger) *Client {
	return &Client{
		address:    address,
		httpClient: http.DefaultClient,
		cb:         CircuitBreaker("propertiesService"),
		logger:     logger,
	}
}

// ServerFilters are the four server-side search parameters, all
// optional.
type ServerFilters struct {
	Name     string
	Address  string
	MinPrice *float64
	MaxPrice *float64
}

func (filters ServerFilters) query() url.Values {
	values := url.Values{}
	if filters.Name != "" {
		values.Set("name", filters.Name)
	}
	if filters.Address != "" {
		values.Set("address", filters.Address)
	}
	if filters.MinPrice != nil {
		values.Set("minPrice", strconv.FormatFloat(*filters.MinPrice, 'f', -1, 64))
	}
	if filters.MaxPrice != nil {
		values.Set("maxPrice", strconv.FormatFloat(*filters.MaxPrice, 'f', -1, 64))
	}
	return values
}

func (client *Client) GetProperties(ctx context.Context, filters ServerFilters) ([]domain.PropertyResponse, error) {
	result, err := client.cb.Execute(func() (interface{}, error) {
		endpoint := fmt.Sprintf("%s/api/properties", client.address)
		if encoded := filters.query().Encode(); encoded != "" {
			endpoint = endpoint + "?" + encoded
		}
		request, _ := http.NewRequest("GET", endpoint, nil)
		otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(request.Header))

		response, err := client.httpClient.Do(request.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("Error fetching properties: %v", err)
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("Error fetching properties. Status code: %d", response.StatusCode)
		}

		body, err := io.ReadAll(response.Body)
		if err != nil {
			return nil, fmt.Errorf("Error reading properties response: %v", err)
		}

		var properties []domain.PropertyResponse
		if err := json.Unmarshal(body, &properties); err != nil {
			return nil, fmt.Errorf("Error unmarshaling properties JSON: %v", err)
		}
		return properties, nil
	})
	if err != nil {
		client.logger.Println(err)
		return nil, err
	}
	return result.([]domain.PropertyResponse), nil
}

// GetProperty resolves one listing by id. An absent listing surfaces
// as domain.ErrPropertyNotFound, distinguishable from a transport or
// server failure.
func (client *Client) GetProperty(ctx context.Context, id string) (*domain.PropertyResponse, error) {
	result, err := client.cb.Execute(func() (interface{}, error) {
		endpoint := fmt.Sprintf("%s/api/properties/%s", client.address, id)
		request, _ := http.NewRequest("GET", endpoint, nil)
		otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(request.Header))

		response, err := client.httpClient.Do(request.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("Error fetching property: %v", err)
		}
		defer response.Body.Close()

		if response.StatusCode == http.StatusNotFound {
			return nil, domain.ErrPropertyNotFound
		}
		if response.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("Error fetching property. Status code: %d", response.StatusCode)
		}

		var property domain.PropertyResponse
		if err := json.NewDecoder(response.Body).Decode(&property); err != nil {
			return nil, fmt.Errorf("Error unmarshaling property JSON: %v", err)
		}
		return &property, nil
	})
	if err != nil {
		client.logger.Println(err)
		return nil, err
	}
	return result.(*domain.PropertyResponse), nil
}

func CircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(
		gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     10 * time.Second,
			Interval:    0,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 2
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.Printf("Circuit Breaker '%s' changed from '%s' to '%s'\n", name, from, to)
			},
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, domain.ErrPropertyNotFound)
			},
		},
	)
}
