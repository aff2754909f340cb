package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"properties_service/domain"
	"properties_service/errors"
	application "properties_service/service"
)

type KeyProduct struct{}

type PropertyHandler struct {
	service *application.PropertyService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewPropertyHandler(service *application.PropertyService, tracer trace.Tracer, logger *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *PropertyHandler) Init(router *mux.Router) {
	router.Use(ExtractTraceInfoMiddleware)

	getProperties := router.Methods(http.MethodGet).Subrouter()
	getProperties.HandleFunc("/api/properties", handler.GetAll)
	getProperty := router.Methods(http.MethodGet).Subrouter()
	getProperty.HandleFunc("/api/properties/{id}", handler.GetByID)
	postProperty := router.Methods(http.MethodPost).Subrouter()
	postProperty.HandleFunc("/api/properties", handler.CreateProperty)
	postProperty.Use(handler.MiddlewarePropertyDeserialization)
}

// GetAll serves the filtered listing search. Price parameters arrive
// string-encoded; a value that does not parse is the client's error,
// not a store fault.
func (handler *PropertyHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "PropertyHandler.GetAll")
	defer span.End()

	query := req.URL.Query()
	filter := domain.PropertyFilter{
		Name:    query.Get("name"),
		Address: query.Get("address"),
	}

	minPrice, ok := parsePrice(query.Get("minPrice"))
	if !ok {
		http.Error(writer, errors.InvalidPriceFilterError, http.StatusBadRequest)
		return
	}
	filter.MinPrice = minPrice

	maxPrice, ok := parsePrice(query.Get("maxPrice"))
	if !ok {
		http.Error(writer, errors.InvalidPriceFilterError, http.StatusBadRequest)
		return
	}
	filter.MaxPrice = maxPrice

	properties, err := handler.service.Search(ctx, filter)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.Println("Database exception: ", err)
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}
	jsonResponse(properties, writer)
}

func (handler *PropertyHandler) GetByID(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "PropertyHandler.GetByID")
	defer span.End()

	vars := mux.Vars(req)
	id := vars["id"]

	property, err := handler.service.Get(ctx, id)
	if err == domain.ErrPropertyNotFound {
		http.Error(writer, errors.PropertyNotFoundError, http.StatusNotFound)
		return
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.Println("Database exception: ", err)
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}
	jsonResponse(property, writer)
}

// CreateProperty persists a validated creation request. Gate failures
// answer with the complete violation list so the caller can fix every
// field in one round trip.
func (handler *PropertyHandler) CreateProperty(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "PropertyHandler.CreateProperty")
	defer span.End()

	request := req.Context().Value(KeyProduct{}).(*domain.CreateProperty)

	created, violations, err := handler.service.Create(ctx, request)
	if len(violations) > 0 {
		writer.WriteHeader(http.StatusBadRequest)
		jsonResponse(violations, writer)
		return
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.Println("Database exception: ", err)
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Location", fmt.Sprintf("/api/properties/%s", created.ID))
	writer.WriteHeader(http.StatusCreated)
	jsonResponse(created, writer)
}

func (handler *PropertyHandler) MiddlewarePropertyDeserialization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		var request domain.CreateProperty
		err := json.NewDecoder(req.Body).Decode(&request)
		if err != nil {
			handler.logger.Println(err)
			http.Error(writer, errors.InvalidRequestFormatError, http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(req.Context(), KeyProduct{}, &request)
		next.ServeHTTP(writer, req.WithContext(ctx))
	})
}

func parsePrice(value string) (*float64, bool) {
	if value == "" {
		return nil, true
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}

func jsonResponse(object interface{}, writer http.ResponseWriter) {
	resp, err := json.Marshal(object)
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	writer.Write(resp)
}

func ExtractTraceInfoMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
