package startup

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"
	"properties_service/cache"
	"properties_service/domain"
	"properties_service/handlers"
	application "properties_service/service"
	"properties_service/startup/config"
	"properties_service/store"
	"properties_service/validation"
)

type Server struct {
	config *config.Config
}

var Logger = logrus.New()

const (
	LogFilePath = "logs/properties.log"
)

type CustomFormatter struct{}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	msg := fmt.Sprintf("[%s] [%s] %s\n",
		entry.Time.Format("2006-01-02T15:04:05Z07:00"),
		entry.Level,
		entry.Message,
	)
	return []byte(msg), nil
}

func initLogger() {
	writer, err := rotatelogs.New(
		LogFilePath+"_%Y%m%d%H%M",
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		Logger.Printf("Failed to create rotatelogs hook, logging to stdout: %v", err)
		Logger.SetOutput(os.Stdout)
	} else {
		Logger.SetOutput(writer)
	}

	Logger.SetFormatter(&CustomFormatter{})
}

func NewServer(config *config.Config) *Server {
	return &Server{
		config: config,
	}
}

func (server *Server) initMongoClient(httpClient *http.Client) *mongo.Client {
	client, err := store.GetClientWithHTTPConfig(server.config.PropertyDBHost, server.config.PropertyDBPort, httpClient)
	if err != nil {
		log.Fatal(err)
	}
	if err := client.Ping(context.TODO(), readpref.Primary()); err != nil {
		Logger.Println(err)
	}
	return client
}

func (server *Server) initPropertyCache(tracer trace.Tracer) domain.PropertyCache {
	propertyCache, err := cache.New(Logger, tracer)
	if err != nil {
		log.Fatal(err)
	}
	propertyCache.Ping()
	return propertyCache
}

func (server *Server) initPropertyStore(client *mongo.Client, tracer trace.Tracer) domain.PropertyStore {
	return store.NewPropertyMongoDBStore(client, tracer)
}

func (server *Server) initPropertyService(propertyStore domain.PropertyStore, propertyCache domain.PropertyCache, tracer trace.Tracer) *application.PropertyService {
	return application.NewPropertyService(propertyStore, propertyCache, validation.NewPropertyValidator(), tracer, Logger)
}

func (server *Server) initPropertyHandler(service *application.PropertyService, tracer trace.Tracer) *handlers.PropertyHandler {
	return handlers.NewPropertyHandler(service, tracer, Logger)
}

func (server *Server) Start() {

	initLogger()

	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			MaxConnsPerHost:     10,
		},
	}

	ctx := context.Background()
	exp, err := newExporter(server.config.JaegerAddress)
	if err != nil {
		log.Fatalf("Failed to Initialize Exporter: %v", err)
	}

	tp := newTraceProvider(exp)
	defer func() { _ = tp.Shutdown(ctx) }()
	otel.SetTracerProvider(tp)
	tracer := tp.Tracer("properties_service")

	mongoClient := server.initMongoClient(httpClient)
	defer func(mongoClient *mongo.Client, ctx context.Context) {
		err := mongoClient.Disconnect(ctx)
		if err != nil {
			Logger.Println(err)
		}
	}(mongoClient, context.Background())

	propertyCache := server.initPropertyCache(tracer)
	propertyStore := server.initPropertyStore(mongoClient, tracer)
	propertyService := server.initPropertyService(propertyStore, propertyCache, tracer)
	propertyHandler := server.initPropertyHandler(propertyService, tracer)

	if server.config.SeedOnStartup {
		seeder := application.NewDataSeeder(propertyService, Logger)
		if err := seeder.Seed(ctx); err != nil {
			Logger.Println("Seeding failed: ", err)
		}
	}

	server.start(propertyHandler)
}

func (server *Server) start(propertyHandler *handlers.PropertyHandler) {
	router := mux.NewRouter()
	router.Use(MiddlewareContentTypeSet)
	propertyHandler.Init(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", server.config.Port),
		Handler: router,
	}

	wait := time.Second * 15
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Println(err)
		}
	}()

	c := make(chan os.Signal, 1)

	signal.Notify(c, os.Interrupt)
	signal.Notify(c, syscall.SIGTERM)

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Error Shutting Down Server %s", err)
	}
	log.Println("Server Gracefully Stopped")
}

func newExporter(address string) (*jaeger.Exporter, error) {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(address)))
	if err != nil {
		return nil, err
	}
	return exp, nil
}

func newTraceProvider(exp sdktrace.SpanExporter) *sdktrace.TracerProvider {
	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("properties_service"),
		),
	)

	if err != nil {
		panic(err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(r),
	)
}

func MiddlewareContentTypeSet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, h *http.Request) {
		rw.Header().Add("Content-Type", "application/json")
		rw.Header().Set("X-Content-Type-Options", "nosniff")
		rw.Header().Set("X-Frame-Options", "DENY")

		next.ServeHTTP(rw, h)
	})
}
