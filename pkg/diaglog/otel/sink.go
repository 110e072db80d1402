package otel

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hostdiag/diaglog-go/pkg/diaglog"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc/credentials"
)

// OTLPProtocol defines the protocol to use for OTLP export.
type OTLPProtocol string

const (
	// ProtocolGRPC uses gRPC protocol for OTLP export (default: port 4317).
	ProtocolGRPC OTLPProtocol = "grpc"
	// ProtocolHTTP uses HTTP/protobuf protocol for OTLP export (default: port 4318).
	ProtocolHTTP OTLPProtocol = "http"
)

// maxExporterRetries bounds the exporter construction retry loop.
const maxExporterRetries = 5

// Config holds the configuration for the OTLP diagnostic sink.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	OTLPEndpoint   string
	OTLPProtocol   OTLPProtocol // "grpc" or "http", defaults to "grpc"

	// Security configuration
	Insecure  bool        // Allow insecure connections (only for non-production environments)
	TLSConfig *tls.Config // Custom TLS configuration (optional, uses system defaults if nil)
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig(serviceName string) *Config {
	return &Config{
		ServiceName:    serviceName,
		ServiceVersion: "unknown",
		Environment:    "development",
		OTLPEndpoint:   "localhost:4317",
		OTLPProtocol:   ProtocolGRPC,
	}
}

// normalizeProtocol normalizes the protocol string to a valid OTLPProtocol.
func normalizeProtocol(protocol string) OTLPProtocol {
	switch strings.ToLower(protocol) {
	case "http", "http/protobuf":
		return ProtocolHTTP
	default:
		return ProtocolGRPC
	}
}

// validateSecurityConfig validates the security configuration.
func validateSecurityConfig(config *Config) error {
	if config.Insecure {
		env := strings.ToLower(config.Environment)
		if env == "production" || env == "prod" {
			return fmt.Errorf("insecure connections are not allowed in production environment")
		}
		log.Printf("WARNING: Using insecure OTLP connection to %s (environment: %s). This should only be used in development/testing.",
			config.OTLPEndpoint, config.Environment)
	}

	if config.TLSConfig != nil {
		if config.TLSConfig.InsecureSkipVerify {
			log.Printf("WARNING: TLS verification is disabled. This is insecure and should not be used in production.")
		}
		if config.TLSConfig.MinVersion > 0 && config.TLSConfig.MinVersion < tls.VersionTLS12 {
			return fmt.Errorf("minimum TLS version must be 1.2 or higher for security compliance")
		}
	}

	return nil
}

// Sink delivers diagnostic records to an OTLP backend through a batching
// logger provider. Delivery, batching and retry are handled here, not in
// the adapter.
type Sink struct {
	config   *Config
	provider *sdklog.LoggerProvider
	logger   otellog.Logger
}

// NewSink creates and initializes an OTLP-backed sink.
func NewSink(ctx context.Context, config *Config) (*Sink, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := validateSecurityConfig(config); err != nil {
		return nil, err
	}
	config.OTLPProtocol = normalizeProtocol(string(config.OTLPProtocol))

	res, err := createResource(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	// Exporter construction reaches the collector endpoint; retry with
	// exponential backoff before giving up.
	var exporter sdklog.Exporter
	operation := func() error {
		var expErr error
		exporter, expErr = createLogExporter(ctx, config)
		return expErr
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxExporterRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("failed to create log exporter: %w", err)
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)

	return &Sink{
		config:   config,
		provider: provider,
		logger:   provider.Logger(config.ServiceName),
	}, nil
}

// createResource creates an OTLP resource with service information.
func createResource(config *Config) (*resource.Resource, error) {
	return resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			semconv.DeploymentEnvironment(config.Environment),
		),
	)
}

// createLogExporter creates the appropriate log exporter based on protocol.
func createLogExporter(ctx context.Context, config *Config) (sdklog.Exporter, error) {
	if config.OTLPProtocol == ProtocolHTTP {
		opts := []otlploghttp.Option{
			otlploghttp.WithEndpoint(config.OTLPEndpoint),
		}

		if config.Insecure {
			opts = append(opts, otlploghttp.WithInsecure())
		} else if config.TLSConfig != nil {
			opts = append(opts, otlploghttp.WithTLSClientConfig(config.TLSConfig))
		}
		// If neither Insecure nor TLSConfig is set, uses system default TLS

		return otlploghttp.New(ctx, opts...)
	}

	// gRPC protocol
	opts := []otlploggrpc.Option{
		otlploggrpc.WithEndpoint(config.OTLPEndpoint),
	}

	if config.Insecure {
		opts = append(opts, otlploggrpc.WithInsecure())
	} else if config.TLSConfig != nil {
		opts = append(opts, otlploggrpc.WithTLSCredentials(credentials.NewTLS(config.TLSConfig)))
	}
	// If neither Insecure nor TLSConfig is set, uses system default TLS

	return otlploggrpc.New(ctx, opts...)
}

// Emit forwards one diagnostic record to the OTLP backend.
func (s *Sink) Emit(ctx context.Context, record diaglog.Record) {
	logRecord := otellog.Record{}
	logRecord.SetTimestamp(time.Now())
	logRecord.SetBody(otellog.StringValue(record.Summary))
	logRecord.SetSeverity(convertLevel(record.Level))
	logRecord.SetSeverityText(string(record.Level))
	logRecord.AddAttributes(recordAttributes(record)...)

	s.logger.Emit(ctx, logRecord)
}

// Shutdown flushes pending records and shuts the provider down.
func (s *Sink) Shutdown(ctx context.Context) error {
	if err := s.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown logger provider: %w", err)
	}
	return nil
}
