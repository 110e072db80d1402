package otel

import (
	"crypto/tls"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig("test-service")

	assert.Equal(t, "test-service", config.ServiceName)
	assert.Equal(t, "localhost:4317", config.OTLPEndpoint)
	assert.Equal(t, ProtocolGRPC, config.OTLPProtocol)
	assert.False(t, config.Insecure)
}

func TestNormalizeProtocol(t *testing.T) {
	tests := []struct {
		input    string
		expected OTLPProtocol
	}{
		{"grpc", ProtocolGRPC},
		{"", ProtocolGRPC},
		{"http", ProtocolHTTP},
		{"HTTP", ProtocolHTTP},
		{"http/protobuf", ProtocolHTTP},
		{"unknown", ProtocolGRPC},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeProtocol(tt.input), "input: %s", tt.input)
	}
}

func TestValidateSecurityConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "secure default",
			config:  DefaultConfig("svc"),
			wantErr: false,
		},
		{
			name: "insecure in development",
			config: &Config{
				ServiceName: "svc",
				Environment: "development",
				Insecure:    true,
			},
			wantErr: false,
		},
		{
			name: "insecure in production",
			config: &Config{
				ServiceName: "svc",
				Environment: "production",
				Insecure:    true,
			},
			wantErr: true,
		},
		{
			name: "insecure in prod alias",
			config: &Config{
				ServiceName: "svc",
				Environment: "Prod",
				Insecure:    true,
			},
			wantErr: true,
		},
		{
			name: "tls below minimum version",
			config: &Config{
				ServiceName: "svc",
				TLSConfig:   &tls.Config{MinVersion: tls.VersionTLS10},
			},
			wantErr: true,
		},
		{
			name: "tls at minimum version",
			config: &Config{
				ServiceName: "svc",
				TLSConfig:   &tls.Config{MinVersion: tls.VersionTLS12},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSecurityConfig(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewSinkRejectsNilConfig(t *testing.T) {
	sink, err := NewSink(t.Context(), nil)
	assert.Error(t, err)
	assert.Nil(t, sink)
}

func TestNewSinkRejectsInsecureProduction(t *testing.T) {
	config := DefaultConfig("svc")
	config.Environment = "production"
	config.Insecure = true

	sink, err := NewSink(t.Context(), config)
	assert.Error(t, err)
	assert.Nil(t, sink)
}
