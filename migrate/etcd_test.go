package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEtcdMarkersValidation(t *testing.T) {
	_, err := NewEtcdMarkers(EtcdConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoints cannot be empty")
}

func TestEtcdMarkerKey(t *testing.T) {
	assert.Equal(t, "/garden/migrated/did:plc:abc123", etcdMarkerKey("garden", "did:plc:abc123"))
	assert.Equal(t, "/staging/migrated/did:web:example.com", etcdMarkerKey("staging", "did:web:example.com"))
}

func TestEtcdTLSConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     EtcdTLSConfig
		wantErr string
	}{
		{
			name:    "missing cert file",
			cfg:     EtcdTLSConfig{KeyFile: "key.pem", CAFile: "ca.pem"},
			wantErr: "cert file is required",
		},
		{
			name:    "missing key file",
			cfg:     EtcdTLSConfig{CertFile: "cert.pem", CAFile: "ca.pem"},
			wantErr: "key file is required",
		},
		{
			name:    "missing CA file",
			cfg:     EtcdTLSConfig{CertFile: "cert.pem", KeyFile: "key.pem"},
			wantErr: "CA file is required",
		},
		{
			name:    "nonexistent certificate",
			cfg:     EtcdTLSConfig{CertFile: "/nonexistent/cert.pem", KeyFile: "/nonexistent/key.pem", CAFile: "/nonexistent/ca.pem"},
			wantErr: "failed to load client certificate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.clientConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
