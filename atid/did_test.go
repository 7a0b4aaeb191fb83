package atid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    DID
		wantErr string
	}{
		{
			name:  "plc identifier",
			input: "did:plc:abc123",
			want:  DID{Method: MethodPLC, ID: "abc123"},
		},
		{
			name:  "plc identifier full length",
			input: "did:plc:ewvi7nxzyoun6zhxrhs64oiz",
			want:  DID{Method: MethodPLC, ID: "ewvi7nxzyoun6zhxrhs64oiz"},
		},
		{
			name:  "web identifier",
			input: "did:web:example.com",
			want:  DID{Method: MethodWeb, ID: "example.com"},
		},
		{
			name:  "web identifier with subdomain",
			input: "did:web:garden.example.com",
			want:  DID{Method: MethodWeb, ID: "garden.example.com"},
		},
		{
			name:  "web identifier single label",
			input: "did:web:localhost",
			want:  DID{Method: MethodWeb, ID: "localhost"},
		},
		{
			name:  "web identifier with encoded port",
			input: "did:web:example.com%3A8443",
			want:  DID{Method: MethodWeb, ID: "example.com%3A8443"},
		},
		{
			name:  "web identifier with path segments",
			input: "did:web:example.com:users:alice",
			want:  DID{Method: MethodWeb, ID: "example.com:users:alice"},
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: "missing did: prefix",
		},
		{
			name:    "missing prefix",
			input:   "plc:abc123",
			wantErr: "missing did: prefix",
		},
		{
			name:    "missing identifier",
			input:   "did:plc",
			wantErr: "missing method-specific identifier",
		},
		{
			name:    "empty plc identifier",
			input:   "did:plc:",
			wantErr: "empty plc identifier",
		},
		{
			name:    "uppercase plc identifier",
			input:   "did:plc:ABC123",
			wantErr: "invalid character",
		},
		{
			name:    "plc identifier with separator",
			input:   "did:plc:abc-123",
			wantErr: "invalid character",
		},
		{
			name:    "unsupported method",
			input:   "did:key:z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK",
			wantErr: `unsupported method "key"`,
		},
		{
			name:    "empty web identifier",
			input:   "did:web:",
			wantErr: "empty web identifier",
		},
		{
			name:    "web identifier leading dot",
			input:   "did:web:.example.com",
			wantErr: "empty hostname label",
		},
		{
			name:    "web identifier doubled dot",
			input:   "did:web:example..com",
			wantErr: "empty hostname label",
		},
		{
			name:    "web identifier hyphen at label edge",
			input:   "did:web:-bad.example.com",
			wantErr: "starts or ends with a hyphen",
		},
		{
			name:    "web identifier trailing colon",
			input:   "did:web:example.com:",
			wantErr: "empty path segment",
		},
		{
			name:    "web identifier slash in path",
			input:   "did:web:example.com:a/b",
			wantErr: "invalid character",
		},
		{
			name:    "over length limit",
			input:   "did:plc:" + strings.Repeat("a", maxDIDLength),
			wantErr: "exceeds 2048 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDID(tt.input)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDIDStringRoundTrip(t *testing.T) {
	inputs := []string{
		"did:plc:abc123",
		"did:plc:ewvi7nxzyoun6zhxrhs64oiz",
		"did:web:example.com",
		"did:web:example.com:users:alice",
	}

	for _, input := range inputs {
		parsed, err := ParseDID(input)
		require.NoError(t, err)
		assert.Equal(t, input, parsed.String())
	}
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "plc", MethodPLC.String())
	assert.Equal(t, "web", MethodWeb.String())
}
