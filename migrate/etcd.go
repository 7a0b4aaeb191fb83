package migrate

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"
)

// EtcdConfig configures the etcd-backed marker store.
type EtcdConfig struct {
	// Endpoints is the list of etcd endpoints.
	// Format: ["host1:2379", "host2:2379"]
	Endpoints []string `json:"endpoints"`

	// Namespace is the key prefix markers are stored under. Markers
	// live at /{namespace}/migrated/{did}.
	// Default: "garden"
	Namespace string `json:"namespace"`

	// DialTimeout bounds connection establishment.
	// Default: 5 seconds
	DialTimeout time.Duration `json:"dial_timeout"`

	// TLS holds certificate configuration for secure clusters.
	// If nil, TLS is disabled.
	TLS *EtcdTLSConfig `json:"tls"`
}

// EtcdTLSConfig holds certificate paths for mutual TLS with etcd.
type EtcdTLSConfig struct {
	// CertFile is the path to the client certificate file (PEM format)
	CertFile string `json:"cert_file"`

	// KeyFile is the path to the client private key file (PEM format)
	KeyFile string `json:"key_file"`

	// CAFile is the path to the certificate authority file (PEM format)
	CAFile string `json:"ca_file"`
}

// clientConfig builds a tls.Config from the certificate paths.
func (c *EtcdTLSConfig) clientConfig() (*tls.Config, error) {
	if c.CertFile == "" {
		return nil, fmt.Errorf("TLS cert file is required")
	}
	if c.KeyFile == "" {
		return nil, fmt.Errorf("TLS key file is required")
	}
	if c.CAFile == "" {
		return nil, fmt.Errorf("TLS CA file is required")
	}

	cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load client certificate: %w", err)
	}

	caData, err := os.ReadFile(c.CAFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate: %w", err)
	}

	caPool := x509.NewCertPool()
	if !caPool.AppendCertsFromPEM(caData) {
		return nil, fmt.Errorf("failed to parse CA certificate")
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      caPool,
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// etcdMarkerKey builds the etcd key for one owner's marker.
//
// Format: /namespace/migrated/did
func etcdMarkerKey(namespace, did string) string {
	return fmt.Sprintf("/%s/migrated/%s", namespace, did)
}

// EtcdMarkers keeps completion markers in an etcd cluster. It suits
// deployments that already run etcd for coordination and want markers
// to survive process restarts without a Redis dependency.
//
// Thread-safety: all methods are safe for concurrent use.
type EtcdMarkers struct {
	client    *clientv3.Client
	namespace string
}

var _ MarkerStore = (*EtcdMarkers)(nil)

// NewEtcdMarkers creates an etcd marker store from the provided
// configuration. This establishes a connection to the etcd cluster and
// verifies connectivity with a health check; if the cluster is
// unreachable an error is returned. The store must be closed with
// Close() when no longer needed.
func NewEtcdMarkers(cfg EtcdConfig) (*EtcdMarkers, error) {
	if len(cfg.Endpoints) == 0 {
		return nil, fmt.Errorf("etcd endpoints cannot be empty")
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = "garden"
	}

	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}

	clientCfg := clientv3.Config{
		Endpoints:   cfg.Endpoints,
		DialTimeout: dialTimeout,
	}

	if cfg.TLS != nil {
		tlsConfig, err := cfg.TLS.clientConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to configure TLS: %w", err)
		}
		clientCfg.TLS = tlsConfig
	}

	cli, err := clientv3.New(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create etcd client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err = cli.Get(ctx, "health-check")
	if err != nil && err != context.DeadlineExceeded {
		cli.Close()
		return nil, fmt.Errorf("etcd health check failed: %w", err)
	}

	return &EtcdMarkers{client: cli, namespace: namespace}, nil
}

// Done reports whether the owner's marker is set.
func (e *EtcdMarkers) Done(ctx context.Context, did string) (bool, error) {
	resp, err := e.client.Get(ctx, etcdMarkerKey(e.namespace, did))
	if err != nil {
		return false, fmt.Errorf("failed to read marker for %s: %w", did, err)
	}
	return resp.Count > 0, nil
}

// SetDone sets the owner's marker.
func (e *EtcdMarkers) SetDone(ctx context.Context, did string) error {
	if _, err := e.client.Put(ctx, etcdMarkerKey(e.namespace, did), "1"); err != nil {
		return fmt.Errorf("failed to write marker for %s: %w", did, err)
	}
	return nil
}

// Clear removes the owner's marker.
func (e *EtcdMarkers) Clear(ctx context.Context, did string) error {
	if _, err := e.client.Delete(ctx, etcdMarkerKey(e.namespace, did)); err != nil {
		return fmt.Errorf("failed to clear marker for %s: %w", did, err)
	}
	return nil
}

// Close closes the etcd client connection.
func (e *EtcdMarkers) Close() error {
	return e.client.Close()
}
