package adapter

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
)

var ErrIncompleteTLS = errors.New("tls: ca, cert and key are all required")

// MakeTLSConfig builds a mutual TLS client config from PEM file paths.
// It returns a nil config when no path is set, meaning plaintext.
func MakeTLSConfig(ca, cert, key string) (*tls.Config, error) {
	const op = "MakeTLSConfig"

	switch {
	case ca == "" && cert == "" && key == "":
		return nil, nil
	case ca == "" || cert == "" || key == "":
		return nil, fmt.Errorf("%s: %w", op, ErrIncompleteTLS)
	}

	caPEM, err := os.ReadFile(ca)
	if err != nil {
		return nil, fmt.Errorf("%s: read CA certificate: %w", op, err)
	}

	roots := x509.NewCertPool()
	if !roots.AppendCertsFromPEM(caPEM) {
		return nil, fmt.Errorf("%s: no certificates found in %s", op, ca)
	}

	clientCert, err := tls.LoadX509KeyPair(cert, key)
	if err != nil {
		return nil, fmt.Errorf("%s: load client key pair: %w", op, err)
	}

	return &tls.Config{
		RootCAs:      roots,
		Certificates: []tls.Certificate{clientCert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
