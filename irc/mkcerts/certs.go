// Copyright (c) 2016 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2026 ircclient authors
// released under the MIT license

// Package mkcerts creates self-signed client certificates, which many
// networks accept as an identity (CertFP).
package mkcerts

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"
)

const (
	validFor = 10 * 365 * 24 * time.Hour
)

var (
	ErrFilesExist = errors.New("certificate or key file already exists")
)

// CreateCertBytes creates a self-signed ECDSA client certificate for nick,
// returning the PEM-encoded cert and key.
func CreateCertBytes(nick string) (certBytes []byte, keyBytes []byte, err error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate key: %w", err)
	}

	serialNumberLimit := new(big.Int).Lsh(big.NewInt(1), 128)
	serialNumber, err := rand.Int(rand.Reader, serialNumberLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate serial number: %w", err)
	}

	validFrom := time.Now()
	template := x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			CommonName:   nick,
			Organization: []string{"ircclient"},
		},
		NotBefore: validFrom,
		NotAfter:  validFrom.Add(validFor),

		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
		BasicConstraintsValid: true,
	}

	derBytes, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		return nil, nil, fmt.Errorf("Failed to create certificate: %w", err)
	}
	certBytes = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: derBytes})

	b, err := x509.MarshalECPrivateKey(priv)
	if err != nil {
		return nil, nil, fmt.Errorf("Unable to marshal ECDSA private key: %w", err)
	}
	keyBytes = pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: b})
	return certBytes, keyBytes, nil
}

// Fingerprint returns the hex SHA-256 digest of the first certificate in
// certPEM, the form services expect for CERT ADD.
func Fingerprint(certPEM []byte) (string, error) {
	block, _ := pem.Decode(certPEM)
	if block == nil || block.Type != "CERTIFICATE" {
		return "", errors.New("no certificate found")
	}
	sum := sha256.Sum256(block.Bytes)
	return hex.EncodeToString(sum[:]), nil
}

func fileExists(file string) bool {
	_, err := os.Stat(file)
	return err == nil
}

// CreateCert creates a client certificate for nick at the given filenames,
// refusing to overwrite existing files. It returns the certificate fingerprint.
func CreateCert(nick string, certFilename string, keyFilename string) (fingerprint string, err error) {
	if fileExists(certFilename) || fileExists(keyFilename) {
		return "", fmt.Errorf("%w: %s %s", ErrFilesExist, certFilename, keyFilename)
	}

	certBytes, keyBytes, err := CreateCertBytes(nick)
	if err != nil {
		return "", err
	}

	if err = os.WriteFile(certFilename, certBytes, 0644); err != nil {
		return "", fmt.Errorf("failed to write out cert file %s: %w", certFilename, err)
	}
	if err = os.WriteFile(keyFilename, keyBytes, 0600); err != nil {
		return "", fmt.Errorf("failed to write out key file %s: %w", keyFilename, err)
	}
	return Fingerprint(certBytes)
}
