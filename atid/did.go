package atid

import (
	"fmt"
	"strings"
)

// Method identifies a supported DID method.
type Method string

const (
	// MethodPLC is the did:plc method, a registry-issued stable identifier.
	MethodPLC Method = "plc"

	// MethodWeb is the did:web method, which anchors an identifier to a
	// domain name the account controls.
	MethodWeb Method = "web"
)

// String returns the string representation of the method.
func (m Method) String() string {
	return string(m)
}

// maxDIDLength caps accepted identifiers. The protocol never issues
// longer ones, so anything above this is rejected before inspection.
const maxDIDLength = 2048

// DID is a parsed decentralized identifier.
type DID struct {
	// Method is the DID method, one of MethodPLC or MethodWeb.
	Method Method

	// ID is the method-specific identifier, everything after the
	// second colon.
	ID string
}

// String reassembles the identifier in its canonical did:method:id form.
func (d DID) String() string {
	return "did:" + string(d.Method) + ":" + d.ID
}

// ParseDID validates the syntax of a did:plc or did:web identifier and
// returns its parsed form. Validation is purely lexical; no resolution
// or network access is performed. Methods other than plc and web are
// rejected even when syntactically well formed.
func ParseDID(s string) (DID, error) {
	if len(s) > maxDIDLength {
		return DID{}, fmt.Errorf("invalid DID: length %d exceeds %d characters", len(s), maxDIDLength)
	}

	rest, ok := strings.CutPrefix(s, "did:")
	if !ok {
		return DID{}, fmt.Errorf("invalid DID %q: missing did: prefix", s)
	}

	method, id, ok := strings.Cut(rest, ":")
	if !ok {
		return DID{}, fmt.Errorf("invalid DID %q: missing method-specific identifier", s)
	}

	switch Method(method) {
	case MethodPLC:
		if err := validatePLCID(id); err != nil {
			return DID{}, fmt.Errorf("invalid DID %q: %w", s, err)
		}
	case MethodWeb:
		if err := validateWebID(id); err != nil {
			return DID{}, fmt.Errorf("invalid DID %q: %w", s, err)
		}
	default:
		return DID{}, fmt.Errorf("invalid DID %q: unsupported method %q", s, method)
	}

	return DID{Method: Method(method), ID: id}, nil
}

// validatePLCID checks a did:plc method-specific identifier. PLC
// identifiers are lowercase alphanumeric with no separators.
func validatePLCID(id string) error {
	if id == "" {
		return fmt.Errorf("empty plc identifier")
	}

	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			continue
		}
		return fmt.Errorf("plc identifier contains invalid character %q", c)
	}

	return nil
}

// validateWebID checks a did:web method-specific identifier: a hostname,
// optionally followed by colon-separated path segments. Ports and other
// reserved characters arrive percent-encoded, so '%' is accepted inside
// hostname labels and path segments.
func validateWebID(id string) error {
	if id == "" {
		return fmt.Errorf("empty web identifier")
	}

	segments := strings.Split(id, ":")

	host := segments[0]
	if host == "" {
		return fmt.Errorf("empty hostname")
	}
	for _, label := range strings.Split(host, ".") {
		if label == "" {
			return fmt.Errorf("empty hostname label")
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("hostname label %q starts or ends with a hyphen", label)
		}
		for i := 0; i < len(label); i++ {
			if !isWebChar(label[i]) {
				return fmt.Errorf("hostname label %q contains invalid character %q", label, label[i])
			}
		}
	}

	for _, seg := range segments[1:] {
		if seg == "" {
			return fmt.Errorf("empty path segment")
		}
		for i := 0; i < len(seg); i++ {
			c := seg[i]
			if isWebChar(c) || c == '.' || c == '_' {
				continue
			}
			return fmt.Errorf("path segment %q contains invalid character %q", seg, c)
		}
	}

	return nil
}

// isWebChar reports whether c may appear in a did:web hostname label.
// Uppercase letters are allowed only because percent-encoded octets
// (%3A and friends) carry uppercase hex digits.
func isWebChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '%':
		return true
	}
	return false
}
