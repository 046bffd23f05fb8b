package recordid

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// IDVersion is the current version of the record ID format
	IDVersion = "v1"
)

// RecordIDV1 represents a parsed v1 record ID
type RecordIDV1 struct {
	Version    string
	Kind       string
	NameHash   string
	InputsHash string
	UnixNano   int64
	Raw        string
}

// String returns the raw record ID string
func (r RecordIDV1) String() string {
	return r.Raw
}

// Time returns the check time encoded in the ID
func (r RecordIDV1) Time() time.Time {
	return time.Unix(0, r.UnixNano).UTC()
}

// ParseV1 parses a raw record ID string.
// The expected format is: v1:kind:namehash:inputshash:unixnano
func ParseV1(raw string) (RecordIDV1, error) {
	if raw == "" {
		return RecordIDV1{}, fmt.Errorf("record ID cannot be empty")
	}

	parts := strings.Split(raw, ":")
	if len(parts) != 5 {
		return RecordIDV1{}, fmt.Errorf("invalid record ID format: expected 5 colon-separated parts, got %d", len(parts))
	}

	if parts[0] != IDVersion {
		return RecordIDV1{}, fmt.Errorf("unsupported record ID version: %s (expected %s)", parts[0], IDVersion)
	}
	if parts[1] == "" {
		return RecordIDV1{}, fmt.Errorf("record ID has an empty kind")
	}

	nanos, err := strconv.ParseInt(parts[4], 10, 64)
	if err != nil {
		return RecordIDV1{}, fmt.Errorf("invalid record ID timestamp %q: %w", parts[4], err)
	}

	return RecordIDV1{
		Version:    parts[0],
		Kind:       parts[1],
		NameHash:   parts[2],
		InputsHash: parts[3],
		UnixNano:   nanos,
		Raw:        raw,
	}, nil
}

// CalculateV1 generates a record ID from the check kind, its name, its inputs and the check time.
// The result is formatted as: v1:kind:b64(sha256(name)):b64(sha256(inputs joined by NUL)):unixnano.
// Input order is significant; assert(a, b) and assert(b, a) get different IDs.
func CalculateV1(kind, name string, inputs []string, at time.Time) (string, error) {
	if kind == "" {
		return "", fmt.Errorf("kind cannot be empty")
	}
	if strings.Contains(kind, ":") {
		return "", fmt.Errorf("kind cannot contain ':'")
	}
	if len(inputs) == 0 {
		return "", fmt.Errorf("at least one input is required")
	}

	nameHash := sha256.Sum256([]byte(name))
	nameEncoded := base64.RawURLEncoding.EncodeToString(nameHash[:])

	inputsHash := sha256.Sum256([]byte(strings.Join(inputs, "\x00")))
	inputsEncoded := base64.RawURLEncoding.EncodeToString(inputsHash[:])

	return fmt.Sprintf("%s:%s:%s:%s:%d", IDVersion, kind, nameEncoded, inputsEncoded, at.UnixNano()), nil
}
