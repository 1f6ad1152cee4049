package types

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex store_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_STORE      = "store"
	UUID_PREFIX_COUPON     = "coupon"
	UUID_PREFIX_REDEMPTION = "rdm"
	UUID_PREFIX_RATING     = "rating"
	UUID_PREFIX_CATEGORY   = "cat"
	UUID_PREFIX_EVENT      = "event"
)
