package model

import (
	"strings"

	"github.com/google/uuid"
)

// Identifier prefixes, one per entity kind.
const (
	PrefixUser      = "user_"
	PrefixWorkspace = "ws_"
	PrefixBoard     = "board_"
	PrefixCard      = "card_"
	PrefixLink      = "link_"
)

// NewID mints an opaque identifier such as "card_3f2a9c81d04e".
func NewID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + hex[:12]
}
