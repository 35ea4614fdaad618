package registry

import "github.com/dolinaroz/landing/internal/page"

// Service keys shared between modules.
const (
	// MetadataKey holds the one-shot page metadata built at startup.
	MetadataKey Key[page.Metadata] = "landing.metadata"
	// WhatsAppKey holds the wa.me link of the alternate contact channel.
	WhatsAppKey Key[string] = "landing.whatsapp"
)
