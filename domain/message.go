package domain

import "strings"

// InboundEvent is the normalized shape of one chat message received from the gateway.
// MessageID is the dedup key, Sender is the author and Number the conversation the
// reply goes back to. In a private chat both are the same identity.
type InboundEvent struct {
	ID          string
	MessageID   string
	Sender      string
	Number      string
	DisplayName string
	IsGroup     bool
	RawText     string
}

// RecipientKey identifies the conversation replies are sent to and quota is charged on.
func (e InboundEvent) RecipientKey() string {
	return e.Number
}

// ChatKind returns the availability matching the event's chat type.
func (e InboundEvent) ChatKind() Availability {
	if e.IsGroup {
		return AvailabilityGroup
	}
	return AvailabilityPrivate
}

// NormalizeIdentity strips the gateway suffix ("@c.us", "@s.whatsapp.net") and a leading "+"
// so that configured admin numbers match sender identifiers.
func NormalizeIdentity(identity string) string {
	identity = strings.TrimSpace(identity)
	if at := strings.IndexByte(identity, '@'); at >= 0 {
		identity = identity[:at]
	}
	return strings.TrimPrefix(identity, "+")
}
