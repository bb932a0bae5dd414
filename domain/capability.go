package domain

type Capability string

const (
	CapabilitySendMessage     Capability = "sendMessage"
	CapabilityContextualReply Capability = "sendContextualReply"
)

// Capabilities is the set of optional send operations a gateway advertises.
type Capabilities map[Capability]struct{}

func NewCapabilities(caps ...Capability) Capabilities {
	set := make(Capabilities, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

func (c Capabilities) Has(capability Capability) bool {
	_, ok := c[capability]
	return ok
}
