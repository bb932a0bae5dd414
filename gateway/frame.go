package gateway

import (
	"chatbot/domain"
	"chatbot/errors"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	EventMessage    = "message"
	EventMessageAny = "message.any"
	groupSuffix     = "@g.us"
)

// Envelope is the JSON frame pushed by the gateway on the websocket.
type Envelope struct {
	ID      string          `json:"id"`
	Event   string          `json:"event"`
	Session string          `json:"session"`
	Payload json.RawMessage `json:"payload"`
}

// MessagePayload is the payload of "message" events.
// From is the chat (the sender in private, the group in group chats) and Participant the author in groups.
type MessagePayload struct {
	ID          string `json:"id"`
	From        string `json:"from"`
	Participant string `json:"participant"`
	FromMe      bool   `json:"fromMe"`
	Body        string `json:"body"`
	NotifyName  string `json:"notifyName"`
}

// DecodeFrame normalizes a raw frame into an InboundEvent.
// ok is false for frames that are valid but carry nothing to act on: other event types,
// messages sent by the bot itself, and messages without text.
func DecodeFrame(raw []byte) (domain.InboundEvent, bool, error) {
	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return domain.InboundEvent{}, false, fmt.Errorf("%w: %w", errors.ErrMalformedFrame, err)
	}
	if envelope.Event != EventMessage && envelope.Event != EventMessageAny {
		return domain.InboundEvent{}, false, nil
	}

	var payload MessagePayload
	if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
		return domain.InboundEvent{}, false, fmt.Errorf("%w: payload: %w", errors.ErrMalformedFrame, err)
	}
	if payload.ID == "" || payload.From == "" {
		return domain.InboundEvent{}, false, fmt.Errorf("%w: message without id or sender", errors.ErrMalformedFrame)
	}
	if payload.FromMe || strings.TrimSpace(payload.Body) == "" {
		return domain.InboundEvent{}, false, nil
	}

	isGroup := strings.HasSuffix(payload.From, groupSuffix)
	sender := payload.From
	if isGroup {
		if payload.Participant == "" {
			return domain.InboundEvent{}, false, fmt.Errorf("%w: group message without participant", errors.ErrMalformedFrame)
		}
		sender = payload.Participant
	}

	id := envelope.ID
	if id == "" {
		id = payload.ID
	}
	return domain.InboundEvent{
		ID:          id,
		MessageID:   payload.ID,
		Sender:      sender,
		Number:      payload.From,
		DisplayName: strings.TrimSpace(payload.NotifyName),
		IsGroup:     isGroup,
		RawText:     payload.Body,
	}, true, nil
}
