package gateway

import (
	"chatbot/domain"
	"chatbot/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeFrame(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  domain.InboundEvent
		ok        bool
		malformed bool
	}{
		{
			name: "private text message",
			raw:  `{"id":"evt_1","event":"message","session":"default","payload":{"id":"false_33611@c.us_AAA","from":"33611@c.us","body":"help","notifyName":" Alice "}}`,
			expected: domain.InboundEvent{
				ID:          "evt_1",
				MessageID:   "false_33611@c.us_AAA",
				Sender:      "33611@c.us",
				Number:      "33611@c.us",
				DisplayName: "Alice",
				RawText:     "help",
			},
			ok: true,
		},
		{
			name: "group text message uses the participant as sender",
			raw:  `{"event":"message","payload":{"id":"false_1203@g.us_BBB","from":"1203@g.us","participant":"33622@c.us","body":"ping"}}`,
			expected: domain.InboundEvent{
				ID:        "false_1203@g.us_BBB",
				MessageID: "false_1203@g.us_BBB",
				Sender:    "33622@c.us",
				Number:    "1203@g.us",
				IsGroup:   true,
				RawText:   "ping",
			},
			ok: true,
		},
		{
			name: "other event types are skipped",
			raw:  `{"event":"session.status","payload":{"status":"WORKING"}}`,
		},
		{
			name: "own messages are skipped",
			raw:  `{"event":"message.any","payload":{"id":"true_33611@c.us_CCC","from":"33611@c.us","fromMe":true,"body":"pong"}}`,
		},
		{
			name: "media without caption is skipped",
			raw:  `{"event":"message","payload":{"id":"false_33611@c.us_DDD","from":"33611@c.us","body":"  "}}`,
		},
		{
			name:      "invalid json",
			raw:       `{"event":`,
			malformed: true,
		},
		{
			name:      "message without id",
			raw:       `{"event":"message","payload":{"from":"33611@c.us","body":"help"}}`,
			malformed: true,
		},
		{
			name:      "group message without participant",
			raw:       `{"event":"message","payload":{"id":"x","from":"1203@g.us","body":"help"}}`,
			malformed: true,
		},
		{
			name:      "payload of the wrong shape",
			raw:       `{"event":"message","payload":"help"}`,
			malformed: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			event, ok, err := DecodeFrame([]byte(tc.raw))
			if tc.malformed {
				req.ErrorIs(err, errors.ErrMalformedFrame)
				req.False(ok)
				return
			}
			req.NoError(err)
			req.Equal(tc.ok, ok)
			if tc.ok {
				req.Equal(tc.expected, event)
			}
		})
	}
}
