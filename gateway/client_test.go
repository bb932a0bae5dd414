package gateway

import (
	"chatbot/domain"
	"chatbot/errors"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	path   string
	apiKey string
	body   sendTextRequest
}

func newFakeGateway(t *testing.T, status int, response string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body sendTextRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		requests = append(requests, recordedRequest{path: r.URL.Path, apiKey: r.Header.Get("X-Api-Key"), body: body})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func TestClient_SendMessage(t *testing.T) {
	req := require.New(t)
	srv, requests := newFakeGateway(t, http.StatusCreated, `{"id":"true_33611@c.us_OUT"}`)
	client := NewClient(slog.Default(), srv.Client(), srv.URL+"/", "default", "secret", false)

	id, err := client.SendMessage(context.Background(), "33611@c.us", "pong")

	req.NoError(err)
	req.Equal("true_33611@c.us_OUT", id)
	req.Len(*requests, 1)
	sent := (*requests)[0]
	req.Equal(sendTextPath, sent.path)
	req.Equal("secret", sent.apiKey)
	req.Equal(sendTextRequest{Session: "default", ChatID: "33611@c.us", Text: "pong"}, sent.body)
}

func TestClient_SendReply_Quotes_The_Message(t *testing.T) {
	req := require.New(t)
	srv, requests := newFakeGateway(t, http.StatusOK, `{"id":"out"}`)
	client := NewClient(slog.Default(), srv.Client(), srv.URL, "default", "", true)

	req.True(client.Capabilities().Has(domain.CapabilityContextualReply))
	_, err := client.SendReply(context.Background(), "1203@g.us", "false_1203@g.us_BBB", "Alice, pong")

	req.NoError(err)
	req.Equal("false_1203@g.us_BBB", (*requests)[0].body.ReplyTo)
	req.Empty((*requests)[0].apiKey)
}

func TestClient_SendReply_Without_Capability(t *testing.T) {
	req := require.New(t)
	srv, requests := newFakeGateway(t, http.StatusOK, `{}`)
	client := NewClient(slog.Default(), srv.Client(), srv.URL, "default", "", false)

	req.True(client.Capabilities().Has(domain.CapabilitySendMessage))
	_, err := client.SendReply(context.Background(), "33611@c.us", "msg", "pong")

	req.ErrorIs(err, errors.ErrUnsupportedCapability)
	req.Empty(*requests)
}

func TestClient_Rejected_Request(t *testing.T) {
	req := require.New(t)
	srv, _ := newFakeGateway(t, http.StatusUnprocessableEntity, `{"message":"chat not found"}`)
	client := NewClient(slog.Default(), srv.Client(), srv.URL, "default", "", false)

	_, err := client.SendMessage(context.Background(), "nobody@c.us", "pong")

	req.ErrorIs(err, errors.ErrGatewayRejected)
	req.Contains(err.Error(), "422")
	req.Contains(err.Error(), "chat not found")
}

func TestClient_Unreachable_Gateway(t *testing.T) {
	req := require.New(t)
	srv, _ := newFakeGateway(t, http.StatusOK, `{}`)
	srv.Close()
	client := NewClient(slog.Default(), nil, srv.URL, "default", "", false)

	_, err := client.SendMessage(context.Background(), "33611@c.us", "pong")

	req.Error(err)
	req.NotErrorIs(err, errors.ErrGatewayRejected)
}
