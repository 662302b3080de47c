package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := NewLocalHTTPPublisher(srv.URL, logger)

	event := &service.DomainEvent{
		RequestID:   "req-1",
		Type:        service.EventOrderPlaced,
		AggregateID: "order-1",
		ShopID:      "shop-1",
	}
	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, service.EventOrderPlaced, received.Message.Attributes["type"])
	assert.Equal(t, "shop-1", received.Message.Attributes["shop_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.DomainEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "order-1", decoded.AggregateID)
}

func TestLocalHTTPPublisher_PublishNonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.Publish(context.Background(), &service.DomainEvent{Type: service.EventShopApproved, AggregateID: "s"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status: 500")
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NoError(t, publisher.Publish(context.Background(), &service.DomainEvent{Type: service.EventShopRejected}))
	assert.NoError(t, publisher.Close())
}
