package microservice

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"master_ms/pkg/apperr"
)

func headerMap(msg kafka.Message) map[string]string {
	out := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		out[h.Key] = string(h.Value)
	}
	return out
}

func TestKafkaServer_HandleReply(t *testing.T) {
	router, _ := newTestRouter(t)
	srv := NewKafkaServer(KafkaConfig{Brokers: []string{"localhost:9092"}}, router, router.Topics(), nil)
	defer srv.Close()

	reply, ok := srv.Handle(context.Background(), kafka.Message{
		Topic: "fetchAllCountry",
		Value: []byte(`{"page":3}`),
		Headers: []kafka.Header{
			{Key: HeaderCorrelationID, Value: []byte("corr-1")},
			{Key: HeaderReplyTopic, Value: []byte("fetchAllCountry.reply")},
			{Key: HeaderReplyPartition, Value: []byte("2")},
		},
	})
	require.True(t, ok)
	assert.Equal(t, "fetchAllCountry.reply", reply.Topic)
	assert.JSONEq(t, `{"page":3}`, string(reply.Value))

	headers := headerMap(reply)
	assert.Equal(t, "corr-1", headers[HeaderCorrelationID])
	assert.Equal(t, "1", headers[HeaderNestDisposed])
	assert.Equal(t, "2", headers[HeaderReplyPartition])
	assert.NotContains(t, headers, HeaderNestErr)
}

func TestKafkaServer_HandleError(t *testing.T) {
	router, _ := newTestRouter(t)
	srv := NewKafkaServer(KafkaConfig{Brokers: []string{"localhost:9092"}}, router, router.Topics(), nil)
	defer srv.Close()

	reply, ok := srv.Handle(context.Background(), kafka.Message{
		Topic:   "findCountryById",
		Headers: []kafka.Header{{Key: HeaderCorrelationID, Value: []byte("corr-2")}},
	})
	require.True(t, ok)
	assert.Equal(t, "findCountryById.reply", reply.Topic)
	assert.Empty(t, reply.Value)

	var errBody apperr.Error
	require.NoError(t, json.Unmarshal([]byte(headerMap(reply)[HeaderNestErr]), &errBody))
	assert.Equal(t, http.StatusNotFound, errBody.Status)
	assert.Equal(t, "Data not found", errBody.Message)
}

func TestKafkaServer_EventHasNoReply(t *testing.T) {
	router, _ := newTestRouter(t)
	srv := NewKafkaServer(KafkaConfig{Brokers: []string{"localhost:9092"}}, router, router.Topics(), nil)
	defer srv.Close()

	_, ok := srv.Handle(context.Background(), kafka.Message{Topic: "fetchAllCountry", Value: []byte(`{}`)})
	assert.False(t, ok)
}

func TestKafkaServer_ServeWithoutBrokers(t *testing.T) {
	router, _ := newTestRouter(t)
	srv := NewKafkaServer(KafkaConfig{}, router, router.Topics(), nil)
	assert.Error(t, srv.Serve(context.Background()))
}

func TestReplyBalancer(t *testing.T) {
	b := replyBalancer{}

	withPartition := kafka.Message{Headers: []kafka.Header{{Key: HeaderReplyPartition, Value: []byte("1")}}}
	assert.Equal(t, 1, b.Balance(withPartition, 0, 1, 2))

	unknown := kafka.Message{Headers: []kafka.Header{{Key: HeaderReplyPartition, Value: []byte("7")}}}
	assert.Equal(t, 0, b.Balance(unknown, 0, 1, 2))

	assert.Equal(t, 3, b.Balance(kafka.Message{}, 3, 4))
}
