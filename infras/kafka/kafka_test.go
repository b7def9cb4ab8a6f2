package kafka_test

import (
	"summit/infras/kafka"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewPayload struct {
	TargetID string  `json:"target_id"`
	Rating   float64 `json:"rating"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "porter:p-1", Value: reviewPayload{TargetID: "p-1", Rating: 4.5}}

	out, err := msg.ToKafkaMessage("review-events")
	require.NoError(t, err)

	assert.Equal(t, "review-events", out.Topic)
	assert.Equal(t, []byte("porter:p-1"), out.Key)
	assert.JSONEq(t, `{"target_id":"p-1","rating":4.5}`, string(out.Value))
}

func TestMessage_ToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("review-events")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	payload, err := kafka.Decode[reviewPayload](kafkaGo.Message{Value: []byte(`{"target_id":"g-1","rating":3}`)})
	require.NoError(t, err)
	assert.Equal(t, reviewPayload{TargetID: "g-1", Rating: 3}, payload)

	_, err = kafka.Decode[reviewPayload](kafkaGo.Message{Value: []byte(`nope`)})
	assert.Error(t, err)
}
