package kafka_test

import (
	"slotbook/infras/kafka"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:   "Clubhouse:2023-08-01",
		Value: map[string]any{"status": "confirmed", "price": 100},
	}

	out, err := msg.ToKafkaMessage()
	require.NoError(t, err)

	assert.Equal(t, []byte("Clubhouse:2023-08-01"), out.Key)
	assert.JSONEq(t, `{"status":"confirmed","price":100}`, string(out.Value))
}

func TestMessage_ToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}
