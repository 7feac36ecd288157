package kafka

import (
	"testing"
	"time"

	"github.com/couchcryptid/mrms-cf-etl/internal/domain"
	"github.com/couchcryptid/mrms-cf-etl/internal/mrms"
	"github.com/couchcryptid/mrms-cf-etl/internal/product"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapMessageToRawEvent(t *testing.T) {
	now := time.Now()
	msg := kafkago.Message{
		Key:       []byte("key-1"),
		Value:     []byte(`{"path":"/data/CREF.bin.gz"}`),
		Topic:     "mrms-files",
		Partition: 2,
		Offset:    42,
		Time:      now,
		Headers: []kafkago.Header{
			{Key: "swap", Value: []byte("true")},
		},
	}

	raw := mapMessageToRawEvent(msg)

	assert.Equal(t, []byte("key-1"), raw.Key)
	assert.JSONEq(t, `{"path":"/data/CREF.bin.gz"}`, string(raw.Value))
	assert.Equal(t, "mrms-files", raw.Topic)
	assert.Equal(t, 2, raw.Partition)
	assert.Equal(t, int64(42), raw.Offset)
	assert.Equal(t, now, raw.Timestamp)
	assert.Equal(t, "true", raw.Headers["swap"])
	assert.Nil(t, raw.Commit)

	notice, err := domain.ParseFileNotice(raw, false)
	require.NoError(t, err)
	assert.True(t, notice.Swap)
}

func TestToMessage(t *testing.T) {
	info, ok := product.Default().Find("CREF", "dBZ")
	require.True(t, ok)
	field := &mrms.Field{
		VarName:   "CREF",
		VarUnit:   "dBZ",
		NX:        1,
		NY:        1,
		NZ:        1,
		Heights:   []float64{500},
		ValidTime: 1372962600,
		Grid:      []float32{1},
	}
	g := domain.NewConvertedGrid("in.bin", field, info, domain.OutputOptions{Dir: "out"})

	out, err := domain.SerializeGridEvent(g)
	require.NoError(t, err)
	msg := toMessage(out)

	assert.Equal(t, []byte(g.ID), msg.Key)
	assert.Contains(t, string(msg.Value), `"product":"CREF"`)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "product", msg.Headers[0].Key)
	assert.Equal(t, []byte("CREF"), msg.Headers[0].Value)
	assert.Equal(t, "valid_time", msg.Headers[1].Key)
	assert.Equal(t, []byte("2013-07-04T18:30:00Z"), msg.Headers[1].Value)
}
