package eventbus

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/buildregion/internal/logging"
)

type snapshot struct {
	Type   string  `json:"type"`
	Volume float64 `json:"volume"`
}

func mustEnvelope(t *testing.T, eventType string, payload interface{}) *Envelope {
	t.Helper()
	ev, err := NewEnvelope("test", eventType, payload)
	require.NoError(t, err)
	return ev
}

func TestNewEnvelope_RoundTrip(t *testing.T) {
	ev := mustEnvelope(t, EventRegionUpdated, snapshot{Type: "sphere", Volume: 33.5})

	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, SchemaVersion, ev.Version)
	assert.Equal(t, PriorityNormal, ev.Priority)
	assert.JSONEq(t, `{"type":"sphere","volume":33.5}`, string(ev.Payload))

	var decoded snapshot
	require.NoError(t, ev.Decode(&decoded))
	assert.Equal(t, "sphere", decoded.Type)

	other := mustEnvelope(t, EventRegionUpdated, snapshot{})
	assert.NotEqual(t, ev.ID, other.ID)

	bad := &Envelope{EventType: "x", Payload: []byte("{")}
	assert.Error(t, bad.Decode(&decoded))
}

func TestMemoryBus_OrderedDelivery(t *testing.T) {
	bus := NewMemoryBus(16)

	var mu sync.Mutex
	var got []string
	_, err := bus.Subscribe(context.Background(), Filter{}, func(ctx context.Context, ev *Envelope) {
		mu.Lock()
		got = append(got, ev.EventType)
		mu.Unlock()
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, mustEnvelope(t, EventRegionUpdated, 1)))
	require.NoError(t, bus.Publish(ctx, mustEnvelope(t, EventModeChanged, 2)))
	require.NoError(t, bus.Publish(ctx, mustEnvelope(t, EventRegionCleared, 3)))

	// Close доставляет всё, что уже принято
	require.NoError(t, bus.Close())
	assert.Equal(t, []string{EventRegionUpdated, EventModeChanged, EventRegionCleared}, got)

	stats := bus.Metrics()
	assert.Equal(t, uint64(3), stats.Published)
	assert.Equal(t, uint64(3), stats.Consumed)

	assert.ErrorIs(t, bus.Publish(ctx, mustEnvelope(t, EventRegionUpdated, 4)), ErrBusClosed)
	assert.NoError(t, bus.Close(), "повторное закрытие безопасно")
}

func TestMemoryBus_FilterAndUnsubscribe(t *testing.T) {
	bus := NewMemoryBus(8)
	defer bus.Close()

	denied := make(chan *Envelope, 4)
	sub, err := bus.Subscribe(context.Background(), Filter{Types: []string{EventClickDenied}}, func(ctx context.Context, ev *Envelope) {
		denied <- ev
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, mustEnvelope(t, EventRegionUpdated, 1)))
	require.NoError(t, bus.Publish(ctx, mustEnvelope(t, EventClickDenied, 2)))

	select {
	case ev := <-denied:
		assert.Equal(t, EventClickDenied, ev.EventType)
	case <-time.After(2 * time.Second):
		t.Fatal("событие click.denied не доставлено")
	}

	sub.Unsubscribe()
	require.NoError(t, bus.Publish(ctx, mustEnvelope(t, EventClickDenied, 3)))
	assert.Never(t, func() bool { return len(denied) > 0 }, 100*time.Millisecond, 10*time.Millisecond)
}

func TestMatchFilter(t *testing.T) {
	ev := &Envelope{EventType: EventModeChanged, Source: "controller"}
	assert.True(t, matchFilter(ev, Filter{}))
	assert.True(t, matchFilter(ev, Filter{Sources: []string{"controller"}}))
	assert.False(t, matchFilter(ev, Filter{Sources: []string{"click"}}))
	assert.False(t, matchFilter(ev, Filter{Types: []string{EventRegionUpdated}}))
}

func TestMetricsExporter(t *testing.T) {
	bus := NewMemoryBus(8)
	reg := prometheus.NewRegistry()
	exporter := NewMetricsExporter(bus, reg)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, mustEnvelope(t, EventRegionUpdated, 1)))
	require.NoError(t, bus.Publish(ctx, mustEnvelope(t, EventRegionCleared, 2)))
	require.NoError(t, bus.Close())

	exporter.Update()
	assert.Equal(t, 2.0, testutil.ToFloat64(exporter.published))
	exporter.Update()
	assert.Equal(t, 2.0, testutil.ToFloat64(exporter.published), "счётчик растёт только на дельту")
	assert.Equal(t, 0.0, testutil.ToFloat64(exporter.inflight))

	exporter.Start(time.Hour)
	exporter.Stop()
	exporter.Stop()
}

func TestLoggingListener(t *testing.T) {
	var buf bytes.Buffer
	logging.Configure(logging.Options{ConsoleLevel: logging.DEBUG, DisableFile: true, Console: &buf})
	defer logging.Configure(logging.DefaultOptions())

	logger, err := logging.NewLogger("eventbus")
	require.NoError(t, err)

	bus := NewMemoryBus(4)
	_, err = StartLoggingListener(bus, logger)
	require.NoError(t, err)

	require.NoError(t, bus.Publish(context.Background(), mustEnvelope(t, EventModeChanged, map[string]string{"mode": "outside"})))
	require.NoError(t, bus.Close())

	assert.Contains(t, buf.String(), "mode.changed src=test")
	assert.Contains(t, buf.String(), `{"mode":"outside"}`)
}
