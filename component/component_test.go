package component

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kbukum/avatax/logger"
)

// fakeComponent implements Component for testing.
type fakeComponent struct {
	name     string
	startErr error
	stopErr  error
	health   Health
	order    *[]string
}

func (f *fakeComponent) Name() string { return f.name }
func (f *fakeComponent) Start(context.Context) error {
	if f.order != nil {
		*f.order = append(*f.order, "start:"+f.name)
	}
	return f.startErr
}
func (f *fakeComponent) Stop(context.Context) error {
	if f.order != nil {
		*f.order = append(*f.order, "stop:"+f.name)
	}
	return f.stopErr
}
func (f *fakeComponent) Health(context.Context) Health { return f.health }

type describedComponent struct {
	fakeComponent
}

func (d *describedComponent) Describe() Description {
	return Description{Type: "http-client", Details: "https://sandbox-rest.avatax.com"}
}

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.New(logger.Config{
		Enabled: true,
		Level:   "debug",
		Backend: logger.NewZapBackend(zap.New(core)),
	}), logs
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(&fakeComponent{name: "avatax"}))
	assert.Error(t, r.Register(&fakeComponent{name: "avatax"}))
}

func TestGet(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(&fakeComponent{name: "avatax"}))

	got := r.Get("avatax")
	require.NotNil(t, got)
	assert.Equal(t, "avatax", got.Name())
	assert.Nil(t, r.Get("missing"))
}

func TestStartStopOrder(t *testing.T) {
	r := NewRegistry(nil)
	var order []string
	for _, name := range []string{"tracer", "meter", "avatax"} {
		require.NoError(t, r.Register(&fakeComponent{name: name, order: &order}))
	}

	require.NoError(t, r.StartAll(context.Background()))
	require.NoError(t, r.StopAll(context.Background()))

	assert.Equal(t, []string{
		"start:tracer", "start:meter", "start:avatax",
		"stop:avatax", "stop:meter", "stop:tracer",
	}, order)
}

func TestStartAllStopsAtFirstFailure(t *testing.T) {
	r := NewRegistry(nil)
	var order []string
	boom := errors.New("invalid configuration")
	require.NoError(t, r.Register(&fakeComponent{name: "tracer", order: &order}))
	require.NoError(t, r.Register(&fakeComponent{name: "avatax", order: &order, startErr: boom}))
	require.NoError(t, r.Register(&fakeComponent{name: "never", order: &order}))

	err := r.StartAll(context.Background())
	require.ErrorIs(t, err, boom)

	require.NoError(t, r.StopAll(context.Background()))
	assert.Equal(t, []string{"start:tracer", "start:avatax", "stop:tracer"}, order)
}

func TestStopAllJoinsErrors(t *testing.T) {
	r := NewRegistry(nil)
	first := errors.New("first")
	second := errors.New("second")
	require.NoError(t, r.Register(&fakeComponent{name: "a", stopErr: first}))
	require.NoError(t, r.Register(&fakeComponent{name: "b", stopErr: second}))
	require.NoError(t, r.StartAll(context.Background()))

	err := r.StopAll(context.Background())
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
}

func TestHealthAll(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(&fakeComponent{name: "avatax", health: Health{Name: "avatax", Status: StatusHealthy}}))
	require.NoError(t, r.Register(&fakeComponent{name: "meter", health: Health{Name: "meter", Status: StatusUnhealthy, Message: "exporter down"}}))

	results := r.HealthAll(context.Background())
	require.Len(t, results, 2)
	assert.Equal(t, StatusHealthy, results[0].Status)
	assert.Equal(t, "exporter down", results[1].Message)
}

func TestStartAllLogsDescription(t *testing.T) {
	log, logs := observedLogger()
	r := NewRegistry(log)
	require.NoError(t, r.Register(&describedComponent{fakeComponent{name: "avatax"}}))
	require.NoError(t, r.StartAll(context.Background()))

	infos := logs.FilterLevelExact(zapcore.InfoLevel).All()
	require.Len(t, infos, 1)
	assert.Equal(t, "avatax started (http-client): https://sandbox-rest.avatax.com", infos[0].Message)
}
