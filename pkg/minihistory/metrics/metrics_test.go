package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()

	p, err := NewPrometheus(reg)
	require.NoError(t, err)

	p.Action("navigateTo")
	p.Action("navigateTo")
	p.Navigation("push", OutcomeOK)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.actions.WithLabelValues("navigateTo")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.navigations.WithLabelValues("push", OutcomeOK)))

	t.Run("a second recorder on the same registry shares counters", func(t *testing.T) {
		q, err := NewPrometheus(reg)
		require.NoError(t, err)

		q.Action("navigateTo")
		assert.Equal(t, 3.0, testutil.ToFloat64(p.actions.WithLabelValues("navigateTo")))
	})
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	r.Action("switchTab")
	r.Navigation("go", OutcomeError)
}
