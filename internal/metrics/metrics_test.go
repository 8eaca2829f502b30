package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.ObserveGeneration("fresh", OutcomeSuccess)
	m.ObserveGeneration("fresh", OutcomeSuccess)
	m.ObserveGeneration("revision", OutcomeParse)
	m.ConfigMutated("product_reset")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.generations.WithLabelValues("fresh", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generations.WithLabelValues("revision", OutcomeParse)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.configMutations.WithLabelValues("product_reset")))
}

func TestStartCallTracksInFlight(t *testing.T) {
	m := New()
	done := m.StartCall("fake")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inFlight))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
	assert.Equal(t, 1, testutil.CollectAndCount(m.latency))
}

func TestHandlerServesRegistry(t *testing.T) {
	m := New()
	m.ObserveGeneration("fresh", OutcomeBusy)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.True(t, strings.Contains(string(body), `content_engine_generations_total{kind="fresh",outcome="busy"} 1`))
}
