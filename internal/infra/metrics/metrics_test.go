package metrics

import (
	"strings"
	"testing"
	"time"

	"languagebot/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyMetrics_CountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewProxyMetrics(reg)

	m.ObserveRequest(service.ProxyOutcomeRelayed)
	m.ObserveRequest(service.ProxyOutcomeRelayed)
	m.ObserveRequest(service.ProxyOutcomeNoCredential)

	expected := `
# HELP languagebot_proxy_requests_total Total number of proxied requests by outcome
# TYPE languagebot_proxy_requests_total counter
languagebot_proxy_requests_total{outcome="no_credential"} 1
languagebot_proxy_requests_total{outcome="relayed"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "languagebot_proxy_requests_total"))
}

func TestProxyMetrics_ObservesDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewProxyMetrics(reg)

	m.ObserveUpstreamDuration(300 * time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "languagebot_proxy_upstream_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewRegistry_IncludesRuntimeCollectors(t *testing.T) {
	reg := NewRegistry()

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "go_goroutines")
}

func TestAuditMetrics_CountsByTypeAndResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAuditMetrics(reg)

	m.ObserveAuditEvent(service.AuditEventUserLogin, true)
	m.ObserveAuditEvent("made.up", false)

	expected := `
# HELP languagebot_audit_events_total Audit events received by the worker, by type and result
# TYPE languagebot_audit_events_total counter
languagebot_audit_events_total{result="accepted",type="user.login"} 1
languagebot_audit_events_total{result="rejected",type="unknown"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "languagebot_audit_events_total"))
}
