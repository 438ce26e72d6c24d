package service

import "time"

// Proxy request outcomes reported to ProxyMetrics.
const (
	ProxyOutcomeRelayed      = "relayed"
	ProxyOutcomeNoCredential = "no_credential"
	ProxyOutcomeInvalidPath  = "invalid_path"
	ProxyOutcomeUpstreamFail = "upstream_error"
	ProxyOutcomeVaultFail    = "vault_error"
)

// ProxyMetrics records gateway traffic.
type ProxyMetrics interface {
	ObserveRequest(outcome string)
	ObserveUpstreamDuration(d time.Duration)
}
