package metrics

const (
	defaultEnabled   = true
	defaultNamespace = "wallet_adapter"
	defaultPath      = "/metrics"
)
