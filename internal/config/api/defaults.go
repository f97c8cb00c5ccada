package api

const (
	defaultEnabled       = true
	defaultListenAddr    = "127.0.0.1:28690"
	defaultEnableWS      = true
	defaultEnableMetrics = true
)
