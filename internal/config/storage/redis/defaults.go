package redis

import "time"

const (
	defaultAddr        = "127.0.0.1:6379"
	defaultDB          = 0
	defaultKeyPrefix   = "wallet-adapter:"
	defaultDialTimeout = 5 * time.Second
)
