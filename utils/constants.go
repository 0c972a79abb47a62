// File: utils/constants.go
package utils

import "time"

// HealthCheckInterval is how often StartHealthMonitor pings its clients.
const HealthCheckInterval = 60 * time.Second

// ShutdownTimeout bounds the graceful HTTP shutdown.
const ShutdownTimeout = 5 * time.Second
