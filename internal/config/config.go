package config

import "time"

const (
	// Auth
	TokenTTL    = 72 * time.Hour
	TokenIssuer = "gigflow-api"
	TokenCookie = "token"
	BcryptCost  = 10

	// Realtime connection timing
	WriteWait      = 10 * time.Second
	PongWait       = 60 * time.Second
	PingPeriod     = (PongWait * 9) / 10
	MaxMessageSize = 512

	// Redis channel carrying hire notifications between instances.
	NotificationChannel = "gigflow:notifications"

	// Server defaults
	DefaultPort = "8080"
)
