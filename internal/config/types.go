package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Slack         SlackConfig
	Turso         TursoConfig
	Presence      PresenceConfig
	ProjectID     string
}
type SlackConfig struct {
	Token     string
	ChannelID string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// PresenceConfig controls the stale-presence sweeper.
type PresenceConfig struct {
	SweepInterval  time.Duration
	StaleThreshold time.Duration
}
