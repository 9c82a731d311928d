package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Turso         TursoConfig
	Slack         SlackConfig
	ProjectID     string
}

// TursoConfig holds the remote database connection parameters. When the
// primary URL is empty the application persists to the local database file
// only.
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

// RemoteBacked reports whether a remote primary database is configured.
// The storage mode is decided once, at startup, from this flag.
func (c Config) RemoteBacked() bool {
	return c.Turso.PrimaryURL != ""
}
