package config

// Database engine identifiers.
const (
	DBEngineSQLite   = "sqlite"
	DBEngineMySQL    = "mysql"
	DBEnginePostgres = "postgres"
)

// DB holds the database configuration settings.
type DB struct {
	Engine   string // sqlite, mysql or postgres
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	Path     string // database file path, sqlite only
}
