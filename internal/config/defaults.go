package config

const (
	defaultConfigPath             = "~/.config/trackcatalog/config.toml"
	projectConfigFile             = "catalog.toml"
	defaultEnvFile                = ".env"
	defaultDataDir                = "~/.local/share/trackcatalog"
	defaultLogDir                 = "~/.local/share/trackcatalog/logs"
	defaultBind                   = "127.0.0.1:8000"
	defaultReadTimeoutSeconds     = 15
	defaultWriteTimeoutSeconds    = 30
	defaultShutdownTimeoutSeconds = 5
	defaultBackend                = BackendMongo
	defaultMongoURL               = "mongodb://localhost:27017"
	defaultMongoDatabase          = "PhonkUniverseDB"
	defaultCollection             = "tracks"
	defaultSQLiteFile             = "catalog.db"
	defaultConnectTimeoutSeconds  = 10
	defaultOperationTimeout       = 10
	defaultListLimit              = 50
	defaultMaxListLimit           = 1000
	defaultSearchLimit            = 20
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
	defaultLogMaxSizeMB           = 50
	defaultLogMaxBackups          = 5
	defaultLogMaxAgeDays          = 30
)

// Supported storage backends.
const (
	BackendMongo  = "mongo"
	BackendSQLite = "sqlite"
)

// Environment variables consulted when the matching setting is blank.
const (
	EnvMongoURL = "MONGODB_URL"
	EnvBackend  = "CATALOG_STORE_BACKEND"
	EnvBind     = "CATALOG_API_BIND"
)

// Default returns a Config populated with repository defaults. Settings that
// accept an environment fallback are left blank and filled during normalization.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Server: Server{
			CORSOrigins:            []string{"*"},
			ReadTimeoutSeconds:     defaultReadTimeoutSeconds,
			WriteTimeoutSeconds:    defaultWriteTimeoutSeconds,
			ShutdownTimeoutSeconds: defaultShutdownTimeoutSeconds,
		},
		Store: Store{
			MongoDatabase:           defaultMongoDatabase,
			Collection:              defaultCollection,
			ConnectTimeoutSeconds:   defaultConnectTimeoutSeconds,
			OperationTimeoutSeconds: defaultOperationTimeout,
		},
		Catalog: Catalog{
			DefaultLimit: defaultListLimit,
			MaxLimit:     defaultMaxListLimit,
			SearchLimit:  defaultSearchLimit,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}
