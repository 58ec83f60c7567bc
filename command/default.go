package command

const (
	DefaultLogLevel = "info"
	DefaultNetwork  = "mainnet"
	PrivateKeyEnv   = "PRIVATE_KEY"
)

const (
	JSONOutputFlag = "json"
	LogLevelFlag   = "log-level"
	ConfigFlag     = "config"
)
