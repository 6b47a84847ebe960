package constvars

type ContextKey string

const (
	CONTEXT_RUN_ID_KEY ContextKey = "run_id"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	ResponseUnknown = "unknown"
)
