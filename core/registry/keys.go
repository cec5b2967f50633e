package registry

// Core keys for GlobalRegistry.
const (
	// Extension registries (cmd, cron, api, graphql) stored in GlobalRegistry
	KeyRegistryCmd     = "registry:cmd"
	KeyRegistryCron    = "registry:cron"
	KeyRegistryAPI     = "registry:api"
	KeyRegistryRoutes  = "registry:routes"
	KeyRegistryGraphQL = "registry:graphql"

	// Shared quick view container built at startup
	KeyApp = "service:app"
)
