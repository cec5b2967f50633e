package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// The popup endpoints are called by shoppers' browsers
	return []string{
		"/api/quickview/popups",
		"/api/quickview/popups/:popup",
		"/api/quickview/popups/:popup/options/:position",
		"/api/quickview/popups/:popup/confirm",
		"/graphql",
	}
}
