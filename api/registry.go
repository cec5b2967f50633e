package api

import (
	"sync"

	"github.com/labstack/echo/v4"

	"quickview.GO/core/app"
	"quickview.GO/core/registry"
)

var mu sync.Mutex

// ModuleFunc mounts an authenticated module on the /api group.
type ModuleFunc func(g *echo.Group, c *app.Container)

// RouteFunc mounts public routes (storefront endpoints, HTML fragments,
// custom pings) on the root Echo instance.
type RouteFunc func(e *echo.Echo, c *app.Container)

func getModules() []ModuleFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryAPI); ok && v != nil {
		return v.([]ModuleFunc)
	}
	return nil
}

func getRoutes() []RouteFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryRoutes); ok && v != nil {
		return v.([]RouteFunc)
	}
	return nil
}

// RegisterModule registers an /api module. Call from init().
func RegisterModule(fn ModuleFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryAPI) {
		panic("api/registry: API modules locked (register only during init)")
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryAPI, append(getModules(), fn))
}

// RegisterRoute registers a root-level route module. Call from init().
func RegisterRoute(fn RouteFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryRoutes) {
		panic("api/registry: routes locked (register only during init)")
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryRoutes, append(getRoutes(), fn))
}

// RegisterStoreRoute registers a root module that needs the database cart
// and catalog tables. It is skipped when the container has no database.
func RegisterStoreRoute(fn RouteFunc) {
	RegisterRoute(func(e *echo.Echo, c *app.Container) {
		if c == nil || c.DB == nil {
			return
		}
		fn(e, c)
	})
}

// RegisterGET is shorthand for a public GET route.
func RegisterGET(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *app.Container) {
		e.GET(path, handler)
	})
}

// RegisterPOST is shorthand for a public POST route.
func RegisterPOST(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *app.Container) {
		e.POST(path, handler)
	})
}

// RegisterHTMLModule registers a module serving HTML fragments.
func RegisterHTMLModule(fn RouteFunc) {
	RegisterRoute(fn)
}

// ApplyModules mounts every /api module and locks the registry.
func ApplyModules(g *echo.Group, c *app.Container) {
	for _, fn := range getModules() {
		fn(g, c)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryAPI)
}

// ApplyRoutes mounts every root module and locks the registry.
func ApplyRoutes(e *echo.Echo, c *app.Container) {
	for _, fn := range getRoutes() {
		fn(e, c)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryRoutes)
}
