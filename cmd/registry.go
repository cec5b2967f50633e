package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"quickview.GO/core/registry"
)

// Register adds a command. Call from init() in custom packages. Panics if registry is locked.
func Register(c *cobra.Command) {
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		panic("cmd/registry: locked (register only during init before Apply)")
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCmd, append(registered(), c))
}

func registered() []*cobra.Command {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd); ok && v != nil {
		return v.([]*cobra.Command)
	}
	return nil
}

// Apply adds all registered commands to root and groups the help output by
// name prefix, so "catalog:import" lists under "catalog". Locks the cmd
// registry.
func Apply() {
	for _, c := range registered() {
		rootCmd.AddCommand(c)
	}
	for _, c := range rootCmd.Commands() {
		prefix, _, ok := strings.Cut(c.Name(), ":")
		if !ok || c.GroupID != "" {
			continue
		}
		if !rootCmd.ContainsGroup(prefix) {
			rootCmd.AddGroup(&cobra.Group{ID: prefix, Title: prefix + " commands:"})
		}
		c.GroupID = prefix
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
}
