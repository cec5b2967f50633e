//go:build cli
// +build cli

package main

import (
	"log"

	_ "quickview.GO/custom"

	"quickview.GO/cmd"
	"quickview.GO/config"
)

func main() {
	config.LoadEnv()
	if config.LoadAppConfig().Debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	cmd.Execute()
}
