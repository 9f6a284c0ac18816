// cmd/dicestats/main.go
package main

import (
	"dicestats/internal/app"
	"dicestats/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
