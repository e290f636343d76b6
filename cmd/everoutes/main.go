package main

import "github.com/everoutes/eve-routes-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
