package main

import "github.com/aalvaropc/dockyard/internal/cli"

func main() {
	cli.Execute()
}
