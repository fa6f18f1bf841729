package main

import "github.com/mcoot/gamestats/internal/cli"

func main() {
	cli.Execute()
}
