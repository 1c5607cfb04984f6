package main

import "github.com/parkwatch/parkwatch/internal/cli"

func main() {
	cli.Execute()
}
