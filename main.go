package main

import "github.com/dkoslow/prevgen/internal/cli"

func main() {
	cli.Main()
}
