package main

import "github.com/nathfavour/habilidades/internal/cli"

func main() {
	cli.Execute()
}
