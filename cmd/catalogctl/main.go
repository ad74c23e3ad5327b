package main

import "alcyxob/football-training/internal/cli"

func main() {
	cli.Execute()
}
