package main

import "themeshift/internal/cli"

func main() {
	cli.Execute()
}
