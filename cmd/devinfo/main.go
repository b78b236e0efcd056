package main

import "devinfo/internal/cli"

func main() {
	cli.Execute()
}
