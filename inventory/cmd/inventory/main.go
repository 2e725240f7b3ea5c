package main

import "shelf_life/inventory/internal/cli"

func main() {
	cli.Execute()
}
