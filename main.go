package main

import "github.com/recargaexpress/ms-go-recharges/cmd"

func main() {
	cmd.Execute()
}
