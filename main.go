package main

import "github.com/emrgen/logbook/cmd"

func main() {
	cmd.Execute()
}
