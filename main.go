package main

import "github.com/francois-poidevin/flightnotifier/cli/cmd"

func main() {
	cmd.Execute()
}
