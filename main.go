package main

import "github.com/matchframe/cupstats/cmd"

func main() {
	cmd.Execute()
}
