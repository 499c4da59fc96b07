package main

import "github.com/notargets/blockmesh/cmd"

func main() {
	cmd.Execute()
}
