package main

import "github.com/tagirov/rusk/cmd"

func main() {
	cmd.Execute()
}
