package main

import "github.com/stampkeep/stampkeep/cmd"

func main() {
	cmd.Execute()
}
