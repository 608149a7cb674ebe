package main

import "github.com/rail44/lessons/cmd"

func main() {
	cmd.Execute()
}
