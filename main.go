package main

import "github.com/jsphweid/chordscales/cmd"

func main() {
	cmd.Execute()
}
