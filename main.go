package main

import "github.com/featdiibs/simple-chord-transposer/cmd"

func main() {
	cmd.Execute()
}
