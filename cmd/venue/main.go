package main

import "github.com/OpenTraceLab/OpenTraceVenue/cmd/venue/cmd"

func main() {
	cmd.Execute()
}
