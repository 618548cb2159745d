package main

import "github.com/jsphweid/tonal/cmd"

func main() {
	cmd.Execute()
}
