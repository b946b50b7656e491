package main

import "github.com/cltlab/goclt/cmd"

func main() {
	cmd.Execute()
}
