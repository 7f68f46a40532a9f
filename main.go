package main

import "github.com/koki-develop/samplesize/cmd"

func main() {
	cmd.Execute()
}
