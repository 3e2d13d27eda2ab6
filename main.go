package main

import "github.com/clems4ever/scalp/cmd"

func main() {
	cmd.Execute()
}
