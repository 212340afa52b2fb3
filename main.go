package main

import "howto/cmd"

func main() {
	cmd.Execute()
}
