package main

import "github.com/hubertat/relayplus/cmd/4relplus/cmd"

func main() {
	cmd.Execute()
}
