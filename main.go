package main

import "github.com/KaramelBytes/colstat-cli/cmd"

func main() {
	cmd.Execute()
}
