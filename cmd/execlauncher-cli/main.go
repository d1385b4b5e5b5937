package main

import "execlauncher/cmd/execlauncher-cli/cmd"

func main() {
	cmd.Execute()
}
