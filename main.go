package main

import "github.com/YANHAN-BLCU/reporank/cmd"

func main() {
	cmd.Execute()
}
