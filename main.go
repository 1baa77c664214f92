package main

import "NavEngine/cmd"

func main() {
	cmd.Execute()
}
