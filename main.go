package main

import "lang-atlas/cmd"

func main() {
	cmd.Execute()
}
