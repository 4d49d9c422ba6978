package main

import "github.com/xvierd/stayfocused/cmd"

func main() {
	cmd.Execute()
}
