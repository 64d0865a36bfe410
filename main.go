package main

import (
	"dirdiff/cmd"
)

func main() {
	cmd.Execute()
}
