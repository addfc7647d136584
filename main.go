package main

import "github.com/cosmoos/voicegen/internal/cmd"

func main() {
	cmd.Execute()
}
