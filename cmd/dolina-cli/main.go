package main

import "github.com/dolinaroz/landing/cmd/dolina-cli/cmd"

func main() {
	cmd.Execute()
}
