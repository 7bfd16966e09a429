package main

import "github.com/inkwell-hq/inkwell_backend/cmd"

func main() {
	cmd.Execute()
}
