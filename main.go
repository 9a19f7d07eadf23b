package main

import "github.com/rusifikator/cmd"

func main() {
	cmd.Execute()
}
