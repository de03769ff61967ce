package main

import "github.com/saadjs/fitguide-cli/cmd/fitguide"

func main() {
	fitguide.Execute()
}
