package main

import (
	"log"

	"github.com/wrydhan/trackday/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
