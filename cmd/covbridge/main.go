package main

import (
	"log"

	"github.com/LambdaTest/coverage-bridge/pkg/global"
)

// Main function just executes root command `covbridge`
// this project structure is inspired from `cobra` package
func main() {
	log.SetFlags(0)
	if err := RootCommand(global.BinaryVersion).Execute(); err != nil {
		log.Fatal(err)
	}
}
