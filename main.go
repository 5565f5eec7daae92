package main

import (
	"log"
)

func main() {
	if err := SetupCommands().Execute(); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
}
