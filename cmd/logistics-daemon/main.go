package main

import (
	"log"
	"os"

	"github.com/andrescamacho/logistics-go/internal/adapters/cli"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("logistics: ")

	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
