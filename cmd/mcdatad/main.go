package main

import (
	"log"

	"github.com/Melv1no/mcdata/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
