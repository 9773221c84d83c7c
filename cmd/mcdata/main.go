package main

import (
	"github.com/Melv1no/mcdata/pkg/cli"
)

func main() {
	cli.Execute()
}
