package main

import (
	_ "time/tzdata"

	"github.com/m04kA/SMC-PickupService/internal/cli"
)

func main() {
	cli.Execute()
}
