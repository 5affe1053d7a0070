package main

import (
	"github.com/atulub35/outsider-client-go/cmd/outsider/cmd"
)

func main() {
	cmd.Execute()
}
