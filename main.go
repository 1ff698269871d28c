package main

import (
	"github.com/arnavsurve/tsconfig-init/cmd/cli"
	"github.com/arnavsurve/tsconfig-init/internal/entrypoint"
)

func main() {
	entrypoint.Main(cli.Run)
}
