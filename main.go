package main

import (
	"github.com/hance08/tally/cmd"
	"github.com/hance08/tally/migrations"
)

func main() {
	cmd.Execute(migrations.FS)
}
