package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BreweryDB/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("BreweryDB"), kong.Description("BreweryDB serves a searchable directory of breweries."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
