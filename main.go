package main

import (
	"os"

	"github.com/lkarlslund/aclhound/modules/cli"
	"github.com/lkarlslund/aclhound/modules/ui"
)

func main() {
	err := cli.Run()
	if err != nil {
		ui.Error().Msg(err.Error())
		os.Exit(1)
	}
}
