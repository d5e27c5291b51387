package main

import (
	"github.com/samber/lo"
	"github.com/shinigami-rest/shinigami/cmd"
	"github.com/shinigami-rest/shinigami/config"
	"github.com/shinigami-rest/shinigami/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
