package main

import (
	"os"
	"summit/config"
	"summit/helper"
	"summit/shared/logger"

	"github.com/rs/zerolog/log"
)

const usage = "usage: migrate up|down|step-up|drop"

func main() {
	if len(os.Args) < 2 {
		log.Fatal().Msg(usage)
	}

	cfg := config.Get()

	logger.Init(cfg)

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Str("action", os.Args[1]).Msg(usage)
	}
}
