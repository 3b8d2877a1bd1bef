package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LoggerOptions is the go-flags option group controlling log output.
type LoggerOptions struct {
	Level  string `long:"log-level" env:"LOG_LEVEL" description:"Logging level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	Pretty bool   `long:"log-pretty" env:"LOG_PRETTY" description:"Human-friendly console logging"`
}

// Setup configures the global zerolog logger from the parsed options.
func (l LoggerOptions) Setup() {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if l.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
