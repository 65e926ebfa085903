package main

import "errors"

var (
	errUnknownDistribution = errors.New("unknown distribution")
	errUnknownCommand      = errors.New("unknown command")
	errConfigFileRead      = errors.New("cannot read config file")
	errConfigInvalid       = errors.New("invalid config file")
	errDivergence          = errors.New("wikisort output diverges from reference")
)
