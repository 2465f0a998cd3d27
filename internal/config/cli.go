package config

import (
	"github.com/Alia5/paramgen/internal/cmd"
	"github.com/Alia5/paramgen/internal/log"
)

type CLI struct {
	Config string     `help:"Path to a configuration file (json, yaml or toml)" type:"path" env:"PARAMGEN_CONFIG"`
	Log    log.Config `embed:"" prefix:"log."`

	Generate  cmd.Generate      `cmd:"" help:"Generate a nih-plug parameter struct from a UI description"`
	Inspect   cmd.Inspect       `cmd:"" help:"List the parameters a UI description would produce"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
	Version   cmd.Version       `cmd:"" help:"Print the version"`
}
