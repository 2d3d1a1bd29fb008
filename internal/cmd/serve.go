package cmd

import (
	"context"

	"focado/internal/config"
	"focado/internal/server"
)

// ServeCmd serves the timer over SSH
type ServeCmd struct {
	Host string `help:"Address to bind" default:"localhost"`
	Port string `help:"Port to listen on" default:"2222"`
}

// Run starts the SSH server and blocks until shutdown
func (s *ServeCmd) Run(cli *CLI) error {
	srv, err := server.NewServer(s.Host, s.Port, config.GetDBPath(), cli.Settings())
	if err != nil {
		return err
	}
	return srv.Start(context.Background())
}
