package main

import (
	"github.com/pescuma/bethyw/lib/server"
)

type ServeCmd struct {
	cmdWithFilters

	Port uint `default:"2427" help:"Port to listen to."`
}

func (c *ServeCmd) Run(ctx *context) error {
	err := c.load(ctx.ws)
	if err != nil {
		return err
	}

	return ctx.ws.Serve(&server.Options{
		Port: c.Port,
	})
}
