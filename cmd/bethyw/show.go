package main

import (
	"fmt"
	"os"
)

type ShowCmd struct {
	cmdWithFilters

	JSON bool `short:"j" name:"json" help:"Print the data as JSON instead of tables."`
}

func (c *ShowCmd) Run(ctx *context) error {
	err := c.load(ctx.ws)
	if err != nil {
		return err
	}

	areas := ctx.ws.Areas()

	if c.JSON {
		text, err := areas.ToJSON()
		if err != nil {
			return err
		}

		fmt.Println(text)
		return nil
	}

	return areas.WriteText(os.Stdout)
}
