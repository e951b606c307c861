package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/pescuma/bethyw/lib/utils"
)

type DatasetsCmd struct {
}

func (c *DatasetsCmd) Run(ctx *context) error {
	files, err := ctx.ws.ListFiles()
	if err != nil {
		return err
	}

	table := utils.NewTable()
	table.AddRow("Code", "Name", "File", "Size")

	for _, f := range files {
		size := utils.IIf(f.Size >= 0, humanize.Bytes(uint64(utils.Max(f.Size, 0))), "missing")

		table.AddRow(f.Source.Code, f.Source.Name, f.Source.File, size)
	}

	fmt.Printf("Datasets in %v:\n\n", ctx.ws.Dir())

	_, err = table.WriteTo(os.Stdout)
	return err
}
