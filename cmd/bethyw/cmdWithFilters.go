package main

import (
	"github.com/pescuma/bethyw/lib/datasets"
	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/workspace"
)

type cmdWithFilters struct {
	Datasets []string `short:"d" sep:"," help:"Datasets to import, by code. Omit or use 'all' to import all of them."`
	Areas    []string `short:"a" sep:"," help:"Areas to include, matching any part of the authority code or name. Entries with * are globs that must match the whole code or name. Omit or use 'all' to include all of them."`
	Measures []string `short:"m" sep:"," help:"Measures to include, by codename. Omit or use 'all' to include all of them."`
	Years    string   `short:"y" default:"0" help:"Years to include, as YYYY or YYYY-ZZZZ. Use 0 to include all of them."`
}

func (c *cmdWithFilters) createFilters() (*filters.Filters, error) {
	areas, err := filters.ParseAreasArg(c.Areas)
	if err != nil {
		return nil, err
	}

	years, err := filters.ParseYearsArg(c.Years)
	if err != nil {
		return nil, err
	}

	return &filters.Filters{
		Areas:    areas,
		Measures: filters.ParseMeasuresArg(c.Measures),
		Years:    years,
	}, nil
}

// load parses all the arguments before importing anything.
func (c *cmdWithFilters) load(ws *workspace.Workspace) error {
	list, err := datasets.ParseList(c.Datasets)
	if err != nil {
		return err
	}

	f, err := c.createFilters()
	if err != nil {
		return err
	}

	ws.Load(list, f)

	return nil
}
