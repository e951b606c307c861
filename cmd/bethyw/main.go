package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/pescuma/bethyw/lib/workspace"
)

type cliArgs struct {
	Dir string `default:"datasets" env:"BETHYW_DIR" type:"path" help:"Directory with the dataset files."`

	Show     ShowCmd     `cmd:"" default:"withargs" help:"Import datasets and print them as tables or JSON."`
	Datasets DatasetsCmd `cmd:"" help:"List the known datasets and their files."`
	Serve    ServeCmd    `cmd:"" help:"Import datasets and serve them over HTTP."`
}

var cli cliArgs

type context struct {
	ws *workspace.Workspace
}

func newParser(args *cliArgs, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name("bethyw"),
		kong.Description("Parses official Welsh Government statistics data files."),
		kong.ShortUsageOnError(),
		kong.Configuration(kong.JSON, "./.bethyw.json", "~/.bethyw.json"),
	}, opts...)

	return kong.New(args, opts...)
}

func main() {
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	ws, err := workspace.NewWorkspace(cli.Dir, nil)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&context{
		ws: ws,
	})
	ctx.FatalIfErrorf(err)
}
