package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/bethyw/lib/model"
)

func parse(t *testing.T, args ...string) (*cliArgs, string) {
	var result cliArgs

	parser, err := newParser(&result, kong.Exit(func(int) { t.FailNow() }))
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)

	return &result, ctx.Command()
}

func TestShowIsDefault(t *testing.T) {
	t.Parallel()

	args, cmd := parse(t, "-d", "popden,biz", "-a", "W06000023,powys", "-m", "pop", "-y", "2010-2015", "-j")

	assert.Equal(t, "show", cmd)
	assert.Equal(t, []string{"popden", "biz"}, args.Show.Datasets)
	assert.Equal(t, []string{"W06000023", "powys"}, args.Show.Areas)
	assert.Equal(t, []string{"pop"}, args.Show.Measures)
	assert.Equal(t, "2010-2015", args.Show.Years)
	assert.True(t, args.Show.JSON)
}

func TestServeDefaults(t *testing.T) {
	t.Parallel()

	args, cmd := parse(t, "serve")

	assert.Equal(t, "serve", cmd)
	assert.Equal(t, uint(2427), args.Serve.Port)
	assert.Equal(t, "0", args.Serve.Years)
}

func TestCreateFilters(t *testing.T) {
	t.Parallel()

	c := cmdWithFilters{
		Areas:    []string{"powys"},
		Measures: []string{"all"},
		Years:    "2010-2015",
	}

	f, err := c.createFilters()
	require.NoError(t, err)

	assert.False(t, f.Areas.IsEmpty())
	assert.True(t, f.Measures.IsEmpty())
	assert.Equal(t, uint(2010), f.Years.Start)
	assert.Equal(t, uint(2015), f.Years.End)

	c.Years = "20-20"
	_, err = c.createFilters()
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	assert.EqualError(t, err, "invalid input for years argument")
}
