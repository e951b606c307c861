package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/bethyw/lib/consoles"
	"github.com/pescuma/bethyw/lib/model"
)

type Options struct {
	Port uint
}

func Run(console consoles.Console, areas *model.Areas, opts *Options) error {
	s := newServer(areas, opts)

	console.Printf("Serving %v areas on port %v...\n", areas.Size(), s.opts.Port)

	return s.router().Run(fmt.Sprintf(":%v", s.opts.Port))
}

type server struct {
	opts  *Options
	areas *model.Areas
}

func newServer(areas *model.Areas, opts *Options) *server {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Port == 0 {
		opts.Port = 2427
	}

	return &server{
		opts:  opts,
		areas: areas,
	}
}

func (s *server) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	s.initAreas(r)

	return r
}
