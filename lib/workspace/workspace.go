package workspace

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/pescuma/bethyw/lib/consoles"
	"github.com/pescuma/bethyw/lib/datasets"
	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/importers"
	"github.com/pescuma/bethyw/lib/model"
	"github.com/pescuma/bethyw/lib/server"
	"github.com/pescuma/bethyw/lib/utils"
)

type Workspace struct {
	console consoles.Console
	dir     string
	areas   *model.Areas
}

// NewWorkspace reads datasets from dir. A nil console prints to stderr.
func NewWorkspace(dir string, console consoles.Console) (*Workspace, error) {
	if dir == "" {
		dir = "datasets"
	}

	dir, err := utils.PathAbs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid datasets dir: %v", dir)
	}

	if console == nil {
		console = consoles.NewStdErrConsole()
	}

	return &Workspace{
		console: console,
		dir:     dir,
		areas:   model.NewAreas(),
	}, nil
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

func (w *Workspace) Dir() string {
	return w.dir
}

func (w *Workspace) Areas() *model.Areas {
	return w.areas
}

// Load imports the areas dataset and then every dataset in list, in order.
// A dataset that fails is reported on the console and does not stop the others.
// The codes of the failed datasets are returned.
func (w *Workspace) Load(list []datasets.InputFileSource, f *filters.Filters) []string {
	importer := importers.NewImporter(w.console, w.areas)

	var failed []string
	for _, ds := range append([]datasets.InputFileSource{datasets.Areas}, list...) {
		w.console.PushPrefix("%v: ", ds.Code)

		err := importer.Import(w.dir, ds, f)
		if err != nil {
			w.console.Printf("Error importing dataset:\n%v\n", err)
			failed = append(failed, ds.Code)
		}

		w.console.PopPrefix()
	}

	return failed
}

type DatasetFile struct {
	Source datasets.InputFileSource
	Path   string
	// Size is -1 when the file does not exist.
	Size int64
}

// ListFiles returns where each known dataset is expected to be, areas first.
func (w *Workspace) ListFiles() ([]*DatasetFile, error) {
	var result []*DatasetFile
	for _, ds := range append([]datasets.InputFileSource{datasets.Areas}, datasets.All...) {
		path := filepath.Join(w.dir, ds.File)

		size, err := utils.FileSize(path)
		if err != nil {
			return nil, model.WrapError(model.ErrIO, err, "failed to read file %v", path)
		}

		result = append(result, &DatasetFile{
			Source: ds,
			Path:   path,
			Size:   size,
		})
	}

	return result, nil
}

// Serve blocks serving the loaded areas over HTTP.
func (w *Workspace) Serve(opts *server.Options) error {
	return server.Run(w.console, w.areas, opts)
}
