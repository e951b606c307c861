package utils

import (
	"os"
	"path/filepath"
	"time"

	"github.com/aquilax/truncate"
	"github.com/schollz/progressbar/v3"
)

// NewProgressBar writes to stderr, so it never mixes with the rendered output.
func NewProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(time.Second),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{Saucer: "#", SaucerPadding: " ", BarStart: "|", BarEnd: "|"}),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func TruncateFilename(path string) string {
	return truncate.Truncate(filepath.Base(path), 30, "...", truncate.PositionMiddle)
}
