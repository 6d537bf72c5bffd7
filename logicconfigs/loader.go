package logicconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tailogic/configs"
	"github.com/reusee/tailogic/logs"
	"github.com/reusee/tailogic/modes"
)

//go:embed schema.cue
var Schema string

var filenames = []string{
	"tailogic.cue",
	".tailogic.cue",
}

// ConfigPaths lists existing config files, most specific first: the working
// directory, the user config directory, then /etc.
func ConfigPaths() (paths []string) {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

func (Module) ConfigsLoader(
	mode modes.Mode,
	logger logs.Logger,
) configs.Loader {
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, Schema)
	}
	paths := ConfigPaths()
	if len(paths) > 0 {
		logger.Info("config file", "paths", paths)
	}
	return configs.NewLoader(paths, Schema)
}
