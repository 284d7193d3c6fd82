package powercrisis

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/power-crisis/internal/config"
)

// settings are shared by every game instance created after they are set.
var settings = struct {
	sync.RWMutex
	configPath string
	preset     config.DifficultyPreset
	level      string
	logger     *log.Logger
}{
	logger: log.New(io.Discard),
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settings.Lock()
	defer settings.Unlock()
	settings.configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// An unknown or empty name keeps the config's own difficulty.
func SetDifficultyPreset(preset string) {
	settings.Lock()
	defer settings.Unlock()

	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		settings.preset = ""
		return
	}
	settings.preset = p
}

// SetLevel selects the map: a built-in ID or a file path.
// Empty means the level named in the config.
func SetLevel(ref string) {
	settings.Lock()
	defer settings.Unlock()
	settings.level = ref
}

// SetLogger sets the logger new games write to.
func SetLogger(l *log.Logger) {
	settings.Lock()
	defer settings.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	settings.logger = l
}

type snapshot struct {
	configPath string
	preset     config.DifficultyPreset
	level      string
	logger     *log.Logger
}

func currentSettings() snapshot {
	settings.RLock()
	defer settings.RUnlock()
	return snapshot{
		configPath: settings.configPath,
		preset:     settings.preset,
		level:      settings.level,
		logger:     settings.logger,
	}
}
