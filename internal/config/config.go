package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "prefs.db"
	DefaultLogName        = "tido.log"
	appDirName            = "tido"
	configEnv             = "TODO_CONFIG"
)

type Keymap struct {
	Quit       string `toml:"quit"`
	Add        string `toml:"add"`
	Up         string `toml:"up"`
	Down       string `toml:"down"`
	Toggle     string `toml:"toggle"`
	Delete     string `toml:"delete"`
	Confirm    string `toml:"confirm"`
	Cancel     string `toml:"cancel"`
	Search     string `toml:"search"`
	NextFilter string `toml:"next_filter"`
	FilterAll  string `toml:"filter_all"`
	FilterOpen string `toml:"filter_active"`
	FilterDone string `toml:"filter_completed"`
	CycleSort  string `toml:"cycle_sort"`
	Theme      string `toml:"theme"`
	DueForward string `toml:"due_forward"`
	DueBack    string `toml:"due_back"`
	DueClear   string `toml:"due_clear"`
	Edit       string `toml:"edit"`
	ToggleHelp string `toml:"help"`
}

type Config struct {
	DBPath        string `toml:"db_path"`
	LogFile       string `toml:"log_file"`
	LogLevel      string `toml:"log_level"`
	DefaultFilter string `toml:"default_filter"`
	DefaultSort   string `toml:"default_sort"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath returns $TODO_CONFIG when set, otherwise config.toml
// under the user config directory. It falls back to the working directory
// when no config directory is known.
func ResolveConfigPath() string {
	if p := os.Getenv(configEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, appDirName, DefaultConfigFileName)
}

// LoadOrCreate reads the config at path. A missing file is created with
// defaults. Relative db and log paths are resolved against the config's
// directory.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg.resolve(filepath.Dir(path)), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogName
	}
	cfg.Keys = cfg.Keys.withDefaults(defaultKeymap())
	return cfg.resolve(filepath.Dir(path)), nil
}

func (c Config) resolve(dir string) Config {
	if c.DBPath != "" && !filepath.IsAbs(c.DBPath) {
		c.DBPath = filepath.Join(dir, c.DBPath)
	}
	if c.LogFile != "" && !filepath.IsAbs(c.LogFile) {
		c.LogFile = filepath.Join(dir, c.LogFile)
	}
	return c
}

// withDefaults fills keys left blank in a hand-edited file.
func (k Keymap) withDefaults(d Keymap) Keymap {
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&k.Quit, d.Quit)
	fill(&k.Add, d.Add)
	fill(&k.Up, d.Up)
	fill(&k.Down, d.Down)
	fill(&k.Toggle, d.Toggle)
	fill(&k.Delete, d.Delete)
	fill(&k.Confirm, d.Confirm)
	fill(&k.Cancel, d.Cancel)
	fill(&k.Search, d.Search)
	fill(&k.NextFilter, d.NextFilter)
	fill(&k.FilterAll, d.FilterAll)
	fill(&k.FilterOpen, d.FilterOpen)
	fill(&k.FilterDone, d.FilterDone)
	fill(&k.CycleSort, d.CycleSort)
	fill(&k.Theme, d.Theme)
	fill(&k.DueForward, d.DueForward)
	fill(&k.DueBack, d.DueBack)
	fill(&k.DueClear, d.DueClear)
	fill(&k.Edit, d.Edit)
	fill(&k.ToggleHelp, d.ToggleHelp)
	return k
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func Default() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		DBPath:        DefaultDBName,
		LogFile:       DefaultLogName,
		LogLevel:      "info",
		DefaultFilter: "all",
		DefaultSort:   "created",
		Keys:          defaultKeymap(),
	}
}

func defaultKeymap() Keymap {
	return Keymap{
		Quit:       "q",
		Add:        "a",
		Up:         "k",
		Down:       "j",
		Toggle:     " ",
		Delete:     "d",
		Confirm:    "enter",
		Cancel:     "esc",
		Search:     "/",
		NextFilter: "f",
		FilterAll:  "1",
		FilterOpen: "2",
		FilterDone: "3",
		CycleSort:  "s",
		Theme:      "t",
		DueForward: "]",
		DueBack:    "[",
		DueClear:   "x",
		Edit:       "e",
		ToggleHelp: "?",
	}
}
