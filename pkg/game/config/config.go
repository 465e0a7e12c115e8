// Package config resolves the game settings from defaults, a YAML file, the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"minesweeper/pkg/game/board"
)

// Frontends
const (
	FrontendTUI   = "tui"
	FrontendGUI   = "gui"
	FrontendServe = "serve"
)

const envPrefix = "MINESWEEPER_"

const (
	environmentVariableWidth    = envPrefix + "WIDTH"
	environmentVariableHeight   = envPrefix + "HEIGHT"
	environmentVariableMines    = envPrefix + "MINES"
	environmentVariableSeed     = envPrefix + "SEED"
	environmentVariableFrontend = envPrefix + "FRONTEND"
	environmentVariableAddr     = envPrefix + "ADDR"
	environmentVariableLogLevel = envPrefix + "LOG_LEVEL"
	environmentVariableLogFile  = envPrefix + "LOG_FILE"
	environmentVariableLocale   = envPrefix + "LOCALE"
)

// ErrUnknownFrontend is returned by Validate for a frontend other than tui, gui or serve
var ErrUnknownFrontend = errors.New("unknown frontend")

// Config holds every setting the program starts with
type Config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Mines    int    `yaml:"mines"`
	Seed     uint64 `yaml:"seed"`
	Frontend string `yaml:"frontend"`
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"logLevel"`
	LogFile  string `yaml:"logFile"`
	Locale   string `yaml:"locale"`

	// File is the YAML file the settings were read from, if any
	File string `yaml:"-"`
}

// Default returns the beginner board with the terminal frontend
func Default() Config {
	return Config{
		Width:    9,
		Height:   9,
		Mines:    10,
		Frontend: FrontendTUI,
		Addr:     ":8080",
		LogLevel: "info",
		Locale:   "en",
	}
}

// usage prints how to run the game to the flagset's output.
func usage(fs *flag.FlagSet) {
	envVars := []string{
		environmentVariableWidth,
		environmentVariableHeight,
		environmentVariableMines,
		environmentVariableSeed,
		environmentVariableFrontend,
		environmentVariableAddr,
		environmentVariableLogLevel,
		environmentVariableLogFile,
		environmentVariableLocale,
	}
	fmt.Fprintf(fs.Output(), "Plays minesweeper in the terminal, a window or over HTTP\n")
	fmt.Fprintf(fs.Output(), "Reads environment variables when possible: [%s]\n", strings.Join(envVars, ","))
	fmt.Fprintf(fs.Output(), "Usage of %s:\n", fs.Name())
	fs.PrintDefaults()
}

// newFlagSet creates a flagSet that populates c. Defaults shown are the values before flags.
func (c *Config) newFlagSet(output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("minesweeper", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		usage(fs) // [lazy evaluation]
	}
	fs.StringVar(&c.File, "config", c.File, "YAML file with settings; environment variables and flags override it.")
	fs.IntVar(&c.Width, "width", c.Width, "Number of columns on the board.")
	fs.IntVar(&c.Height, "height", c.Height, "Number of rows on the board.")
	fs.IntVar(&c.Mines, "mines", c.Mines, "Number of mines to place.")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Seed for mine placement; 0 picks a new layout every game.")
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "How to play: tui, gui or serve.")
	fs.StringVar(&c.Addr, "addr", c.Addr, "Listen address for the serve frontend.")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: trace, debug, info, warn or error.")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "File to append logs to. The terminal frontend discards logs without one.")
	fs.StringVar(&c.Locale, "locale", c.Locale, "Language of the game text.")
	return fs
}

// Parse builds the configuration from the program arguments and the environment.
// Settings are layered: defaults, then the YAML file, then the environment, then flags.
func Parse(osArgs []string, osLookupEnvFunc func(string) (string, bool)) (Config, error) {
	return parse(osArgs, osLookupEnvFunc, os.Stderr)
}

func parse(osArgs []string, osLookupEnvFunc func(string) (string, bool), output io.Writer) (Config, error) {
	if len(osArgs) == 0 {
		osArgs = []string{""}
	}
	programArgs := osArgs[1:]

	// First pass only finds which flags were given, and the config file
	flagged := Default()
	fs := flagged.newFlagSet(output)
	if err := fs.Parse(programArgs); err != nil {
		return Config{}, err
	}

	c := Default()
	c.File = flagged.File
	if c.File != "" {
		if err := c.loadFile(c.File); err != nil {
			return Config{}, err
		}
	}
	if err := c.applyEnv(osLookupEnvFunc); err != nil {
		return Config{}, err
	}

	// Second pass applies the given flags on top of the file and environment
	final := c.newFlagSet(io.Discard)
	set := make([]string, 0)
	fs.Visit(func(f *flag.Flag) {
		set = append(set, "-"+f.Name+"="+f.Value.String())
	})
	if err := final.Parse(set); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(osLookupEnvFunc func(string) (string, bool)) error {
	envString := func(key string, dest *string) {
		if v, ok := osLookupEnvFunc(key); ok && v != "" {
			*dest = v
		}
	}
	envInt := func(key string, dest *int) error {
		v, ok := osLookupEnvFunc(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dest = n
		return nil
	}

	for key, dest := range map[string]*int{
		environmentVariableWidth:  &c.Width,
		environmentVariableHeight: &c.Height,
		environmentVariableMines:  &c.Mines,
	} {
		if err := envInt(key, dest); err != nil {
			return err
		}
	}
	if v, ok := osLookupEnvFunc(environmentVariableSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", environmentVariableSeed, err)
		}
		c.Seed = seed
	}
	envString(environmentVariableFrontend, &c.Frontend)
	envString(environmentVariableAddr, &c.Addr)
	envString(environmentVariableLogLevel, &c.LogLevel)
	envString(environmentVariableLogFile, &c.LogFile)
	envString(environmentVariableLocale, &c.Locale)
	return nil
}

// Validate checks the board parameters, the frontend and the log level
func (c Config) Validate() error {
	if err := board.ValidateConfig(c.Width, c.Height, c.Mines); err != nil {
		return err
	}
	switch c.Frontend {
	case FrontendTUI, FrontendGUI, FrontendServe:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, c.Frontend)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level, or info when it cannot be parsed
func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
