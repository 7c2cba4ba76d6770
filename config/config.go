package config

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

//go:embed config.json
var defaults embed.FS

const confName = "config.json"

type EditorConfig struct {
	LineNumbers bool   `json:"lineNumbers"`
	CursorShape string `json:"cursorShape"`
	CursorBlink bool   `json:"cursorBlink"`
	StatusLine  bool   `json:"statusLine"`
}

type Config struct {
	log     *log.Logger
	dir     string
	watcher *fsnotify.Watcher

	mu     sync.RWMutex
	editor EditorConfig
}

// Dir returns the directory the config file lives in.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "termview")
	}
	return filepath.Join(os.Getenv("HOME"), ".termview")
}

// NewConfig creates a config rooted at dir. A nil logger discards output.
func NewConfig(logger *log.Logger, dir string) *Config {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Config{log: logger, dir: dir}
}

func (cfg *Config) File() string {
	return filepath.Join(cfg.dir, confName)
}

// Init writes the default config if none exists and loads it.
func (cfg *Config) Init() error {
	if err := cfg.writeConfigIfMissing(); err != nil {
		return err
	}
	return cfg.readConfigIntoMemory()
}

// Editor returns a copy of the current editor settings.
func (cfg *Config) Editor() EditorConfig {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.editor
}

func (cfg *Config) writeConfigIfMissing() error {
	_, err := os.Stat(cfg.File())
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config %s: %w", cfg.File(), err)
	}

	content, err := fs.ReadFile(defaults, confName)
	if err != nil {
		return fmt.Errorf("read embedded config: %w", err)
	}
	if err := os.MkdirAll(cfg.dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(cfg.File(), content, 0664); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	cfg.log.Printf("Wrote default config to %s", cfg.File())
	return nil
}

func (cfg *Config) readConfigIntoMemory() error {
	content, err := os.ReadFile(cfg.File())
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var editor EditorConfig
	if err := json.Unmarshal(content, &editor); err != nil {
		return fmt.Errorf("parse config file %s: %w", cfg.File(), err)
	}

	cfg.mu.Lock()
	cfg.editor = editor
	cfg.mu.Unlock()
	cfg.log.Printf("Loaded config: %+v", editor)
	return nil
}

// Watch reloads the config whenever the file is written and passes the new
// settings to onChange. It returns once the watcher is registered; events are
// handled on a separate goroutine until Cleanup.
func (cfg *Config) Watch(onChange func(EditorConfig)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	if err := watcher.Add(cfg.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch config directory: %w", err)
	}
	cfg.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != cfg.File() {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := cfg.readConfigIntoMemory(); err != nil {
					cfg.log.Printf("Could not reload config: %v", err)
					continue
				}
				if onChange != nil {
					onChange(cfg.Editor())
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				cfg.log.Printf("Config watcher error: %v", err)
			}
		}
	}()
	return nil
}

func (cfg *Config) Cleanup() {
	if cfg.watcher != nil {
		cfg.watcher.Close()
		cfg.watcher = nil
	}
}
