// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/countdown/internal/osutil"
)

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	logFileName    string
	statusFileName string

	// Computed absolute paths
	configFilePath string
	dataDir        string
	dbFilePath     string
	logFilePath    string
	soundDir       string
	statusFilePath string
}

// New computes the application paths in the XDG base directories. The
// COUNTDOWN_ENV variable suffixes every file name so that development runs do
// not touch the real timer.
func New() (*Paths, error) {
	p := &Paths{
		configDir:      "countdown",
		configFileName: "config.yml",
		dbFileName:     "countdown.db",
		logFileName:    "countdown.log",
		statusFileName: "status.json",
	}

	p.applyEnvironmentOverrides()

	err := p.computePaths()
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Paths) Dir() string {
	return p.configDir
}

func (p *Paths) ConfigFilePath() string {
	return p.configFilePath
}

func (p *Paths) DataDir() string {
	return p.dataDir
}

func (p *Paths) DBFilePath() string {
	return p.dbFilePath
}

func (p *Paths) LogFilePath() string {
	return p.logFilePath
}

func (p *Paths) SoundDir() string {
	return p.soundDir
}

func (p *Paths) StatusFilePath() string {
	return p.statusFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv("COUNTDOWN_ENV"))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("countdown_%s.db", env)
		p.logFileName = fmt.Sprintf("countdown_%s.log", env)
		p.statusFileName = fmt.Sprintf("status_%s.json", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	p.dataDir, err = xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	err = os.MkdirAll(p.dataDir, osutil.DirPermission)
	if err != nil {
		return err
	}

	p.dbFilePath = filepath.Join(p.dataDir, p.dbFileName)

	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)

	p.soundDir = filepath.Join(p.dataDir, "sounds")

	p.statusFilePath = filepath.Join(p.dataDir, p.statusFileName)

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
