// Package config loads the gepcal rc file: feed locations, the
// display timezone, the visible-hours window and UI preferences.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Feed settings
	FeedFiles []string

	// Calendar settings
	Timezone       string
	DayStartMinute int // visible-hours window, minutes from midnight
	DayEndMinute   int
	StartupView    string // month, week or day

	// Display settings
	TimeFormat     string
	DateFormat     string
	MaxMonthEvents int // events listed per month cell before folding

	// UI settings
	Colors map[string]string

	// Behavior settings
	AutoRefresh bool
	RefreshRate time.Duration
}

func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		FeedFiles: []string{filepath.Join(home, ".gepcal", "feed.json")},

		Timezone:       "Europe/Madrid",
		DayStartMinute: 5 * 60,
		DayEndMinute:   24 * 60,
		StartupView:    "month",

		TimeFormat:     "15:04",
		DateFormat:     "Jan 2, 2006",
		MaxMonthEvents: 3,

		Colors: map[string]string{
			"normal":   "default",
			"today":    "yellow",
			"selected": "reverse",
			"weekend":  "blue",
			"session":  "green",
			"variant":  "magenta",
			"header":   "bold",
		},

		AutoRefresh: true,
		RefreshRate: 30 * time.Second,
	}
}

func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	// Try multiple config file locations
	configPaths := []string{
		os.Getenv("GEPCAL_CONFIG"),
		filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "gepcal", "gepcalrc"),
		filepath.Join(os.Getenv("HOME"), ".config", "gepcal", "gepcalrc"),
		filepath.Join(os.Getenv("HOME"), ".gepcalrc"),
	}

	for _, path := range configPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err == nil {
			if err := config.loadFromFile(path); err != nil {
				return nil, fmt.Errorf("error loading config from %s: %w", path, err)
			}
			break
		}
	}

	return config, nil
}

func (c *Config) loadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := c.parseLine(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	return scanner.Err()
}

func (c *Config) parseLine(line string) error {
	// Handle set commands: set variable value
	setRe := regexp.MustCompile(`^set\s+(\w+)\s+(.+)$`)
	if matches := setRe.FindStringSubmatch(line); matches != nil {
		return c.setVariable(matches[1], matches[2])
	}

	// Handle color commands: color element color_spec
	colorRe := regexp.MustCompile(`^color\s+(\w+)\s+(.+)$`)
	if matches := colorRe.FindStringSubmatch(line); matches != nil {
		c.Colors[matches[1]] = matches[2]
		return nil
	}

	return fmt.Errorf("unknown config line: %s", line)
}

func (c *Config) setVariable(name, value string) error {
	// Remove quotes if present
	value = strings.Trim(value, `"'`)

	switch name {
	case "feed_file", "feed_files":
		// Handle multiple files separated by commas
		files := strings.Split(value, ",")
		for i, file := range files {
			files[i] = strings.TrimSpace(file)
			// Expand ~ to home directory
			if strings.HasPrefix(files[i], "~/") {
				home, _ := os.UserHomeDir()
				files[i] = filepath.Join(home, files[i][2:])
			}
		}
		c.FeedFiles = files

	case "timezone":
		if _, err := time.LoadLocation(value); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", value, err)
		}
		c.Timezone = value

	case "day_start":
		minutes, err := parseClock(value)
		if err != nil {
			return err
		}
		c.DayStartMinute = minutes

	case "day_end":
		minutes, err := parseClock(value)
		if err != nil {
			return err
		}
		c.DayEndMinute = minutes

	case "startup_view":
		switch strings.ToLower(value) {
		case "month", "week", "day":
			c.StartupView = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid startup_view: %s", value)
		}

	case "time_format":
		c.TimeFormat = value

	case "date_format":
		c.DateFormat = value

	case "max_month_events":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid max_month_events: %s", value)
		}
		c.MaxMonthEvents = n

	case "auto_refresh":
		c.AutoRefresh = strings.ToLower(value) == "true" || value == "1"

	case "refresh_rate":
		rate, err := time.ParseDuration(value)
		if err != nil {
			// Try parsing as seconds
			if seconds, err2 := strconv.Atoi(value); err2 == nil {
				rate = time.Duration(seconds) * time.Second
			} else {
				return fmt.Errorf("invalid refresh_rate: %s", value)
			}
		}
		c.RefreshRate = rate

	default:
		return fmt.Errorf("unknown config variable: %s", name)
	}

	return nil
}

// parseClock parses "HH:MM" into minutes from midnight. "24:00" is
// accepted as the exclusive end of the day.
func parseClock(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", value)
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", value)
	}
	return hour*60 + minute, nil
}
