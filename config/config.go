package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// DefaultPath is the fixed configuration file location. The panel takes
// no CLI flags; a supervised service reads this path once at startup.
const DefaultPath = "/etc/ttypanel.conf"

// Config is the immutable, process-lifetime panel configuration.
// It is loaded once and passed explicitly; nothing mutates it afterwards.
type Config struct {
	Device           string
	UpdateInterval   int
	DateTimeFormat   string
	LabelColour      string
	DataColour       string
	NetworkInterface string

	CPUTempLocation     string
	CPUTempLow          int
	CPUTempHigh         int
	CPUTempColourNormal string
	CPUTempColourMid    string
	CPUTempColourHigh   string

	DrivePatterns     []string
	DriveUsageLow     int
	DriveUsageHigh    int
	DriveColourNormal string
	DriveColourMid    string
	DriveColourHigh   string
}

// Default returns the documented defaults for every key.
func Default() Config {
	return Config{
		Device:         "/dev/tty1",
		UpdateInterval: 2,
		DateTimeFormat: "%-d %B %Y %H:%M:%S",
		LabelColour:    "white",
		DataColour:     "cyan",

		CPUTempLocation:     "/sys/class/thermal/thermal_zone0/temp",
		CPUTempLow:          80,
		CPUTempHigh:         90,
		CPUTempColourNormal: "light green",
		CPUTempColourMid:    "light yellow",
		CPUTempColourHigh:   "light red",

		DriveUsageLow:     75,
		DriveUsageHigh:    90,
		DriveColourNormal: "light green",
		DriveColourMid:    "light yellow",
		DriveColourHigh:   "light red",
	}
}

// Load reads the key=value config file at path. A missing file is not an
// error (a freshly imaged device runs on defaults); a malformed numeric
// value or an inverted threshold pair is, so a bad config fails at
// startup instead of mis-rendering for the process lifetime.
func Load(path string) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("properties")
	setDefaults(v, def)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		Device:           unquote(v.GetString("device")),
		DateTimeFormat:   unquote(v.GetString("date_time_format")),
		LabelColour:      unquote(v.GetString("label_colour")),
		DataColour:       unquote(v.GetString("data_colour")),
		NetworkInterface: unquote(v.GetString("network_interface_name")),

		CPUTempLocation:     unquote(v.GetString("cpu_temp_location")),
		CPUTempColourNormal: unquote(v.GetString("cpu_temp_colour_normal")),
		CPUTempColourMid:    unquote(v.GetString("cpu_temp_colour1")),
		CPUTempColourHigh:   unquote(v.GetString("cpu_temp_colour2")),

		DrivePatterns:     splitPatterns(unquote(v.GetString("hdd_display"))),
		DriveColourNormal: unquote(v.GetString("hdd_usage_colour_normal")),
		DriveColourMid:    unquote(v.GetString("hdd_usage_colour1")),
		DriveColourHigh:   unquote(v.GetString("hdd_usage_colour2")),
	}

	var err error
	if cfg.UpdateInterval, err = intKey(v, "update_interval"); err != nil {
		return Config{}, err
	}
	if cfg.CPUTempLow, err = intKey(v, "cpu_temp1"); err != nil {
		return Config{}, err
	}
	if cfg.CPUTempHigh, err = intKey(v, "cpu_temp2"); err != nil {
		return Config{}, err
	}
	if cfg.DriveUsageLow, err = intKey(v, "hdd_usage1"); err != nil {
		return Config{}, err
	}
	if cfg.DriveUsageHigh, err = intKey(v, "hdd_usage2"); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, def Config) {
	v.SetDefault("device", def.Device)
	v.SetDefault("update_interval", strconv.Itoa(def.UpdateInterval))
	v.SetDefault("date_time_format", def.DateTimeFormat)
	v.SetDefault("label_colour", def.LabelColour)
	v.SetDefault("data_colour", def.DataColour)
	v.SetDefault("network_interface_name", "")

	v.SetDefault("cpu_temp_location", def.CPUTempLocation)
	v.SetDefault("cpu_temp1", strconv.Itoa(def.CPUTempLow))
	v.SetDefault("cpu_temp2", strconv.Itoa(def.CPUTempHigh))
	v.SetDefault("cpu_temp_colour_normal", def.CPUTempColourNormal)
	v.SetDefault("cpu_temp_colour1", def.CPUTempColourMid)
	v.SetDefault("cpu_temp_colour2", def.CPUTempColourHigh)

	v.SetDefault("hdd_display", "")
	v.SetDefault("hdd_usage1", strconv.Itoa(def.DriveUsageLow))
	v.SetDefault("hdd_usage2", strconv.Itoa(def.DriveUsageHigh))
	v.SetDefault("hdd_usage_colour_normal", def.DriveColourNormal)
	v.SetDefault("hdd_usage_colour1", def.DriveColourMid)
	v.SetDefault("hdd_usage_colour2", def.DriveColourHigh)
}

func (c Config) validate() error {
	if c.UpdateInterval < 1 {
		return fmt.Errorf("update_interval must be >= 1, got %d", c.UpdateInterval)
	}
	if c.CPUTempLow >= c.CPUTempHigh {
		return fmt.Errorf("cpu_temp1 (%d) must be below cpu_temp2 (%d)", c.CPUTempLow, c.CPUTempHigh)
	}
	if c.DriveUsageLow >= c.DriveUsageHigh {
		return fmt.Errorf("hdd_usage1 (%d) must be below hdd_usage2 (%d)", c.DriveUsageLow, c.DriveUsageHigh)
	}
	return nil
}

// intKey parses a numeric key strictly. Viper's GetInt would silently
// coerce garbage to zero; a mistyped threshold has to abort startup.
func intKey(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(unquote(v.GetString(key)))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config key %s: not an integer: %q", key, raw)
	}
	return n, nil
}

// unquote strips one pair of surrounding double quotes, if present.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// splitPatterns parses the comma-separated hdd_display list.
func splitPatterns(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
