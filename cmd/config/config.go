package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/beatoz/swoupon-go/swoupon"
	"github.com/beatoz/swoupon-go/types/xerrors"
	"github.com/shopspring/decimal"
	tmos "github.com/tendermint/tendermint/libs/os"
)

const (
	LogFormatPlain = "plain"
	LogFormatJSON  = "json"

	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"

	DefaultLogLevel       = "info"
	DefaultTolerance      = "0.00000001"
	DefaultCapCheckVolume = uint64(100_000)

	defaultConfigDir      = "config"
	defaultConfigFileName = "config.toml"
)

// DefaultVolumes are the volumes reported by the scenarios command.
var DefaultVolumes = []uint64{0, 1, 100, 1_000, 10_000, 50_000, 100_000, 500_000}

// Config is loaded by viper from the config file, SWOUPON_* environment variables and flags.
type Config struct {
	RootDir   string `mapstructure:"home" toml:"-"`
	LogLevel  string `mapstructure:"log_level" toml:"log_level"`
	LogFormat string `mapstructure:"log_format" toml:"log_format"`

	// Curve is the reward curve, "sqrt" or "pow".
	Curve string `mapstructure:"curve" toml:"curve"`
	// Output is the report format, "text", "json" or "yaml".
	Output string `mapstructure:"output" toml:"output"`
	// Tolerance is the largest accepted relative difference from the decimal reference.
	Tolerance      string   `mapstructure:"tolerance" toml:"tolerance"`
	Volumes        []uint64 `mapstructure:"volumes" toml:"volumes"`
	CapCheckVolume uint64   `mapstructure:"cap_check_volume" toml:"cap_check_volume"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:       DefaultLogLevel,
		LogFormat:      LogFormatPlain,
		Curve:          swoupon.CurveSqrt.String(),
		Output:         OutputText,
		Tolerance:      DefaultTolerance,
		Volumes:        append([]uint64(nil), DefaultVolumes...),
		CapCheckVolume: DefaultCapCheckVolume,
	}
}

func (c *Config) SetRoot(root string) *Config {
	c.RootDir = root
	return c
}

func (c *Config) ConfigFile() string {
	return filepath.Join(c.RootDir, defaultConfigDir, defaultConfigFileName)
}

// RewardCurve returns the parsed Curve.
func (c *Config) RewardCurve() swoupon.RewardCurve {
	curve, xerr := swoupon.ParseRewardCurve(c.Curve)
	if xerr != nil {
		// rejected by ValidateBasic
		panic(xerr)
	}
	return curve
}

// ToleranceDecimal returns the parsed Tolerance.
func (c *Config) ToleranceDecimal() decimal.Decimal {
	d, err := decimal.NewFromString(c.Tolerance)
	if err != nil {
		// rejected by ValidateBasic
		panic(err)
	}
	return d
}

// ValidateBasic performs basic validation and returns an error if any check fails.
func (c *Config) ValidateBasic() xerrors.XError {
	switch c.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return xerrors.ErrInvalidConfig.Wrapf("log_format %q, must be %q or %q", c.LogFormat, LogFormatPlain, LogFormatJSON)
	}
	switch strings.ToLower(c.Output) {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return xerrors.ErrInvalidConfig.Wrapf("output %q, must be one of %q, %q, %q", c.Output, OutputText, OutputJSON, OutputYAML)
	}
	if _, xerr := swoupon.ParseRewardCurve(c.Curve); xerr != nil {
		return xerrors.ErrInvalidConfig.Wrap(xerr)
	}
	tol, err := decimal.NewFromString(c.Tolerance)
	if err != nil {
		return xerrors.ErrInvalidConfig.Wrapf("tolerance %q: %v", c.Tolerance, err)
	}
	if tol.IsNegative() {
		return xerrors.ErrInvalidConfig.Wrapf("tolerance %v can't be negative", tol)
	}
	return nil
}

// EnsureRoot creates the root and config directories when they do not exist.
func EnsureRoot(root string) xerrors.XError {
	if err := tmos.EnsureDir(filepath.Join(root, defaultConfigDir), 0o700); err != nil {
		return xerrors.From(err).Wrapf("ensure root %s", root)
	}
	return nil
}

// WriteConfigFile writes conf as TOML to path.
// An existing file is left untouched unless overwrite is set.
func WriteConfigFile(path string, conf *Config, overwrite bool) xerrors.XError {
	if !overwrite && tmos.FileExists(path) {
		return xerrors.ErrInvalidConfig.Wrapf("%s already exists", path)
	}
	if err := tmos.EnsureDir(filepath.Dir(path), 0o700); err != nil {
		return xerrors.From(err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return xerrors.From(err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(conf); err != nil {
		return xerrors.From(err).Wrapf("write %s", path)
	}
	return nil
}
