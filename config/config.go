package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"lyricvocab/tokenize"
	"lyricvocab/vocab"
)

// Config is the full lyricvocab configuration.
type Config struct {
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
	Vocab     VocabConfig     `mapstructure:"vocab"`
	Log       LogConfig       `mapstructure:"log"`
	Output    OutputConfig    `mapstructure:"output"`
}

// TokenizerConfig selects the kagome dictionary and segmentation mode.
type TokenizerConfig struct {
	Dict string `mapstructure:"dict"`
	Mode string `mapstructure:"mode"`
}

// VocabConfig controls vocabulary ordering.
type VocabConfig struct {
	Order string `mapstructure:"order"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls how the vocabulary is rendered and dumped.
type OutputConfig struct {
	Format   string `mapstructure:"format"`
	Hiragana bool   `mapstructure:"hiragana"`
	DumpDir  string `mapstructure:"dump_dir"`
}

// Output formats.
const (
	FormatList  = "list"
	FormatTable = "table"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
)

// LoadOptions are the inputs to Load. Cmd may be nil.
type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Tokenizer: TokenizerConfig{
			Dict: tokenize.DictUni,
			Mode: tokenize.ModeNormal,
		},
		Vocab: VocabConfig{
			Order: vocab.OrderWritten.String(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Output: OutputConfig{
			Format:   FormatList,
			Hiragana: false,
			DumpDir:  "",
		},
	}
}

// RegisterFlags declares one flag per configuration key on fs.
func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("tokenizer-dict", defaults.Tokenizer.Dict, "Tokenizer dictionary (uni|ipa); ipa reads inflected words by their conjugated stem")
	fs.String("tokenizer-mode", defaults.Tokenizer.Mode, "Segmentation mode (normal|search|extended)")
	fs.String("vocab-order", defaults.Vocab.Order, "Vocabulary sort order (written|legacy)")
	fs.String("log-level", defaults.Log.Level, "Log level (debug|info|warn|error)")
	fs.String("log-format", defaults.Log.Format, "Log format (text|json)")
	fs.StringP("output-format", "o", defaults.Output.Format, "Output format (list|table|tsv|json)")
	fs.Bool("output-hiragana", defaults.Output.Hiragana, "Render readings in hiragana")
	fs.String("output-dump-dir", defaults.Output.DumpDir, "Directory for JSON dumps of tokens and vocabulary")
}

// Load merges defaults, an optional config file, LYRICVOCAB_* environment
// variables and command flags, in increasing precedence.
func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	v.SetEnvPrefix("LYRICVOCAB")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("lyricvocab")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("tokenizer.dict", c.Tokenizer.Dict)
	v.SetDefault("tokenizer.mode", c.Tokenizer.Mode)
	v.SetDefault("vocab.order", c.Vocab.Order)
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
	v.SetDefault("output.format", c.Output.Format)
	v.SetDefault("output.hiragana", c.Output.Hiragana)
	v.SetDefault("output.dump_dir", c.Output.DumpDir)
}

// flagKeys maps flag names onto the nested keys used by config files and
// the environment.
var flagKeys = map[string]string{
	"tokenizer-dict":  "tokenizer.dict",
	"tokenizer-mode":  "tokenizer.mode",
	"vocab-order":     "vocab.order",
	"log-level":       "log.level",
	"log-format":      "log.format",
	"output-format":   "output.format",
	"output-hiragana": "output.hiragana",
	"output-dump-dir": "output.dump_dir",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Validate checks enumerated values so bad settings fail before any text
// is processed.
func (c Config) Validate() error {
	if _, err := tokenize.ParseMode(c.Tokenizer.Mode); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(c.Tokenizer.Dict)) {
	case "", tokenize.DictUni, tokenize.DictIPA:
	default:
		return fmt.Errorf("%w: %q", tokenize.ErrUnknownDict, c.Tokenizer.Dict)
	}
	if _, err := vocab.ParseOrder(c.Vocab.Order); err != nil {
		return err
	}
	switch strings.ToLower(c.Output.Format) {
	case FormatList, FormatTable, FormatTSV, FormatJSON:
	default:
		return fmt.Errorf("invalid output format %q (expected %s|%s|%s|%s)",
			c.Output.Format, FormatList, FormatTable, FormatTSV, FormatJSON)
	}
	return nil
}
