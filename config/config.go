// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package config holds the settings of the editable command: logging,
// document loading and output.
package config // import "akhil.cc/editable/config"

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"unicode"

	"akhil.cc/editable/parser"
	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"
)

//go:embed config.yaml
var defaults []byte

type DocumentConfig struct {
	Sanitize bool     `yaml:"sanitize"`
	DropTags []string `yaml:"drop_tags" validate:"dive,required,element"`
}

type OutputConfig struct {
	Pretty bool `yaml:"pretty"`
}

type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Document DocumentConfig `yaml:"document"`
	Output   OutputConfig   `yaml:"output"`
}

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// Unknown keys are errors, so yaml.Unmarshal is not enough.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := unmarshalConfig(defaults, &Config{})
	if err != nil {
		panic("embedded configuration: " + err.Error())
	}
	return cfg
}

// Load reads the configuration file at path on top of the defaults and
// validates the result. An empty path gives the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if cfg, err = unmarshalConfig(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report settings by their yaml path.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("element", elementName); err != nil {
		panic(err)
	}
	return v
}

// elementName accepts a letter followed by letters, digits and hyphens.
func elementName(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	for i, r := range s {
		switch {
		case r < unicode.MaxASCII && unicode.IsLetter(r):
		case i > 0 && (r == '-' || r < unicode.MaxASCII && unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return s != ""
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var all error
	for _, fe := range verrs {
		all = multierr.Append(all, fmt.Errorf("%s: %q fails %q",
			strings.TrimPrefix(fe.Namespace(), "Config."), fmt.Sprint(fe.Value()), fe.ActualTag()))
	}
	return all
}

// Sanitizer returns the sanitizer the document settings ask for, or nil when
// sanitizing is off.
func (c *Config) Sanitizer() parser.Sanitizer {
	if !c.Document.Sanitize {
		return nil
	}
	return parser.Policy{DropTags: c.Document.DropTags}
}

// Indent returns the indentation width for generated markup.
func (c *Config) Indent() int {
	if c.Output.Pretty {
		return 2
	}
	return 0
}

// Dump returns the configuration as YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
