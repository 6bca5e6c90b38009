package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/adrianliechti/text2speech/pkg/provider"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Language string

	synthesizer map[string]provider.Synthesizer
}

// Parse reads the YAML file at path. A missing file yields the default
// configuration: a single gtts synthesizer speaking English.
func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if errors.Is(err, fs.ErrNotExist) {
		file = defaultFile()
		err = nil
	}

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",

		Language: provider.DefaultLanguage,
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if file.Language != "" {
		c.Language = file.Language
	}

	if err := c.registerSynthesizers(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address  string `yaml:"address"`
	Language string `yaml:"language"`

	Synthesizers yaml.Node `yaml:"synthesizers"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return parseData(data)
}

func parseData(data []byte) (*configFile, error) {
	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func defaultFile() *configFile {
	file, err := parseData([]byte(defaultConfig))

	if err != nil {
		panic(err)
	}

	return file
}

const defaultConfig = `
synthesizers:
  google:
    type: gtts
`
