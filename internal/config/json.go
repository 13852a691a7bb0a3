package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// parseJSON reads the option mapping stored in jsonFilePath. Numbers are kept
// as json.Number so integers survive unchanged. An empty file or a JSON null
// yields an empty mapping.
func parseJSON(jsonFilePath string) (Options, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	decoder := json.NewDecoder(jsonFile)
	decoder.UseNumber()

	var opts Options
	if err := decoder.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	if opts == nil {
		opts = Options{}
	}

	return opts, nil
}
