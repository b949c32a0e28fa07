// Package fileutil saves and loads values with the format chosen
// by filename extension.
package fileutil

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path"
)

// SaveExt writes v to fname, dispatching on the extension.
// JSON output is pretty-printed with four-space indentation.
func SaveExt(fname string, v interface{}) error {
	switch ext := path.Ext(fname); ext {
	case ".json":
		return saveJSON(fname, v)
	case ".gob":
		return saveGob(fname, v)
	default:
		return fmt.Errorf("save %s: unknown extension %q", fname, ext)
	}
}

// LoadExt reads the value in fname into v, dispatching on the extension.
func LoadExt(fname string, v interface{}) error {
	switch ext := path.Ext(fname); ext {
	case ".json":
		return loadJSON(fname, v)
	case ".gob":
		return loadGob(fname, v)
	default:
		return fmt.Errorf("load %s: unknown extension %q", fname, ext)
	}
}

func saveJSON(fname string, v interface{}) error {
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer file.Close()
	enc := json.NewEncoder(file)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}

func loadJSON(fname string, v interface{}) error {
	file, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer file.Close()
	return json.NewDecoder(file).Decode(v)
}

func saveGob(fname string, v interface{}) error {
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer file.Close()
	return gob.NewEncoder(file).Encode(v)
}

func loadGob(fname string, v interface{}) error {
	file, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer file.Close()
	return gob.NewDecoder(file).Decode(v)
}
