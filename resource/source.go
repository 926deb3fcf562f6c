// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package resource

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/gobuffalo/packr"
	"github.com/pkg/errors"

	"github.com/devblok/breakout/utility/kar"
)

// Source describes where resource files are read from.
// A missing file must be reported with an error satisfying
// errors.Is(err, os.ErrNotExist).
type Source interface {
	ReadFile(name string) ([]byte, error)
}

// Dir reads resources from a directory on disk.
type Dir string

// ReadFile implements interface
func (d Dir) ReadFile(name string) ([]byte, error) {
	return ioutil.ReadFile(filepath.Join(string(d), filepath.FromSlash(name)))
}

// Archive reads resources from a kar archive.
func Archive(ar *kar.Archive) Source {
	return archiveSource{ar}
}

type archiveSource struct {
	archive *kar.Archive
}

func (a archiveSource) ReadFile(name string) ([]byte, error) {
	return a.archive.ReadAll(name)
}

// Box reads resources embedded with packr.
func Box(box packr.Box) Source {
	return boxSource{box}
}

type boxSource struct {
	box packr.Box
}

func (b boxSource) ReadFile(name string) ([]byte, error) {
	if !b.box.Has(name) {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
	}
	return b.box.Find(name)
}

// Defaults returns the resources built into the binary: the sprite
// shader (sprite.vert, sprite.frag) and a white 1x1 texture (blank.png).
func Defaults() Source {
	return Box(packr.NewBox("./defaults"))
}

// Chain looks a file up in every source in order. Only a missing
// file moves on to the next source, any other error is returned.
func Chain(sources ...Source) Source {
	return chain(sources)
}

type chain []Source

func (c chain) ReadFile(name string) ([]byte, error) {
	for _, src := range c {
		data, err := src.ReadFile(name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
}
