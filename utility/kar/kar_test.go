// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package kar_test

import (
	"bytes"
	"encoding/binary"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/breakout/utility/kar"
)

var (
	testString1 = "idunvovkjnreovmegihjbrqlkmfrjnb"
	testString2 = "idunvovkjnreovmsdvwrvnervnreegihjbrqlkmfrjnb"
)

func buildArchive(c *qt.C, files map[string]string) []byte {
	builder, err := kar.NewBuilder(kar.Header{
		Author:      "devblok",
		DateCreated: time.Now().Unix(),
		Version:     1,
	})
	c.Assert(err, qt.IsNil)
	defer builder.Close()

	for name, contents := range files {
		c.Assert(builder.Add(name, strings.NewReader(contents)), qt.IsNil)
	}

	buf := bytes.NewBuffer(nil)
	_, err = builder.WriteTo(buf)
	c.Assert(err, qt.IsNil)
	return buf.Bytes()
}

func TestCreateAndRead(t *testing.T) {
	c := qt.New(t)
	data := buildArchive(c, map[string]string{"test": testString1, "test2": testString2})

	ar, err := kar.Open(bytes.NewReader(data))
	c.Assert(err, qt.IsNil)

	f, err := ar.Open("test2")
	c.Assert(err, qt.IsNil)
	c.Assert(f.Size(), qt.Equals, int64(len(testString2)))

	result, err := ioutil.ReadAll(f)
	c.Assert(err, qt.IsNil)
	c.Assert(string(result), qt.Equals, testString2)
}

func TestCreateAndReadAll(t *testing.T) {
	c := qt.New(t)
	data := buildArchive(c, map[string]string{"test": testString1, "test2": testString2})

	ar, err := kar.Open(bytes.NewReader(data))
	c.Assert(err, qt.IsNil)
	c.Assert(ar.Names(), qt.DeepEquals, []string{"test", "test2"})
	c.Assert(ar.Header().Author, qt.Equals, "devblok")

	for name, expected := range map[string]string{"test": testString1, "test2": testString2} {
		f, err := ar.ReadAll(name)
		c.Assert(err, qt.IsNil)
		c.Assert(string(f), qt.Equals, expected)
	}
}

func TestConcurrentAdd(t *testing.T) {
	c := qt.New(t)
	builder, err := kar.NewBuilder(kar.Header{Author: "devblok"})
	c.Assert(err, qt.IsNil)
	defer builder.Close()

	var wg sync.WaitGroup
	names := []string{"a", "b", "c", "d", "e", "f"}
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if err := builder.Add(name, strings.NewReader(strings.Repeat(name, 1000))); err != nil {
				t.Error(err)
			}
		}(name)
	}
	wg.Wait()

	buf := bytes.NewBuffer(nil)
	_, err = builder.WriteTo(buf)
	c.Assert(err, qt.IsNil)

	ar, err := kar.Open(bytes.NewReader(buf.Bytes()))
	c.Assert(err, qt.IsNil)
	c.Assert(ar.Names(), qt.DeepEquals, names)
	for _, name := range names {
		f, err := ar.ReadAll(name)
		c.Assert(err, qt.IsNil)
		c.Assert(string(f), qt.Equals, strings.Repeat(name, 1000))
	}
}

func TestOpenMissing(t *testing.T) {
	c := qt.New(t)
	data := buildArchive(c, map[string]string{"test": testString1})

	ar, err := kar.Open(bytes.NewReader(data))
	c.Assert(err, qt.IsNil)

	_, err = ar.ReadAll("nope")
	c.Assert(err, qt.ErrorIs, kar.ErrNotExist)
	c.Assert(err, qt.ErrorIs, os.ErrNotExist)
}

func TestOpenNotAnArchive(t *testing.T) {
	c := qt.New(t)

	_, err := kar.Open(bytes.NewReader([]byte("PNG\x00 this is not an archive at all")))
	c.Assert(err, qt.Equals, kar.ErrFileFormat)

	_, err = kar.Open(bytes.NewReader([]byte("KA")))
	c.Assert(err, qt.Equals, kar.ErrFileFormat)

	data := buildArchive(c, map[string]string{"test": testString1})
	_, err = kar.Open(bytes.NewReader(data[:kar.MagicLength+kar.HeaderSizeNumberLength+2]))
	c.Assert(err, qt.Equals, kar.ErrFileFormat)
}

func TestOpenBadHeaderSize(t *testing.T) {
	c := qt.New(t)

	archiveWithHeaderSize := func(size int64) []byte {
		sizeBytes := make([]byte, kar.HeaderSizeNumberLength)
		binary.PutVarint(sizeBytes, size)
		data := append([]byte("KAR\x00"), sizeBytes...)
		return append(data, "short header"...)
	}

	for _, size := range []int64{1 << 62, 1 << 40, kar.MaxHeaderSize + 1, 1024} {
		_, err := kar.Open(bytes.NewReader(archiveWithHeaderSize(size)))
		c.Assert(err, qt.Equals, kar.ErrFileFormat, qt.Commentf("header size %d", size))
	}
}

func TestOpenFile(t *testing.T) {
	c := qt.New(t)
	data := buildArchive(c, map[string]string{"shaders/sprite.vert": testString1})

	path := filepath.Join(c.Mkdir(), "assets.kar")
	c.Assert(ioutil.WriteFile(path, data, 0644), qt.IsNil)

	ar, err := kar.OpenFile(path)
	c.Assert(err, qt.IsNil)
	defer ar.Close()

	f, err := ar.ReadAll("shaders/sprite.vert")
	c.Assert(err, qt.IsNil)
	c.Assert(string(f), qt.Equals, testString1)
}
