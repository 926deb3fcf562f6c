// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package resource loads shaders and textures once and shares them by name.
package resource

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/devblok/breakout/gfx"
)

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger load failures and replacements are reported to.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Cache) {
		c.log = log
	}
}

// NewCache creates an empty cache that creates resources on dev
// from files found in src.
func NewCache(dev gfx.Device, src Source, opts ...Option) *Cache {
	c := &Cache{
		device:   dev,
		source:   src,
		log:      logrus.StandardLogger(),
		shaders:  make(map[string]*gfx.Shader),
		textures: make(map[string]*gfx.Texture2D),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cache holds loaded GPU resources by name until Clear is called.
// Resources are created on the device, so the Cache must only be
// used from the thread owning the graphics context.
type Cache struct {
	device gfx.Device
	source Source
	log    logrus.FieldLogger

	shaders  map[string]*gfx.Shader
	textures map[string]*gfx.Texture2D
}

func (c *Cache) readFile(path string) (string, error) {
	data, err := c.source.ReadFile(path)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}
	return string(data), nil
}

// LoadShader reads, compiles and links a shader program and stores it
// under name. An empty geometryPath means the program has no geometry
// stage. A program previously stored under name is released. On error
// nothing is stored and the previous program stays available.
func (c *Cache) LoadShader(name, vertexPath, fragmentPath, geometryPath string) (*gfx.Shader, error) {
	log := c.log.WithField("shader", name)

	var (
		src gfx.ShaderSource
		err error
	)
	if src.Vertex, err = c.readFile(vertexPath); err != nil {
		log.WithError(err).Error("Failed to read shader files")
		return nil, err
	}
	if src.Fragment, err = c.readFile(fragmentPath); err != nil {
		log.WithError(err).Error("Failed to read shader files")
		return nil, err
	}
	if geometryPath != "" {
		if src.Geometry, err = c.readFile(geometryPath); err != nil {
			log.WithError(err).Error("Failed to read shader files")
			return nil, err
		}
	}

	shader := gfx.NewShader(c.device)
	if err := shader.Compile(src); err != nil {
		log.WithError(err).Error("Failed to compile shader")
		return nil, errors.Wrapf(err, "loading shader %q", name)
	}

	if old, ok := c.shaders[name]; ok {
		log.WithField("id", old.ID).Debug("Replacing shader")
		old.Release()
	}
	c.shaders[name] = shader
	log.WithField("id", shader.ID).Debug("Shader loaded")
	return shader, nil
}

// Shader returns the shader stored under name.
func (c *Cache) Shader(name string) (*gfx.Shader, bool) {
	s, ok := c.shaders[name]
	return s, ok
}

// LoadTexture reads and decodes an image, uploads it and stores the
// texture under name. With alpha the texture is stored as RGBA,
// otherwise RGB. A texture previously stored under name is released.
// On error nothing is stored and the previous texture stays available.
func (c *Cache) LoadTexture(name, path string, alpha bool) (*gfx.Texture2D, error) {
	log := c.log.WithFields(logrus.Fields{"texture": name, "path": path})

	data, err := c.source.ReadFile(path)
	if err != nil {
		err = &FileError{Path: path, Err: err}
		log.WithError(err).Error("Failed to load texture")
		return nil, err
	}

	img, format, err := decodeImage(data)
	if err != nil {
		err = &DecodeError{Path: path, Err: err}
		log.WithError(err).Error("Failed to load texture")
		return nil, err
	}

	texture := gfx.NewTexture2D(c.device)
	if alpha {
		texture.InternalFormat = gfx.RGBA
		texture.ImageFormat = gfx.RGBA
	}
	bounds := img.Bounds()
	if err := texture.Generate(bounds.Dx(), bounds.Dy(), GetPixels(img, alpha)); err != nil {
		texture.Release()
		log.WithError(err).Error("Failed to load texture")
		return nil, errors.Wrapf(err, "loading texture %q", name)
	}

	if old, ok := c.textures[name]; ok {
		log.WithField("id", old.ID).Debug("Replacing texture")
		old.Release()
	}
	c.textures[name] = texture
	log.WithFields(logrus.Fields{
		"id":     texture.ID,
		"format": format,
		"width":  texture.Width,
		"height": texture.Height,
	}).Debug("Texture loaded")
	return texture, nil
}

// Texture returns the texture stored under name.
func (c *Cache) Texture(name string) (*gfx.Texture2D, bool) {
	t, ok := c.textures[name]
	return t, ok
}

// ShaderNames lists stored shader names in order.
func (c *Cache) ShaderNames() []string {
	names := make([]string, 0, len(c.shaders))
	for name := range c.shaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TextureNames lists stored texture names in order.
func (c *Cache) TextureNames() []string {
	names := make([]string, 0, len(c.textures))
	for name := range c.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clear releases every stored resource and empties the cache.
// Pointers handed out earlier are left with a zero ID.
func (c *Cache) Clear() {
	for _, s := range c.shaders {
		s.Release()
	}
	for _, t := range c.textures {
		t.Release()
	}
	c.log.WithFields(logrus.Fields{
		"shaders":  len(c.shaders),
		"textures": len(c.textures),
	}).Debug("Resource cache cleared")
	c.shaders = make(map[string]*gfx.Shader)
	c.textures = make(map[string]*gfx.Texture2D)
}
