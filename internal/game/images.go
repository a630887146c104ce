package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// imageCache uploads decoded frames to the GPU once. Frames are keyed by
// identity, so a frame decoded once is uploaded once for its lifetime.
type imageCache struct {
	images map[image.Image]*ebiten.Image
}

func newImageCache() *imageCache {
	return &imageCache{images: map[image.Image]*ebiten.Image{}}
}

// get returns the GPU copy of img, or nil for a nil frame.
func (c *imageCache) get(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	if e, ok := c.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	c.images[img] = e
	return e
}

func (c *imageCache) clear() {
	for _, e := range c.images {
		e.Deallocate()
	}
	c.images = map[image.Image]*ebiten.Image{}
}
