package raster

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// ErrNoTextureCreator is returned by PresentTo when the drawer has no
// texture creator.
var ErrNoTextureCreator = errors.New("raster: drawer has no texture creator")

// PresentTo uploads the image as a texture and draws it at (x, y) with
// dc. The texture from the previous call is updated in place when it
// supports gpucontext.TextureUpdater and the image size is unchanged.
func (b *Backend) PresentTo(dc gpucontext.TextureDrawer, x, y float32) error {
	w, h := b.Width(), b.Height()
	if b.tex == nil || b.tex.Width() != w || b.tex.Height() != h || !b.update() {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrNoTextureCreator
		}
		tex, err := creator.NewTextureFromRGBA(w, h, b.img.Pix)
		if err != nil {
			return fmt.Errorf("raster: texture creation failed: %w", err)
		}
		b.tex = tex
		b.logger.Info("raster: texture created", "width", w, "height", h)
	}
	if err := dc.DrawTexture(b.tex, x, y); err != nil {
		return fmt.Errorf("raster: draw texture: %w", err)
	}
	return nil
}

// update uploads the image into the existing texture. It reports false if
// the texture cannot be updated.
func (b *Backend) update() bool {
	u, ok := b.tex.(gpucontext.TextureUpdater)
	if !ok {
		return false
	}
	if err := u.UpdateData(b.img.Pix); err != nil {
		b.logger.Warn("raster: texture update failed", "err", err)
		return false
	}
	return true
}
