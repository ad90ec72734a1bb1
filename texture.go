package dropzone

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/webp"
)

type textureState uint8

const (
	texturePending textureState = iota
	textureReady
	textureFailed
)

type textureResult struct {
	img image.Image
	err error
}

// Texture is an image that loads in the background. The simulation never
// waits on it: the renderer calls Poll each frame and draws a fallback color
// until the image is ready, or forever if loading failed.
type Texture struct {
	Path string

	result chan textureResult
	state  textureState
	src    image.Image
	img    *ebiten.Image
	err    error
}

// LoadTexture starts decoding the file at path on a new goroutine.
func LoadTexture(path string) *Texture {
	return loadTexture(path, func() (fs.File, error) { return os.Open(path) })
}

// LoadTextureFS starts decoding path from fsys on a new goroutine.
func LoadTextureFS(fsys fs.FS, path string) *Texture {
	return loadTexture(path, func() (fs.File, error) { return fsys.Open(path) })
}

func loadTexture(path string, open func() (fs.File, error)) *Texture {
	t := &Texture{Path: path, result: make(chan textureResult, 1)}
	go func() {
		f, err := open()
		if err != nil {
			t.result <- textureResult{err: fmt.Errorf("load texture %s: %w", path, err)}
			return
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			err = fmt.Errorf("decode texture %s: %w", path, err)
		}
		t.result <- textureResult{img: img, err: err}
	}()
	return t
}

// NewTextureFromImage wraps an already decoded image. The texture is ready
// immediately.
func NewTextureFromImage(img image.Image) *Texture {
	return &Texture{state: textureReady, src: img}
}

// Poll collects the background result if it has arrived. It never blocks and
// reports whether the state changed on this call.
func (t *Texture) Poll() bool {
	if t == nil || t.state != texturePending || t.result == nil {
		return false
	}
	select {
	case r := <-t.result:
		if r.err != nil {
			t.state = textureFailed
			t.err = r.err
		} else {
			t.state = textureReady
			t.src = r.img
		}
		return true
	default:
		return false
	}
}

// Ready reports whether the image is available.
func (t *Texture) Ready() bool {
	return t != nil && t.state == textureReady
}

// Failed reports whether loading failed.
func (t *Texture) Failed() bool {
	return t != nil && t.state == textureFailed
}

// Err returns the load error, if any.
func (t *Texture) Err() error {
	if t == nil {
		return nil
	}
	return t.err
}

// Source returns the decoded image, or nil while pending or after failure.
func (t *Texture) Source() image.Image {
	if !t.Ready() {
		return nil
	}
	return t.src
}

// Image returns the GPU image, creating it on first use. Nil until ready.
// Must be called from the game loop.
func (t *Texture) Image() *ebiten.Image {
	if !t.Ready() {
		return nil
	}
	if t.img == nil {
		if ei, ok := t.src.(*ebiten.Image); ok {
			t.img = ei
		} else {
			t.img = ebiten.NewImageFromImage(t.src)
		}
	}
	return t.img
}
