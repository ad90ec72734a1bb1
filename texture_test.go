package dropzone

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// waitTexture polls t until it leaves the pending state.
func waitTexture(t *testing.T, tex *Texture) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !tex.Ready() && !tex.Failed() {
		if time.Now().After(deadline) {
			t.Fatalf("texture %s still pending", tex.Path)
		}
		tex.Poll()
		time.Sleep(time.Millisecond)
	}
}

func TestLoadTextureFS(t *testing.T) {
	fsys := fstest.MapFS{"img/crate.png": {Data: pngBytes(t, 4, 2)}}
	tex := LoadTextureFS(fsys, "img/crate.png")
	waitTexture(t, tex)

	if !tex.Ready() || tex.Err() != nil {
		t.Fatalf("Ready=%v Err=%v", tex.Ready(), tex.Err())
	}
	if b := tex.Source().Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 4x2", b)
	}
	if tex.Poll() {
		t.Error("Poll after completion should report no change")
	}
}

func TestLoadTextureMissing(t *testing.T) {
	tex := LoadTextureFS(fstest.MapFS{}, "nope.png")
	waitTexture(t, tex)
	if !tex.Failed() {
		t.Fatal("missing file should fail")
	}
	if !errors.Is(tex.Err(), fs.ErrNotExist) {
		t.Errorf("Err = %v, want fs.ErrNotExist", tex.Err())
	}
	if tex.Source() != nil || tex.Image() != nil {
		t.Error("failed texture should have no image")
	}
}

func TestLoadTextureCorrupt(t *testing.T) {
	fsys := fstest.MapFS{"bad.png": {Data: []byte("not an image")}}
	tex := LoadTextureFS(fsys, "bad.png")
	waitTexture(t, tex)
	if !tex.Failed() || tex.Err() == nil {
		t.Error("undecodable file should fail with an error")
	}
}

func TestLoadTextureFromDisk(t *testing.T) {
	tex := LoadTexture("testdata/does-not-exist.png")
	waitTexture(t, tex)
	if !tex.Failed() {
		t.Error("missing file on disk should fail")
	}
}

func TestNewTextureFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	tex := NewTextureFromImage(img)
	if !tex.Ready() || tex.Source() != img {
		t.Error("wrapped image should be ready immediately")
	}
	if tex.Poll() {
		t.Error("Poll on a ready texture should report no change")
	}
}

func TestNilTexture(t *testing.T) {
	var tex *Texture
	if tex.Poll() || tex.Ready() || tex.Failed() || tex.Err() != nil || tex.Source() != nil || tex.Image() != nil {
		t.Error("nil texture should behave as permanently pending")
	}
}
