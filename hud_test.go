package dropzone

import "testing"

func TestHUDText(t *testing.T) {
	tests := []struct {
		name     string
		dragging bool
		want     string
	}{
		{"idle", false, "FPS: 59.9\nTPS: 60.0\nEntities: 3\nCamera: 1.50\nDrag: -"},
		{"dragging", true, "FPS: 59.9\nTPS: 60.0\nEntities: 3\nCamera: 1.50\nDrag: yes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hudText(59.94, 60, 3, 1.5, tt.dragging); got != tt.want {
				t.Errorf("hudText = %q, want %q", got, tt.want)
			}
		})
	}
}
