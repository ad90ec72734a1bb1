package dropzone

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugModeLogsFrames(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	w := newTestWorld(t, ArenaConfig())
	w.SetLogger(zap.New(core))

	w.Update()
	if n := logs.FilterMessage("frame").Len(); n != 0 {
		t.Fatalf("logged %d frames with debug mode off", n)
	}

	w.SetDebugMode(true)
	w.Spawn(EntitySpec{})
	w.Update()
	w.Update()

	frames := logs.FilterMessage("frame").All()
	if len(frames) != 2 {
		t.Fatalf("logged %d frames, want 2", len(frames))
	}
	fields := frames[1].ContextMap()
	if fields["tick"] != uint64(3) {
		t.Errorf("tick = %v, want 3", fields["tick"])
	}
	if fields["entities"] != int64(1) {
		t.Errorf("entities = %v, want 1", fields["entities"])
	}
}

func TestZapEntityFields(t *testing.T) {
	e := newEntity(EntitySpec{Name: "crate", X: 1, Y: 2})
	fields := zapEntity(e)
	if len(fields) != 4 {
		t.Fatalf("got %d fields, want 4", len(fields))
	}
	if fields[1].Key != "name" || fields[1].String != "crate" {
		t.Errorf("name field = %+v", fields[1])
	}
}
