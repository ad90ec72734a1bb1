// Package dropzone simulates draggable 2D sprites with simple gravity and
// floor-bounce physics over a side-scrolling background, and renders them
// with [Ebitengine].
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	world, err := dropzone.NewWorld(dropzone.ScrollingConfig(), 1280, 720)
//	if err != nil {
//		log.Fatal(err)
//	}
//	world.Spawn(dropzone.EntitySpec{Name: "crate", X: 0, Y: 0.5})
//	log.Fatal(dropzone.Run(world, dropzone.RunConfig{Title: "Demo"}))
//
// For full control, drive the [World] yourself: call [World.Update] once per
// tick and feed pointer input through [World.PointerDown],
// [World.PointerMove] and [World.PointerUp], or through an [InputSource].
//
// # The frame loop
//
// Each [World.Update] runs, in order: input, camera animation, edge
// scrolling while dragging, gravity and floor collision for every entity
// that is not dragged, horizontal clamping, the trash zone check, and depth
// ordering. Physics takes exactly one step per tick; there is no time-delta
// correction.
//
// # Presets
//
// [ArenaConfig] is a single screen where entities bounce until they settle.
// [SimpleConfig] drops entities straight onto the floor. [ScrollingConfig]
// is a five-screen world with edge scrolling and a trash zone. Any of them
// can be tuned from a YAML or TOML file with [LoadConfig].
//
// [Ebitengine]: https://ebitengine.org
package dropzone
