package stage

import "github.com/kamstrup/intmap"

// Input converts raw press/release/move events into per-key and per-button
// held, just-pressed and just-released facts. Edge facts are valid for
// exactly one frame: the loop clears them via Flush after behavior update,
// so components observe each raw-event batch exactly once.
//
// Keys are identified by string ids, pointer buttons by index and touch
// contacts by a stable per-touch id.
type Input struct {
	keysHeld     map[string]struct{}
	keysPressed  map[string]struct{}
	keysReleased map[string]struct{}

	buttonsHeld     *intmap.Map[int64, bool]
	buttonsPressed  *intmap.Map[int64, bool]
	buttonsReleased *intmap.Map[int64, bool]

	pointer Vec2

	touches  *intmap.Map[int64, Vec2]
	touchIDs []int64

	width, height int
}

// NewInput creates an input machine with empty state.
func NewInput() *Input {
	return &Input{
		keysHeld:        make(map[string]struct{}),
		keysPressed:     make(map[string]struct{}),
		keysReleased:    make(map[string]struct{}),
		buttonsHeld:     intmap.New[int64, bool](8),
		buttonsPressed:  intmap.New[int64, bool](8),
		buttonsReleased: intmap.New[int64, bool](8),
		touches:         intmap.New[int64, Vec2](8),
	}
}

// Press records a raw key press. A key not already held is additionally
// marked just-pressed.
func (in *Input) Press(key string) {
	if _, held := in.keysHeld[key]; !held {
		in.keysPressed[key] = struct{}{}
	}
	in.keysHeld[key] = struct{}{}
}

// Release records a raw key release. The key is marked just-released even if
// it was not previously held.
func (in *Input) Release(key string) {
	delete(in.keysHeld, key)
	in.keysReleased[key] = struct{}{}
}

func (in *Input) IsHeld(key string) bool {
	_, ok := in.keysHeld[key]
	return ok
}

func (in *Input) IsJustPressed(key string) bool {
	_, ok := in.keysPressed[key]
	return ok
}

func (in *Input) IsJustReleased(key string) bool {
	_, ok := in.keysReleased[key]
	return ok
}

// PointerDown records a raw pointer button press.
func (in *Input) PointerDown(button int) {
	b := int64(button)
	if _, held := in.buttonsHeld.Get(b); !held {
		in.buttonsPressed.Put(b, true)
	}
	in.buttonsHeld.Put(b, true)
}

// PointerUp records a raw pointer button release.
func (in *Input) PointerUp(button int) {
	b := int64(button)
	in.buttonsHeld.Del(b)
	in.buttonsReleased.Put(b, true)
}

func (in *Input) IsButtonHeld(button int) bool {
	_, ok := in.buttonsHeld.Get(int64(button))
	return ok
}

func (in *Input) IsButtonJustPressed(button int) bool {
	_, ok := in.buttonsPressed.Get(int64(button))
	return ok
}

func (in *Input) IsButtonJustReleased(button int) bool {
	_, ok := in.buttonsReleased.Get(int64(button))
	return ok
}

// PointerMove overwrites the last-known pointer position. Coordinates are
// relative to the drawing surface.
func (in *Input) PointerMove(x, y float32) {
	in.pointer = Vec2{x, y}
}

func (in *Input) PointerPosition() Vec2 {
	return in.pointer
}

// TouchStart begins tracking a contact under its stable id.
func (in *Input) TouchStart(id int64, x, y float32) {
	if _, exists := in.touches.Get(id); !exists {
		in.touchIDs = append(in.touchIDs, id)
	}
	in.touches.Put(id, Vec2{x, y})
}

// TouchMove overwrites the tracked position of an active contact. Unknown
// ids are ignored.
func (in *Input) TouchMove(id int64, x, y float32) {
	if _, exists := in.touches.Get(id); !exists {
		return
	}
	in.touches.Put(id, Vec2{x, y})
}

// TouchEnd stops tracking the contact.
func (in *Input) TouchEnd(id int64) {
	if _, exists := in.touches.Get(id); !exists {
		return
	}
	in.touches.Del(id)
	for i, tid := range in.touchIDs {
		if tid == id {
			in.touchIDs = append(in.touchIDs[:i], in.touchIDs[i+1:]...)
			break
		}
	}
}

// TouchPosition returns the last-known position of an active contact.
func (in *Input) TouchPosition(id int64) (Vec2, bool) {
	return in.touches.Get(id)
}

// TouchIDs returns the ids of all active contacts, in start order. The
// returned slice is the machine's backing store and must not be mutated.
func (in *Input) TouchIDs() []int64 {
	return in.touchIDs
}

// Blur handles the pointer leaving the surface: all held pointer buttons are
// cleared. Keyboard state and touch points are untouched.
func (in *Input) Blur() {
	in.buttonsHeld = intmap.New[int64, bool](8)
}

// Flush clears the just-pressed and just-released sets. The loop calls it
// exactly once per frame, after behavior update.
func (in *Input) Flush() {
	clear(in.keysPressed)
	clear(in.keysReleased)
	in.buttonsPressed = intmap.New[int64, bool](8)
	in.buttonsReleased = intmap.New[int64, bool](8)
}

// Resize rebinds the machine to the drawing surface geometry. Raw event
// coordinates are interpreted relative to this size.
func (in *Input) Resize(width, height int) {
	in.width = width
	in.height = height
}

// Bounds returns the drawing surface size the machine is bound to.
func (in *Input) Bounds() (width, height int) {
	return in.width, in.height
}
