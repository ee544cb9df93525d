package core

// Input tracks key, button and cursor state from dispatched events.
type Input struct {
	keys           map[Key]bool
	buttons        map[MouseButton]bool
	mouseX, mouseY float64
}

func NewInput() *Input {
	return &Input{keys: map[Key]bool{}, buttons: map[MouseButton]bool{}}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKeyPressed:
		in.keys[e.Key] = true
	case EventKeyReleased:
		in.keys[e.Key] = false
	case EventMouseButtonPressed:
		in.buttons[e.Button] = true
	case EventMouseButtonReleased:
		in.buttons[e.Button] = false
	case EventMouseMoved:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventWindowClose:
		clear(in.keys)
		clear(in.buttons)
	}
}

func (in *Input) IsKeyDown(k Key) bool                 { return in.keys[k] }
func (in *Input) IsMouseButtonDown(b MouseButton) bool { return in.buttons[b] }
func (in *Input) Mouse() (float64, float64)            { return in.mouseX, in.mouseY }
