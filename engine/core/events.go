package core

// Event model. Concrete events are values; switch on the type.
type Event interface{ isEvent() }

type EventWindowClose struct{}

func (EventWindowClose) isEvent() {}

type EventWindowResize struct{ W, H int }

func (EventWindowResize) isEvent() {}

type EventKeyPressed struct {
	Key    Key
	Repeat bool
	Mods   Mod
}

func (EventKeyPressed) isEvent() {}

type EventKeyReleased struct {
	Key  Key
	Mods Mod
}

func (EventKeyReleased) isEvent() {}

// EventKeyTyped carries text input, independent of the physical key.
type EventKeyTyped struct{ Rune rune }

func (EventKeyTyped) isEvent() {}

type EventMouseButtonPressed struct {
	Button MouseButton
	Mods   Mod
}

func (EventMouseButtonPressed) isEvent() {}

type EventMouseButtonReleased struct {
	Button MouseButton
	Mods   Mod
}

func (EventMouseButtonReleased) isEvent() {}

type EventMouseMoved struct{ X, Y float64 }

func (EventMouseMoved) isEvent() {}

type EventMouseScrolled struct{ XOff, YOff float64 }

func (EventMouseScrolled) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyLeftShift
	KeyLeftControl
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)
