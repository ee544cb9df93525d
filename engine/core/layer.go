package core

type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, ts Timestep)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // return true if handled; propagation stops
}

// LayerStack keeps regular layers below overlays. Updates and renders walk
// bottom to top, events top to bottom.
type LayerStack struct {
	list   []Layer
	insert int // first overlay index
}

// PushLayer inserts l above the other layers and below every overlay.
func (ls *LayerStack) PushLayer(l Layer) {
	ls.list = append(ls.list, nil)
	copy(ls.list[ls.insert+1:], ls.list[ls.insert:])
	ls.list[ls.insert] = l
	ls.insert++
}

func (ls *LayerStack) PushOverlay(l Layer) { ls.list = append(ls.list, l) }

// PopLayer removes l from the layer half. It reports whether l was found.
func (ls *LayerStack) PopLayer(l Layer) bool {
	for i := 0; i < ls.insert; i++ {
		if ls.list[i] == l {
			ls.list = append(ls.list[:i], ls.list[i+1:]...)
			ls.insert--
			return true
		}
	}
	return false
}

// PopOverlay removes l from the overlay half.
func (ls *LayerStack) PopOverlay(l Layer) bool {
	for i := ls.insert; i < len(ls.list); i++ {
		if ls.list[i] == l {
			ls.list = append(ls.list[:i], ls.list[i+1:]...)
			return true
		}
	}
	return false
}

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) Clear() {
	ls.list = nil
	ls.insert = 0
}

func (ls *LayerStack) ForEach(f func(Layer)) {
	for _, l := range ls.list {
		f(l)
	}
}

func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if stop := f(ls.list[i]); stop {
			break
		}
	}
}
