package dispatch

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// PropertyHandler reports property changes on the registered window.
type PropertyHandler struct {
	// OnChange receives every PropertyNotify; the atom identifies the
	// changed property.
	OnChange func(ev xproto.PropertyNotifyEvent)
}

func (h *PropertyHandler) Types() []int  { return []int{xproto.PropertyNotify} }
func (h *PropertyHandler) Masks() uint32 { return xproto.EventMaskPropertyChange }

func (h *PropertyHandler) HandleEvent(ev xgb.Event) {
	if e, ok := ev.(xproto.PropertyNotifyEvent); ok && h.OnChange != nil {
		h.OnChange(e)
	}
}

// StructureHandler reports lifecycle changes of child windows: creation,
// destruction, mapping and unmapping. Register it on a parent (usually the
// root) to track the window population.
type StructureHandler struct {
	OnCreate  func(ev xproto.CreateNotifyEvent)
	OnDestroy func(ev xproto.DestroyNotifyEvent)
	OnMap     func(ev xproto.MapNotifyEvent)
	OnUnmap   func(ev xproto.UnmapNotifyEvent)
}

func (h *StructureHandler) Types() []int {
	return []int{
		xproto.CreateNotify,
		xproto.DestroyNotify,
		xproto.MapNotify,
		xproto.UnmapNotify,
	}
}

func (h *StructureHandler) Masks() uint32 {
	return xproto.EventMaskSubstructureNotify
}

func (h *StructureHandler) HandleEvent(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.CreateNotifyEvent:
		if h.OnCreate != nil {
			h.OnCreate(e)
		}
	case xproto.DestroyNotifyEvent:
		if h.OnDestroy != nil {
			h.OnDestroy(e)
		}
	case xproto.MapNotifyEvent:
		if h.OnMap != nil {
			h.OnMap(e)
		}
	case xproto.UnmapNotifyEvent:
		if h.OnUnmap != nil {
			h.OnUnmap(e)
		}
	}
}

// ConfigureHandler reports geometry changes of child windows.
type ConfigureHandler struct {
	OnConfigure func(ev xproto.ConfigureNotifyEvent)
}

func (h *ConfigureHandler) Types() []int { return []int{xproto.ConfigureNotify} }

func (h *ConfigureHandler) Masks() uint32 {
	return xproto.EventMaskSubstructureNotify
}

func (h *ConfigureHandler) HandleEvent(ev xgb.Event) {
	if e, ok := ev.(xproto.ConfigureNotifyEvent); ok && h.OnConfigure != nil {
		h.OnConfigure(e)
	}
}
