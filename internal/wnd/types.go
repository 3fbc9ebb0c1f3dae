package wnd

import "strings"

const (
	// MaxChildren bounds the children a single window keeps. Further
	// children are dropped.
	MaxChildren = 64
	// DrawLayerCount is the number of image layers per draw state.
	DrawLayerCount = 9

	NoCallback = "[None]"
)

type Color struct {
	R, G, B, A uint8
}

type Rect struct {
	X, Y, Width, Height int32
}

type Size struct {
	W, H int32
}

type Status struct {
	Enabled      bool
	Image        bool
	Border       bool
	Hidden       bool
	NoInput      bool
	NoFocus      bool
	Draggable    bool
	TabStop      bool
	RightClick   bool
	WrapCentered bool
	CheckLike    bool
	HotkeyText   bool
	AlwaysColor  bool
	SeeThru      bool
	OneLine      bool
	OnMouseDown  bool
}

// set applies a single status literal and reports whether it was known.
func (s *Status) set(flag string) bool {
	switch flag {
	case "ENABLED":
		s.Enabled = true
	case "IMAGE":
		s.Image = true
	case "BORDER":
		s.Border = true
	case "HIDDEN":
		s.Hidden = true
	case "NOINPUT":
		s.NoInput = true
	case "NOFOCUS":
		s.NoFocus = true
	case "DRAGABLE":
		s.Draggable = true
	case "TABSTOP":
		s.TabStop = true
	case "RIGHT_CLICK":
		s.RightClick = true
	case "WRAP_CENTERED":
		s.WrapCentered = true
	case "CHECK_LIKE":
		s.CheckLike = true
	case "HOTKEY_TEXT":
		s.HotkeyText = true
	case "ALWAYS_COLOR":
		s.AlwaysColor = true
	case "SEE_THRU":
		s.SeeThru = true
	case "ONE_LINE":
		s.OneLine = true
	case "ON_MOUSE_DOWN":
		s.OnMouseDown = true
	default:
		return false
	}
	return true
}

// Flags lists the set flags in file spelling, in declaration order.
func (s Status) Flags() []string {
	pairs := []struct {
		on   bool
		name string
	}{
		{s.Enabled, "ENABLED"},
		{s.Image, "IMAGE"},
		{s.Border, "BORDER"},
		{s.Hidden, "HIDDEN"},
		{s.NoInput, "NOINPUT"},
		{s.NoFocus, "NOFOCUS"},
		{s.Draggable, "DRAGABLE"},
		{s.TabStop, "TABSTOP"},
		{s.RightClick, "RIGHT_CLICK"},
		{s.WrapCentered, "WRAP_CENTERED"},
		{s.CheckLike, "CHECK_LIKE"},
		{s.HotkeyText, "HOTKEY_TEXT"},
		{s.AlwaysColor, "ALWAYS_COLOR"},
		{s.SeeThru, "SEE_THRU"},
		{s.OneLine, "ONE_LINE"},
		{s.OnMouseDown, "ON_MOUSE_DOWN"},
	}
	out := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.on {
			out = append(out, p.name)
		}
	}
	return out
}

func (s Status) String() string {
	return strings.Join(s.Flags(), "+")
}

type Type int

const (
	User Type = iota
	PushButton
	CheckBox
	RadioButton
	ListBox
	ComboBox
	HorzSlider
	VertSlider
	ProgressBar
	EntryField
	StaticText
	TabControl
)

var typeNames = map[string]Type{
	"USER":        User,
	"PUSHBUTTON":  PushButton,
	"CHECKBOX":    CheckBox,
	"RADIOBUTTON": RadioButton,
	"LISTBOX":     ListBox,
	"COMBOBOX":    ComboBox,
	"HORZSLIDER":  HorzSlider,
	"VERTSLIDER":  VertSlider,
	"PROGRESSBAR": ProgressBar,
	"ENTRYFIELD":  EntryField,
	"STATICTEXT":  StaticText,
	"TABCONTROL":  TabControl,
}

// ParseType maps a WINDOWTYPE literal to a Type. Unknown literals map to
// User with ok == false.
func ParseType(s string) (Type, bool) {
	t, ok := typeNames[s]
	if !ok {
		return User, false
	}
	return t, true
}

var typeStrings = [...]string{
	User:        "USER",
	PushButton:  "PUSHBUTTON",
	CheckBox:    "CHECKBOX",
	RadioButton: "RADIOBUTTON",
	ListBox:     "LISTBOX",
	ComboBox:    "COMBOBOX",
	HorzSlider:  "HORZSLIDER",
	VertSlider:  "VERTSLIDER",
	ProgressBar: "PROGRESSBAR",
	EntryField:  "ENTRYFIELD",
	StaticText:  "STATICTEXT",
	TabControl:  "TABCONTROL",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeStrings) {
		return "USER"
	}
	return typeStrings[t]
}

type DrawData struct {
	Image       string
	Color       Color
	BorderColor Color
}

type DrawLayers [DrawLayerCount]DrawData

type Font struct {
	Name string
	Size int32
	Bold bool
}

func DefaultFont() Font {
	return Font{Name: "Arial", Size: 12}
}

type TextDrawData struct {
	Color       Color
	BorderColor Color
}

type TextColors struct {
	Enabled  TextDrawData
	Disabled TextDrawData
	Hilite   TextDrawData
}

type Callbacks struct {
	System  string
	Input   string
	Tooltip string
	Draw    string
}

func defaultCallbacks() Callbacks {
	return Callbacks{
		System:  NoCallback,
		Input:   NoCallback,
		Tooltip: NoCallback,
		Draw:    NoCallback,
	}
}

type LayoutBlock struct {
	Init     string
	Update   string
	Shutdown string
}

func defaultLayout() LayoutBlock {
	return LayoutBlock{Init: NoCallback, Update: NoCallback, Shutdown: NoCallback}
}

// File is the result of parsing one window description. It owns Root.
type File struct {
	Version int32
	Layout  LayoutBlock
	Root    *Window
}

// Release drops the whole tree. The file is empty afterwards.
func (f *File) Release() {
	if f == nil || f.Root == nil {
		return
	}
	f.Root.Release()
	f.Root = nil
}
