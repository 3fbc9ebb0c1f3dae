package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Palette used when a window carries no usable draw data.
var (
	Backdrop      = rl.NewColor(0x0B, 0x10, 0x16, 255) // #0B1016
	Panel         = rl.NewColor(0x1C, 0x23, 0x29, 255) // #1C2329
	PanelRaised   = rl.NewColor(0x21, 0x2A, 0x31, 255) // #212A31
	Border        = rl.NewColor(0x2E, 0x3A, 0x40, 255) // #2E3A40
	TextPrimary   = rl.NewColor(0xE8, 0xE2, 0xD8, 255) // #E8E2D8
	TextMuted     = rl.NewColor(0x7D, 0x85, 0x8A, 255) // #7D858A
	AccentEmber   = rl.NewColor(0xD4, 0x6A, 0x1E, 255) // #D46A1E
	AccentPressed = rl.NewColor(0xA8, 0x4F, 0x12, 255) // #A84F12
	DisabledPanel = rl.NewColor(0x16, 0x1C, 0x21, 255)
	DisabledText  = TextMuted
)
