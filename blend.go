package canvas

import "fmt"

// BlendMode selects how a source is composited onto a destination.
// The zero value is BlendSourceOver.
type BlendMode uint8

const (
	// Porter-Duff modes
	BlendSourceOver      BlendMode = iota // S + D*(1-Sa) [default]
	BlendClear                            // 0
	BlendSource                           // S
	BlendDestination                      // D
	BlendDestinationOver                  // S*(1-Da) + D
	BlendSourceIn                         // S*Da
	BlendDestinationIn                    // D*Sa
	BlendSourceOut                        // S*(1-Da)
	BlendDestinationOut                   // D*(1-Sa)
	BlendSourceAtop                       // S*Da + D*(1-Sa)
	BlendDestinationAtop                  // S*(1-Da) + D*Sa
	BlendXor                              // S*(1-Da) + D*(1-Sa)
	BlendPlus                             // S + D (clamped)

	// Separable blend modes (W3C Compositing Level 1)
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion

	// Non-separable blend modes
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity

	blendModeCount
)

var blendModeNames = [...]string{
	BlendSourceOver:      "SourceOver",
	BlendClear:           "Clear",
	BlendSource:          "Source",
	BlendDestination:     "Destination",
	BlendDestinationOver: "DestinationOver",
	BlendSourceIn:        "SourceIn",
	BlendDestinationIn:   "DestinationIn",
	BlendSourceOut:       "SourceOut",
	BlendDestinationOut:  "DestinationOut",
	BlendSourceAtop:      "SourceAtop",
	BlendDestinationAtop: "DestinationAtop",
	BlendXor:             "Xor",
	BlendPlus:            "Plus",
	BlendMultiply:        "Multiply",
	BlendScreen:          "Screen",
	BlendOverlay:         "Overlay",
	BlendDarken:          "Darken",
	BlendLighten:         "Lighten",
	BlendColorDodge:      "ColorDodge",
	BlendColorBurn:       "ColorBurn",
	BlendHardLight:       "HardLight",
	BlendSoftLight:       "SoftLight",
	BlendDifference:      "Difference",
	BlendExclusion:       "Exclusion",
	BlendHue:             "Hue",
	BlendSaturation:      "Saturation",
	BlendColor:           "Color",
	BlendLuminosity:      "Luminosity",
}

// String returns the name of the blend mode.
func (m BlendMode) String() string {
	if m < blendModeCount {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", uint8(m))
}

// Valid reports whether m names a known blend mode.
func (m BlendMode) Valid() bool {
	return m < blendModeCount
}

// IsSeparable reports whether the mode is a Porter-Duff operator or a
// separable blend mode, i.e. it can be computed per channel.
func (m BlendMode) IsSeparable() bool {
	return m < BlendHue
}

// blendOrDefault degrades unknown modes to source-over.
func blendOrDefault(m BlendMode) BlendMode {
	if m.Valid() {
		return m
	}
	Logger().Debug("canvas: unknown blend mode, using source-over", "mode", m)
	return BlendSourceOver
}
