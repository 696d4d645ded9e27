package utils

import (
	"fmt"
	"image/color"
)

// HexToRGBA converts a color expressed in the "#rgb" or "#rrggbb"
// hexadecimal form to color.NRGBA with full opacity.
func HexToRGBA(hex string) (color.NRGBA, error) {
	var c color.NRGBA
	c.A = 0xff

	if len(hex) == 0 || hex[0] != '#' {
		return c, fmt.Errorf("%q is not a valid hex color", hex)
	}

	hexToByte := func(b byte) (byte, error) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', nil
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, nil
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, nil
		}
		return 0, fmt.Errorf("%q is not a valid hex color", hex)
	}

	switch len(hex) {
	case 7:
		for i, ch := range []*byte{&c.R, &c.G, &c.B} {
			hi, err := hexToByte(hex[1+i*2])
			if err != nil {
				return c, err
			}
			lo, err := hexToByte(hex[2+i*2])
			if err != nil {
				return c, err
			}
			*ch = hi<<4 + lo
		}
	case 4:
		for i, ch := range []*byte{&c.R, &c.G, &c.B} {
			v, err := hexToByte(hex[1+i])
			if err != nil {
				return c, err
			}
			*ch = v<<4 + v
		}
	default:
		return c, fmt.Errorf("%q is not a valid hex color", hex)
	}
	return c, nil
}
