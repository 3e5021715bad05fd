package render

import "image/color"

// Colors shared by the viewer and the GIF export.
var (
	DeadColor  color.Color = color.White
	AliveColor color.Color = color.Black
)

// FillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func FillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Enlarge writes a nearest-neighbour upscaled copy of rows into dst, each cell
// becoming a scale*scale block. dst must hold len(rows)*scale*width*scale
// bytes where width is len(rows[0]).
func Enlarge(dst []uint8, rows [][]uint8, scale int) {
	if len(rows) == 0 {
		return
	}
	stride := len(rows[0]) * scale
	for y, row := range rows {
		line := dst[y*scale*stride : (y*scale+1)*stride]
		for x, v := range row {
			block := line[x*scale : (x+1)*scale]
			for i := range block {
				block[i] = v
			}
		}
		for k := 1; k < scale; k++ {
			copy(dst[(y*scale+k)*stride:(y*scale+k+1)*stride], line)
		}
	}
}

// CellAt maps a pixel position on a board drawn at scale onto the cell under
// it. ok is false when the position falls outside the w*h board.
func CellAt(px, py, scale, w, h int) (row, column int, ok bool) {
	if scale < 1 || px < 0 || py < 0 {
		return 0, 0, false
	}
	row, column = py/scale, px/scale
	if row >= h || column >= w {
		return 0, 0, false
	}
	return row, column, true
}
