package fsutils

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var sizeUnits = []string{"KB", "MB", "GB", "TB"}

// GetSizeShortText formats size in binary units rounded to the nearest
// whole number, e.g. "1536" becomes "2KB". TB is the largest unit.
func GetSizeShortText(size int64) string {
	if size < 1024 {
		return strconv.FormatInt(size, 10) + "B"
	}
	scale := int64(1024)
	i := 0
	for ; i < len(sizeUnits)-1; i++ {
		if (size+scale/2)/scale < 1024 {
			break
		}
		scale *= 1024
	}
	return strconv.FormatInt((size+scale/2)/scale, 10) + sizeUnits[i]
}

var bytesPrinter = message.NewPrinter(language.English)

// GetSizeLongText returns the exact byte count with thousands separators, e.g. "10,240 bytes".
func GetSizeLongText(size int64) string {
	if size == 1 {
		return "1 byte"
	}
	return bytesPrinter.Sprintf("%d bytes", size)
}
