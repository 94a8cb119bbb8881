package util

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

const (
	kib = int64(1024)
	mib = 1024 * kib
	gib = 1024 * mib
)

// FormatSize renders a byte count for display. Sizes under one kilobyte come
// back as plain bytes; larger sizes carry the exact comma-separated byte
// count in parentheses, e.g. "2.00 KB (2,048 bytes)".
func FormatSize(size int64) string {
	switch {
	case size < kib:
		return fmt.Sprintf("%d bytes", size)
	case size < mib:
		return fmt.Sprintf("%.2f KB (%s bytes)", float64(size)/float64(kib), humanize.Comma(size))
	case size < gib:
		return fmt.Sprintf("%.2f MB (%s bytes)", float64(size)/float64(mib), humanize.Comma(size))
	default:
		return fmt.Sprintf("%.2f GB (%s bytes)", float64(size)/float64(gib), humanize.Comma(size))
	}
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}
