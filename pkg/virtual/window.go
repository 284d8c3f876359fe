// Package virtual computes the visible index window for large scrolling
// lists so callers render a bounded subset regardless of item count.
package virtual

import (
	"errors"
	"fmt"
)

// ErrInvalidViewport reports a non-positive item or container height.
var ErrInvalidViewport = errors.New("virtual: invalid viewport")

// DefaultOverscan is the number of extra rows rendered on each side of
// the viewport to absorb scroll jitter.
const DefaultOverscan = 5

// Window is the inclusive index range to render plus its pixel placement.
// Empty is the valid "nothing to render" result for an empty list.
type Window struct {
	Start       int
	End         int
	Offset      int
	TotalHeight int
	Empty       bool
}

// Count returns the number of items inside the window.
func (w Window) Count() int {
	if w.Empty {
		return 0
	}
	return w.End - w.Start + 1
}

// Compute derives the window for the given scroll state. The work is
// constant time; it runs on every scroll event and must not depend on
// itemCount.
func Compute(itemCount, itemHeight, containerHeight, scrollTop, overscan int) (Window, error) {
	if itemHeight <= 0 || containerHeight <= 0 {
		return Window{}, fmt.Errorf("%w: itemHeight=%d containerHeight=%d",
			ErrInvalidViewport, itemHeight, containerHeight)
	}
	if itemCount <= 0 {
		return Window{Empty: true}, nil
	}
	if scrollTop < 0 {
		scrollTop = 0
	}
	if overscan < 0 {
		overscan = 0
	}

	visibleStart := scrollTop / itemHeight
	visibleEnd := ceilDiv(scrollTop+containerHeight, itemHeight)

	start := visibleStart - overscan
	if start < 0 {
		start = 0
	}
	end := visibleEnd + overscan
	if end > itemCount-1 {
		end = itemCount - 1
	}
	// Scrolling past the end of the content must still yield a valid
	// window, pinned to the last item.
	if start > end {
		start = end
	}

	return Window{
		Start:       start,
		End:         end,
		Offset:      start * itemHeight,
		TotalHeight: itemCount * itemHeight,
	}, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
