// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package content

// Carousel tracks the focused index over a fixed-size item list. Two stepping
// behaviors exist: the dossier detail view clamps at both ends, while the
// mission archive wraps around. The asymmetry is intentional and views must
// not normalize it.
type Carousel struct {
	index int
	size  int
	wrap  bool
}

// NewClampedCarousel builds a carousel that stops at the first and last item.
func NewClampedCarousel(size int) *Carousel {
	return &Carousel{size: size}
}

// NewWrappingCarousel builds a carousel that cycles past either end.
func NewWrappingCarousel(size int) *Carousel {
	return &Carousel{size: size, wrap: true}
}

// Index returns the focused position. It is always in [0, size) for a
// non-empty carousel and 0 for an empty one.
func (c *Carousel) Index() int {
	return c.index
}

// Size returns the number of items.
func (c *Carousel) Size() int {
	return c.size
}

// Next advances the focus. It reports whether the focus actually moved, which
// a view uses to decide whether to start a transition.
func (c *Carousel) Next() bool {
	if c.size <= 1 {
		return false
	}
	if c.index == c.size-1 {
		if !c.wrap {
			return false
		}
		c.index = 0
		return true
	}
	c.index++
	return true
}

// Prev moves the focus backwards, mirroring Next.
func (c *Carousel) Prev() bool {
	if c.size <= 1 {
		return false
	}
	if c.index == 0 {
		if !c.wrap {
			return false
		}
		c.index = c.size - 1
		return true
	}
	c.index--
	return true
}

// Focus jumps directly to position i if it is in range and reports whether
// the focus moved.
func (c *Carousel) Focus(i int) bool {
	if i < 0 || i >= c.size || i == c.index {
		return false
	}
	c.index = i
	return true
}

// AtStart reports whether the focus is on the first item.
func (c *Carousel) AtStart() bool { return c.index == 0 }

// AtEnd reports whether the focus is on the last item.
func (c *Carousel) AtEnd() bool { return c.size == 0 || c.index == c.size-1 }
