package tui

type regionKind int

const (
	regionNone regionKind = iota
	regionPageTitle
	// Section chrome.
	regionHeader
	regionBody
	// Section children: these consume clicks before the chrome sees them.
	regionTitle
	regionContent
	regionDuplicate
	regionDelete

	regionAdd
)

// region is a clickable rectangle in page coordinates (half-open on both axes).
type region struct {
	kind      regionKind
	sectionID string
	x0, y0    int
	x1, y1    int
}

func (r region) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

func (r region) shift(dy int) region {
	r.y0 += dy
	r.y1 += dy
	return r
}

// hitTest returns the first region containing (x, y). Callers list child regions
// before the chrome that surrounds them, so the innermost target wins.
func hitTest(regions []region, x, y int) (region, bool) {
	for _, r := range regions {
		if r.contains(x, y) {
			return r, true
		}
	}
	return region{}, false
}
