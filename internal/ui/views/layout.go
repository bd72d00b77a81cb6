package views

import "strings"

// RegionKind tells what a block of lines shows
type RegionKind int

const (
	RegionField RegionKind = iota
	RegionCard
)

// Region is a block of lines that reacts to the pointer
type Region struct {
	Kind   RegionKind
	Owner  string // field id for fields
	Index  int    // event index for cards
	Start  int
	Height int
}

// Layout collects rendered lines together with the regions they belong to,
// so pointer positions can be mapped back to what is under them.
type Layout struct {
	lines   []string
	regions []Region
}

// Add appends lines that do not react to the pointer
func (l *Layout) Add(block string) {
	l.lines = append(l.lines, strings.Split(block, "\n")...)
}

// Blank appends an empty line
func (l *Layout) Blank() {
	l.lines = append(l.lines, "")
}

// AddRegion appends block and records it as a region
func (l *Layout) AddRegion(kind RegionKind, owner string, index int, block string) {
	lines := strings.Split(block, "\n")
	l.regions = append(l.regions, Region{
		Kind:   kind,
		Owner:  owner,
		Index:  index,
		Start:  len(l.lines),
		Height: len(lines),
	})
	l.lines = append(l.lines, lines...)
}

// Lines returns the number of lines so far
func (l *Layout) Lines() int {
	return len(l.lines)
}

// RegionAt returns the region covering line and the line's offset inside it
func (l *Layout) RegionAt(line int) (Region, int, bool) {
	for _, r := range l.regions {
		if line >= r.Start && line < r.Start+r.Height {
			return r, line - r.Start, true
		}
	}
	return Region{}, 0, false
}

func (l *Layout) String() string {
	return strings.Join(l.lines, "\n")
}
