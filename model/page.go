package model

// Page represents a single rendered page
type Page struct {
	Number int // 1-based page index
	Width  float64
	Height float64
	Blocks []Block
}

// CenterX returns the horizontal center of the page
func (p *Page) CenterX() float64 {
	return p.Width / 2
}

// FirstBlock returns the first block on the page, or nil if the page is empty
func (p *Page) FirstBlock() *Block {
	if p == nil || len(p.Blocks) == 0 {
		return nil
	}
	return &p.Blocks[0]
}

// LineCount returns the number of lines across all blocks
func (p *Page) LineCount() int {
	n := 0
	for _, b := range p.Blocks {
		n += len(b.Lines)
	}
	return n
}
