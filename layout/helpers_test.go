package layout

import "github.com/tsawler/cvoutline/model"

const (
	testPageWidth  = 612.0
	testPageHeight = 792.0
)

// makeSpan creates a span with a regular or bold font name
func makeSpan(text string, size float64, bold bool) model.Span {
	font := "Helvetica"
	if bold {
		font = "Helvetica-Bold"
	}
	return model.Span{Text: text, Size: size, Bold: bold, Font: font}
}

// makeLine creates a single-span line at the given box
func makeLine(text string, size float64, bold bool, x0, y0, x1, y1 float64) model.Line {
	return model.Line{
		Spans: []model.Span{makeSpan(text, size, bold)},
		BBox:  model.NewRect(x0, y0, x1, y1),
	}
}

// makeBlock creates a block whose box is the union of its line boxes
func makeBlock(lines ...model.Line) model.Block {
	b := model.Block{Lines: lines}
	for i, l := range lines {
		if i == 0 {
			b.BBox = l.BBox
			continue
		}
		b.BBox = b.BBox.Union(l.BBox)
	}
	return b
}

// makePage creates a letter-size page
func makePage(number int, blocks ...model.Block) model.Page {
	return model.Page{Number: number, Width: testPageWidth, Height: testPageHeight, Blocks: blocks}
}

// bodyBlock creates a two-line paragraph of 11pt text at the given top edge
func bodyBlock(y float64) model.Block {
	return makeBlock(
		makeLine("This paragraph holds ordinary body text for the page", 11, false, 72, y, 540, y+13),
		makeLine("and continues onto a second line of similar length here", 11, false, 72, y+14, 540, y+27),
	)
}

// footerBlock creates a footer line near the bottom of the page
func footerBlock(text string) model.Block {
	return makeBlock(makeLine(text, 9, false, 280, 760, 330, 770))
}
