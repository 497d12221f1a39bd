package sections

import "github.com/tsawler/cvoutline/model"

func makeLine(text string, size float64, bold bool, x0, y0, x1, y1 float64) model.Line {
	return model.Line{
		Spans: []model.Span{{Text: text, Size: size, Bold: bold, Font: "Helvetica"}},
		BBox:  model.NewRect(x0, y0, x1, y1),
	}
}

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

func makePage(number int, blocks ...model.Block) model.Page {
	return model.Page{Number: number, Width: 612, Height: 792, Blocks: blocks}
}

// heading creates a single-line bold 14pt block at the left margin
func heading(text string, y float64) model.Block {
	return makeBlock(makeLine(text, 14, true, 72, y, 220, y+14))
}

// paragraph creates a single-line 11pt block; text should end in a period
// so it never scores as a heading
func paragraph(text string, y float64) model.Block {
	return makeBlock(makeLine(text, 11, false, 72, y, 540, y+13))
}

const (
	experienceText = "Developed payment services in Go and led a team of five engineers."
	educationText  = "BSc Computer Science at the University of Somewhere with honours."
	skillsText     = "Go, Python, SQL, distributed systems and cloud infrastructure tooling."
)

// resumeDocument is a two-page resume with a contact block and three
// classified sections
func resumeDocument() *model.Document {
	return &model.Document{Pages: []model.Page{
		makePage(1,
			makeBlock(
				makeLine("Alex Smith", 20, true, 256, 40, 356, 60),
				makeLine("alex@example.org | +1 (555) 123-4567", 10, false, 206, 62, 406, 74),
			),
			heading("Work Experience", 100),
			paragraph(experienceText, 120),
			heading("Education", 200),
			paragraph(educationText, 220),
		),
		makePage(2,
			heading("Skills", 60),
			paragraph(skillsText, 80),
		),
	}}
}
