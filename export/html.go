package export

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/cvoutline/model"
)

// element creates an element node with the given attributes (key, value pairs)
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// withText creates an element holding a single text child
func withText(a atom.Atom, s string, attrs ...string) *html.Node {
	n := element(a, attrs...)
	n.AppendChild(textNode(s))
	return n
}

// renderHTML wraps body nodes in a complete document and renders it. Text is
// escaped by the renderer.
func renderHTML(w io.Writer, title string, body []*html.Node) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html, "lang", "en")
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, "charset", "utf-8"))
	head.AppendChild(withText(atom.Title, title))
	root.AppendChild(head)

	b := element(atom.Body)
	b.AppendChild(withText(atom.H1, title))
	for _, n := range body {
		b.AppendChild(n)
	}
	root.AppendChild(b)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// outlineNodes renders headings as nested lists, one level per depth
func outlineNodes(outline *model.Outline) []*html.Node {
	if outline.Error != "" {
		return []*html.Node{withText(atom.P, outline.Error, "class", "error")}
	}

	nav := element(atom.Nav, "class", "outline")
	top := element(atom.Ul)
	nav.AppendChild(top)

	// stack[d] is the list receiving items at depth d
	stack := []*html.Node{top}
	for _, h := range outline.Headings {
		depth := h.Level.Depth()
		for len(stack) <= depth {
			parent := stack[len(stack)-1]
			holder := parent.LastChild
			if holder == nil {
				holder = element(atom.Li)
				parent.AppendChild(holder)
			}
			ul := element(atom.Ul)
			holder.AppendChild(ul)
			stack = append(stack, ul)
		}
		stack = stack[:depth+1]

		li := withText(atom.Li, h.Text,
			"class", string(h.Level),
			"data-page", strconv.Itoa(h.Page))
		stack[depth].AppendChild(li)
	}

	return []*html.Node{nav}
}

func (e *Exporter) profileNodes(p *model.CandidateProfile, sections []model.Section) []*html.Node {
	var nodes []*html.Node

	info := p.PersonalInfo
	contact := element(atom.Address)
	if info.Name != "" {
		contact.AppendChild(withText(atom.Strong, info.Name))
	}
	if info.Email != nil {
		contact.AppendChild(element(atom.Br))
		contact.AppendChild(withText(atom.A, *info.Email, "href", "mailto:"+*info.Email))
	}
	if info.Phone != nil {
		contact.AppendChild(element(atom.Br))
		contact.AppendChild(withText(atom.Span, *info.Phone, "class", "phone"))
	}
	if contact.FirstChild != nil {
		nodes = append(nodes, contact)
	}

	if e.config.IncludeSections && sections != nil {
		for _, s := range sections {
			sec := element(atom.Section, "class", string(s.Category))
			sec.AppendChild(withText(atom.H2, s.Heading))
			if s.Content != "" {
				sec.AppendChild(withText(atom.P, s.Content))
			}
			if len(s.Highlights.ShortSentences) > 0 {
				ul := element(atom.Ul, "class", "highlights")
				for _, sentence := range s.Highlights.ShortSentences {
					ul.AppendChild(withText(atom.Li, sentence))
				}
				sec.AppendChild(ul)
			}
			nodes = append(nodes, sec)
		}
		return nodes
	}

	for _, g := range profileGroups(p) {
		if len(g.items) == 0 {
			continue
		}
		sec := element(atom.Section, "class", string(g.category))
		sec.AppendChild(withText(atom.H2, g.heading))
		for _, item := range g.items {
			sec.AppendChild(withText(atom.P, item))
		}
		nodes = append(nodes, sec)
	}
	return nodes
}
