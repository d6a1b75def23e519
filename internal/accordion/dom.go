package accordion

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	panelSelector = "details.accordion-item"
	attrSite      = "data-site"
	attrPanel     = "data-panel"
	attrOpen      = "open"
)

// ErrBadRef is returned for an open reference that is not "<site>:<panel>".
var ErrBadRef = errors.New("panel reference must look like <site>:<panel>")

// Ref names one panel of one site.
type Ref struct {
	Site  string
	Panel string
}

// ParseRef parses "<site>:<panel>". The site part may itself contain colons.
func ParseRef(s string) (Ref, error) {
	idx := strings.LastIndex(s, ":")
	if idx <= 0 || idx == len(s)-1 {
		return Ref{}, fmt.Errorf("%w: %q", ErrBadRef, s)
	}

	return Ref{Site: s[:idx], Panel: s[idx+1:]}, nil
}

// domPanel is a handle over a rendered <details> node.
type domPanel struct {
	sel *goquery.Selection
}

func (d *domPanel) Group() string {
	return d.sel.AttrOr(attrSite, "")
}

func (d *domPanel) Name() string {
	return d.sel.AttrOr(attrPanel, "")
}

func (d *domPanel) IsOpen() bool {
	_, ok := d.sel.Attr(attrOpen)
	return ok
}

func (d *domPanel) SetOpen(open bool) {
	if open {
		d.sel.SetAttr(attrOpen, "")
		return
	}
	d.sel.RemoveAttr(attrOpen)
}

// FromDocument registers every accordion panel of a rendered document.
func FromDocument(doc *goquery.Document) *Coordinator {
	var handles []Handle
	doc.Find(panelSelector).Each(func(_ int, s *goquery.Selection) {
		handles = append(handles, &domPanel{sel: s})
	})

	return New(handles...)
}

// OpenInMarkup parses rendered markup, opens the referenced panels through the
// coordinator in order, and writes the resulting markup. Unknown references
// are ignored.
func OpenInMarkup(r io.Reader, w io.Writer, refs ...Ref) error {
	const opn = "accordion.OpenInMarkup"

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return fmt.Errorf("%s: markup cannot be parsed as HTML: %w", opn, err)
	}

	coord := FromDocument(doc)
	for _, ref := range refs {
		if h, ok := coord.Lookup(ref.Site, ref.Panel); ok {
			coord.Open(h)
		}
	}

	html, err := doc.Html()
	if err != nil {
		return fmt.Errorf("%s: failed to serialize document: %w", opn, err)
	}

	if _, err = io.WriteString(w, html); err != nil {
		return fmt.Errorf("%s: failed to write markup: %w", opn, err)
	}

	return nil
}
