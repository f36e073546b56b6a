// Package htmladapter walks the MHLW index page and turns its report list
// into dated editions.
package htmladapter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/mskmysht/covid-treatment-sickbed/internal/common"
	"github.com/mskmysht/covid-treatment-sickbed/internal/entity"
	"github.com/mskmysht/covid-treatment-sickbed/internal/parser"
)

// The report list lives in the first element with this class. Each edition
// occupies three consecutive list elements: the dated title, a filler row
// and the row holding the download link.
const (
	listClass       = "m-grid__col1"
	elementsPerItem = 3
)

type IndexParser struct {
	stopAt time.Time // oldest known edition, inclusive
	log    *slog.Logger
}

func NewIndexParser(stopAt time.Time, log *slog.Logger) *IndexParser {
	return &IndexParser{
		stopAt: stopAt,
		log:    log.With(slog.String("item", "IndexParser")),
	}
}

// Parse scans the index page for report editions, newest first as the site
// lists them. Scanning ends at the limit (0 means no limit), at the stop
// timestamp, or at the first title without a date pattern, whichever comes
// first.
func (p *IndexParser) Parse(r io.Reader, limit int) ([]*entity.Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse index page: %w", err)
	}

	container := findByClass(doc, listClass)
	if container == nil {
		return nil, common.ErrReportListNotFoundError
	}

	list := firstElementChild(container)
	if list == nil {
		return nil, common.ErrReportListNotFoundError
	}

	var elems []*html.Node
	for c := list.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			elems = append(elems, c)
		}
	}

	var reports []*entity.Report
	for i := 0; i+elementsPerItem-1 < len(elems); i += elementsPerItem {
		title := textContent(elems[i])

		ts, err := parser.ExtractDateTime(title)
		if errors.Is(err, common.ErrNoDatePattern) {
			p.log.Debug("End of dated entries", slog.String("title", title))

			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read title %q: %w", title, err)
		}

		href := findHref(elems[i+2])
		if href == "" {
			return nil, fmt.Errorf("no link for report of %s", ts.Format("2006-01-02 15:04"))
		}

		reports = append(reports, &entity.Report{Timestamp: ts, Path: href})

		if limit > 0 && len(reports) >= limit {
			break
		}

		if !p.stopAt.IsZero() && !ts.After(p.stopAt) {
			break
		}
	}

	return reports, nil
}

func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, class) {
		return n
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, class); found != nil {
			return found
		}
	}

	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}

		for _, name := range strings.Fields(attr.Val) {
			if name == class {
				return true
			}
		}
	}

	return false
}

func firstElementChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}

	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.TrimSpace(b.String())
}

func findHref(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "a" {
		for _, attr := range n.Attr {
			if attr.Key == "href" {
				return attr.Val
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if href := findHref(c); href != "" {
			return href
		}
	}

	return ""
}
