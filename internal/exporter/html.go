package exporter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nikbrunner/drill/internal/model"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const stylesheet = `
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; line-height: 1.5; }
section { margin-bottom: 2rem; }
article { border-left: 3px solid #7c6f9f; padding-left: 1rem; margin-bottom: 1rem; }
.category { color: #7c6f9f; font-size: 0.85rem; text-transform: uppercase; }
.answer { color: #333; }
`

// DefaultExportPath returns the export file path inside dir.
// Format: <dir>/drill-export-YYYY-MM-DD.html
func DefaultExportPath(dir string, now time.Time) string {
	filename := fmt.Sprintf("drill-export-%s.html", now.Format("2006-01-02"))
	return filepath.Join(dir, filename)
}

// ExportHTML renders questions as a standalone HTML study sheet.
// Questions are grouped by category in order of first appearance.
func ExportHTML(title string, questions []model.Question) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, title, questions); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportFile writes the study sheet to path, creating parent directories.
func ExportFile(path, title string, questions []model.Question) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if err := Render(f, title, questions); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Render writes the study sheet to w.
func Render(w io.Writer, title string, questions []model.Question) error {
	if err := html.Render(w, document(title, questions)); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func document(title string, questions []model.Question) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	head.AppendChild(withText(element(atom.Title), title))
	head.AppendChild(withText(element(atom.Style), stylesheet))
	root.AppendChild(head)

	body := element(atom.Body)
	body.AppendChild(withText(element(atom.H1), title))
	body.AppendChild(withText(element(atom.P), summary(len(questions))))

	for _, group := range groupByCategory(questions) {
		section := element(atom.Section)
		section.AppendChild(withText(element(atom.H2), group.category))
		for _, q := range group.questions {
			section.AppendChild(card(q))
		}
		body.AppendChild(section)
	}
	root.AppendChild(body)

	return doc
}

func card(q model.Question) *html.Node {
	article := element(atom.Article, attr("id", "q-"+strconv.Itoa(q.ID)))
	article.AppendChild(withText(element(atom.Span, attr("class", "category")), q.Category))
	article.AppendChild(withText(element(atom.H3), fmt.Sprintf("#%d: %s", q.ID, q.Question)))

	answer := element(atom.P, attr("class", "answer"))
	for i, line := range strings.Split(q.Answer, "\n") {
		if i > 0 {
			answer.AppendChild(element(atom.Br))
		}
		answer.AppendChild(text(line))
	}
	article.AppendChild(answer)

	return article
}

func summary(n int) string {
	if n == 1 {
		return "1 question"
	}
	return fmt.Sprintf("%d questions", n)
}

type categoryGroup struct {
	category  string
	questions []model.Question
}

func groupByCategory(questions []model.Question) []categoryGroup {
	var groups []categoryGroup
	index := make(map[string]int)
	for _, q := range questions {
		i, ok := index[q.Category]
		if !ok {
			i = len(groups)
			index[q.Category] = i
			groups = append(groups, categoryGroup{category: q.Category})
		}
		groups[i].questions = append(groups[i].questions, q)
	}
	return groups
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func withText(n *html.Node, s string) *html.Node {
	n.AppendChild(text(s))
	return n
}
