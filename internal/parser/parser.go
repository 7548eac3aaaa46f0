// Package parser reads markdown files into note values for import.
package parser

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/kwadjo-wusu-ansah/notes/internal/note"
)

var frontMatter = regexp.MustCompile(`(?s)\A---\r?\n(.*?)\r?\n---\r?\n?`)

// Document is one parsed markdown file.
type Document struct {
	Path    string
	Title   string
	Content string
	Tags    []string
}

// Values turns d into a create form, appending extra tags.
func (d Document) Values(extra []string) note.Values {
	tags := append(append([]string{}, d.Tags...), extra...)
	return note.Values{
		Title:   d.Title,
		Content: d.Content,
		Tags:    note.DedupeTags(note.NormalizeTags(tags)),
	}
}

type Parser struct {
	Paths     []string
	Documents []Document
}

func NewParser(paths ...string) *Parser {
	return &Parser{Paths: paths}
}

// Walk parses every path. Directories are searched recursively for .md
// files; files named directly are parsed whatever their extension. Paths
// may be glob patterns, including "**".
func (p *Parser) Walk() error {
	for _, root := range p.Paths {
		if !hasMeta(root) {
			if err := p.walkPath(root); err != nil {
				return err
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(root)
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %w", root, err)
		}
		for _, match := range matches {
			if err := p.walkPath(match); err != nil {
				return err
			}
		}
	}
	return nil
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

func (p *Parser) walkPath(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("error reading %q: %w", root, err)
	}
	if !info.IsDir() {
		return p.parseFile(root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error walking the path %q: %w", path, err)
		}
		if !d.IsDir() && filepath.Ext(path) == ".md" {
			return p.parseFile(path)
		}
		return nil
	})
}

func (p *Parser) parseFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}
	p.Documents = append(p.Documents, Parse(path, source))
	return nil
}

// Parse reads source. The title comes from front matter, then the first
// level one heading, then the file name. Tags come from front matter and
// from a list following a "tags:" line.
func Parse(path string, source []byte) Document {
	doc := Document{Path: path}

	body := source
	if m := frontMatter.FindSubmatchIndex(source); m != nil {
		var data struct {
			Title string   `yaml:"title"`
			Tags  []string `yaml:"tags"`
		}
		if err := yaml.Unmarshal(source[m[2]:m[3]], &data); err == nil {
			doc.Title = strings.TrimSpace(data.Title)
			doc.Tags = append(doc.Tags, data.Tags...)
		}
		body = source[m[1]:]
	}
	doc.Content = strings.TrimSpace(string(body))

	heading, tags := walkBody(body)
	if doc.Title == "" {
		doc.Title = heading
	}
	if doc.Title == "" {
		doc.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	doc.Tags = append(doc.Tags, tags...)
	return doc
}

func walkBody(source []byte) (heading string, tags []string) {
	document := goldmark.DefaultParser().Parse(text.NewReader(source))

	var inTagsSection bool

	_ = ast.Walk(
		document,
		func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				if _, ok := n.(*ast.List); ok && inTagsSection {
					inTagsSection = false
				}
				return ast.WalkContinue, nil
			}

			switch n := n.(type) {
			case *ast.Heading:
				if n.Level == 1 && heading == "" {
					heading = strings.TrimSpace(string(n.Text(source)))
				}
			case *ast.ListItem:
				if inTagsSection {
					tags = append(tags, strings.TrimSpace(string(n.Text(source))))
				}
			case *ast.Text:
				if strings.TrimSpace(string(n.Text(source))) == "tags:" {
					inTagsSection = true
				}
			}
			return ast.WalkContinue, nil
		},
	)
	return heading, tags
}
