// Package templater renders the starting content of new notes from named
// templates.
package templater

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"
	"time"

	"github.com/kwadjo-wusu-ansah/notes/internal/note"
)

//go:embed templates
var embeddedTemplates embed.FS

// DefaultTemplate leaves the content as given.
const DefaultTemplate = "blank"

type SingleTemplate struct {
	FilePath string
	Content  string
}

type TemplateMap map[string]SingleTemplate

// Templater manages a collection of templates.
type Templater struct {
	templates TemplateMap
}

// TemplateData is passed to templates during rendering.
type TemplateData struct {
	Title   string
	Date    string
	Content string
	Tags    []string
}

// NewTemplater loads the .tmpl files in userDir over the bundled templates.
// A missing userDir is not an error.
func NewTemplater(userDir string) (*Templater, error) {
	tmplMap := make(TemplateMap)

	if userDir != "" {
		if _, err := os.Stat(userDir); err == nil {
			if err := tmplMap.loadTemplates(userDir); err != nil {
				return nil, err
			}
		}
	}

	if err := tmplMap.loadEmbeddedTemplates(embeddedTemplates); err != nil {
		return nil, err
	}

	return &Templater{templates: tmplMap}, nil
}

// Names lists the available templates in sorted order.
func (t *Templater) Names() []string {
	names := make([]string, 0, len(t.templates))
	for name := range t.templates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (t *Templater) Has(name string) bool {
	_, ok := t.templates[name]
	return ok
}

// Execute renders the named template.
func (t *Templater) Execute(templateName string, data TemplateData) (string, error) {
	tmplData, ok := t.templates[templateName]
	if !ok {
		return "", fmt.Errorf(
			"template %q not found. Available templates: %s",
			templateName,
			strings.Join(t.Names(), ", "),
		)
	}

	tmpl, err := template.New(templateName).Parse(tmplData.Content)
	if err != nil {
		return "", err
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}

	return strings.TrimRight(rendered.String(), "\n"), nil
}

// Values renders the named template into a create form. The daily template
// adds the "daily" tag and the weekday.
func (t *Templater) Values(templateName string, v note.Values, now time.Time) (note.Values, error) {
	if templateName == "" {
		templateName = DefaultTemplate
	}

	tags := append([]string{}, v.Tags...)
	if templateName == "daily" {
		tags = append(tags, "daily", strings.ToLower(now.Weekday().String()))
		if strings.TrimSpace(v.Title) == "" {
			v.Title = now.Format("Monday, 02 Jan 2006")
		}
	}
	tags = note.DedupeTags(note.NormalizeTags(tags))

	content, err := t.Execute(templateName, TemplateData{
		Title:   v.Title,
		Date:    note.FormatDate(now),
		Content: v.Content,
		Tags:    tags,
	})
	if err != nil {
		return note.Values{}, err
	}

	return note.Values{Title: v.Title, Content: content, Tags: tags}, nil
}

func (m TemplateMap) loadEmbeddedTemplates(embeddedFS embed.FS) error {
	return fs.WalkDir(
		embeddedFS,
		"templates",
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() {
				name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
				if _, exists := m[name]; !exists {
					data, err := fs.ReadFile(embeddedFS, path)
					if err != nil {
						return err
					}

					m[name] = SingleTemplate{
						FilePath: path,
						Content:  string(data),
					}
				}
			}

			return nil
		},
	)
}

func (m TemplateMap) loadTemplates(dirPath string) error {
	return filepath.WalkDir(
		dirPath,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && filepath.Ext(path) == ".tmpl" {
				name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
				if _, exists := m[name]; !exists {
					data, err := os.ReadFile(path)
					if err != nil {
						return err
					}
					m[name] = SingleTemplate{
						FilePath: path,
						Content:  string(data),
					}
				}
			}
			return nil
		},
	)
}
