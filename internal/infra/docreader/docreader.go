// Package docreader extracts plain text from the document formats the
// analysis actions accept.
package docreader

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"aechlegal/internal/domain"
)

const (
	docxBodyPart  = "word/document.xml"
	wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

// Read returns the text of a .txt, .md or .docx file truncated to maxChars
// runes. maxChars <= 0 disables truncation.
func Read(path string, maxChars int) (string, error) {
	const op = "docreader.Read"

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", domain.NotFound(op, "File", path)
		}
		return "", domain.Wrap(domain.CodeInternal, op, err)
	}

	var (
		text string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".md":
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return "", domain.Wrap(domain.CodeInternal, op, err)
		}
		text = string(data)
	case ".docx":
		text, err = readDocx(path)
		if err != nil {
			return "", domain.E(domain.CodeUnsupportedFormat, op, fmt.Sprintf("Failed to read DOCX: %v", err), domain.ErrUnsupportedFormat)
		}
	default:
		return "", domain.E(domain.CodeUnsupportedFormat, op, fmt.Sprintf("Unsupported file type: %s", ext), domain.ErrUnsupportedFormat)
	}
	return Truncate(text, maxChars), nil
}

// Truncate cuts text to at most maxChars runes.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 || len(text) <= maxChars {
		return text
	}
	count := 0
	for i := range text {
		if count == maxChars {
			return text[:i]
		}
		count++
	}
	return text
}

func readDocx(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != docxBodyPart {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		return paragraphs(rc)
	}
	return "", fmt.Errorf("%s missing", docxBodyPart)
}

// paragraphs joins the w:t runs of every w:p element, one paragraph per line.
// A paragraph nested in a text box is emitted on its own line before the
// paragraph that contains it.
func paragraphs(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var (
		lines  []string
		open   []*strings.Builder
		inText bool
	)
	top := func() *strings.Builder {
		if len(open) == 0 {
			return nil
		}
		return open[len(open)-1]
	}
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordNamespace {
				continue
			}
			current := top()
			switch t.Name.Local {
			case "p":
				open = append(open, &strings.Builder{})
			case "t":
				inText = current != nil
			case "tab":
				if current != nil {
					current.WriteByte('\t')
				}
			case "br", "cr":
				if current != nil {
					current.WriteByte('\n')
				}
			}
		case xml.EndElement:
			if t.Name.Space != wordNamespace {
				continue
			}
			switch t.Name.Local {
			case "p":
				if current := top(); current != nil {
					lines = append(lines, current.String())
					open = open[:len(open)-1]
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if current := top(); inText && current != nil {
				current.Write(t)
			}
		}
	}
	return strings.Join(lines, "\n"), nil
}
