package resume

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format: поддерживаемый тип документа.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatWord Format = "word"
)

// DetectFormat maps a file name to a supported format by extension.
// Supports: .pdf, .docx and .doc
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx", ".doc":
		return FormatWord, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Extraction is the outcome of reading one document: either text, or the reason it failed.
type Extraction struct {
	Text string
	Err  error
}

func (e Extraction) OK() bool { return e.Err == nil }

// ExtractionError is returned by a strict parser when a document could not be decoded.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract text from %s: %v", filepath.Base(e.Path), e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// TextExtractor produces the plain text content of a file on disk.
type TextExtractor interface {
	Extract(path string) Extraction
}

// PDFExtractor reads the text layer page by page.
type PDFExtractor struct{}

func (PDFExtractor) Extract(path string) (res Extraction) {
	// ledongthuc/pdf panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			res = Extraction{Err: fmt.Errorf("pdf decoder panic: %v", r)}
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return Extraction{Err: fmt.Errorf("open pdf: %w", err)}
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return Extraction{Err: fmt.Errorf("read pdf page %d: %w", i, err)}
		}
		if text == "" {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return Extraction{Text: b.String()}
}

// WordExtractor emits one line per document paragraph.
type WordExtractor struct{}

func (WordExtractor) Extract(path string) Extraction {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return Extraction{Err: fmt.Errorf("open docx: %w", err)}
	}
	defer r.Close()

	text, err := paragraphsFromDocumentXML(r.Editable().GetContent())
	if err != nil {
		return Extraction{Err: fmt.Errorf("read docx body: %w", err)}
	}
	return Extraction{Text: text}
}

// paragraphsFromDocumentXML walks word/document.xml and joins the runs of every
// w:p element, terminating each paragraph with a newline. Tabs and breaks count
// only inside a run (w:r); w:tab also declares tab stops under w:pPr.
func paragraphsFromDocumentXML(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	var (
		out    strings.Builder
		inText bool
		runs   int
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "r":
				runs++
			case "t":
				inText = true
			case "tab":
				if runs > 0 {
					out.WriteString("\t")
				}
			case "br", "cr":
				if runs > 0 {
					out.WriteString("\n")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "r":
				if runs > 0 {
					runs--
				}
			case "t":
				inText = false
			case "p":
				out.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				out.Write(t)
			}
		}
	}
	return out.String(), nil
}

// DefaultExtractors returns the extractor table used by NewParser.
func DefaultExtractors() map[Format]TextExtractor {
	return map[Format]TextExtractor{
		FormatPDF:  PDFExtractor{},
		FormatWord: WordExtractor{},
	}
}
