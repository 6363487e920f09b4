package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeparser/pkg/nlp"
)

type fakeExtractor struct {
	res   Extraction
	calls *int
}

func (f fakeExtractor) Extract(string) Extraction {
	*f.calls++
	return f.res
}

const sampleResume = `Jane Doe
jane.doe@example.com | +1 555-123-4567 | linkedin.com/in/janedoe

Senior Software Engineer
Built payment services in Go and PostgreSQL on AWS.

Junior Developer
Maintained React front ends.

Education
Bachelor of Science in Computer Science
`

func newTestParser(res Extraction, strict bool) (ParserUseCase, *int) {
	calls := 0
	ex := fakeExtractor{res: res, calls: &calls}
	p := NewParser(ParserOptions{
		Strict:     strict,
		SkillMode:  nlp.MatchWordBoundary,
		Names:      nlp.CapitalizedNameRecognizer{},
		Extractors: map[Format]TextExtractor{FormatPDF: ex, FormatWord: ex},
	})
	return p, &calls
}

func TestParseFile_AssemblesAllFields(t *testing.T) {
	p, calls := newTestParser(Extraction{Text: sampleResume}, false)

	got, err := p.ParseFile(context.Background(), "uploads/jane.pdf")
	require.NoError(t, err)
	assert.Equal(t, 1, *calls)

	require.NotNil(t, got.Contact.Name)
	assert.Equal(t, "Jane Doe", *got.Contact.Name)
	assert.Equal(t, "jane.doe@example.com", *got.Contact.Email)
	assert.Equal(t, []string{"Go", "React", "Postgresql", "Aws"}, got.Skills)
	require.Len(t, got.Experience, 2)
	assert.Equal(t, "Senior Software Engineer", *got.Experience[0].Title)
	assert.Equal(t, "Junior Developer", *got.Experience[1].Title)
	require.NotEmpty(t, got.Education)
	assert.Equal(t, sampleResume, got.RawText)
}

func TestParseFile_UnsupportedRejectedBeforeExtraction(t *testing.T) {
	p, calls := newTestParser(Extraction{Text: sampleResume}, false)

	_, err := p.ParseFile(context.Background(), "notes.txt")

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Zero(t, *calls)
}

func TestParseFile_DegradesToEmptyText(t *testing.T) {
	p, _ := newTestParser(Extraction{Err: errors.New("corrupt xref table")}, false)

	got, err := p.ParseFile(context.Background(), "broken.pdf")

	require.NoError(t, err)
	assert.Empty(t, got.RawText)
	assert.Nil(t, got.Contact.Name)
	assert.NotNil(t, got.Skills)
	assert.Empty(t, got.Skills)
	assert.Empty(t, got.Education)
	assert.Empty(t, got.Experience)
}

func TestParseFile_StrictReportsExtractionFailure(t *testing.T) {
	cause := errors.New("corrupt xref table")
	p, _ := newTestParser(Extraction{Err: cause}, true)

	_, err := p.ParseFile(context.Background(), "/tmp/uploads/broken.docx")

	var exErr *ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "extract text from broken.docx: corrupt xref table", err.Error())
}

func TestParseFile_CanceledContext(t *testing.T) {
	p, calls := newTestParser(Extraction{Text: sampleResume}, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.ParseFile(ctx, "cv.pdf")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, *calls)
}

func TestParseText_Deterministic(t *testing.T) {
	p := NewParser(ParserOptions{Names: nlp.CapitalizedNameRecognizer{}})

	assert.Equal(t, p.ParseText(sampleResume), p.ParseText(sampleResume))
}

func TestDetectFormat(t *testing.T) {
	cases := map[string]Format{
		"cv.pdf":      FormatPDF,
		"CV.PDF":      FormatPDF,
		"resume.docx": FormatWord,
		"old.doc":     FormatWord,
		"a.b.c.Docx":  FormatWord,
	}
	for name, want := range cases {
		got, err := DetectFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	for _, name := range []string{"notes.txt", "pdf", "resume.pdf.exe", ""} {
		_, err := DetectFormat(name)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, name)
	}
}

func TestParagraphsFromDocumentXML(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>Jane </w:t></w:r><w:r><w:t>Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Senior</w:t><w:tab/><w:t>Engineer</w:t><w:br/><w:t>Acme &amp; Co</w:t></w:r></w:p>` +
		`<w:p/>` +
		`</w:body></w:document>`

	got, err := paragraphsFromDocumentXML(doc)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior\tEngineer\nAcme & Co\n\n", got)
}

func TestParagraphsFromDocumentXML_TabStopsAreNotText(t *testing.T) {
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/><w:tab w:val="right" w:pos="9360"/></w:tabs></w:pPr>` +
		`<w:r><w:t>Jane Doe</w:t></w:r><w:r><w:tab/><w:t>2020</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got, err := paragraphsFromDocumentXML(doc)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\t2020\n", got)
}

func TestParagraphsFromDocumentXML_Malformed(t *testing.T) {
	_, err := paragraphsFromDocumentXML("<w:document><w:body><w:p>")
	assert.Error(t, err)
}

func TestPDFExtractor_MissingFile(t *testing.T) {
	res := PDFExtractor{}.Extract("does-not-exist.pdf")
	assert.False(t, res.OK())
}

func TestWordExtractor_MissingFile(t *testing.T) {
	res := WordExtractor{}.Extract("does-not-exist.docx")
	assert.False(t, res.OK())
}
