package resume

import (
	"context"
	"log"

	"github.com/artem13815/resumeparser/pkg/nlp"
)

// ParserUseCase turns a resume file into structured fields.
type ParserUseCase interface {
	ParseFile(ctx context.Context, path string) (ParsedResume, error)
	ParseText(text string) ParsedResume
}

// ParserOptions tunes the extraction pipeline.
type ParserOptions struct {
	// Strict makes ParseFile fail with *ExtractionError instead of degrading to empty text.
	Strict     bool
	SkillMode  nlp.MatchMode
	Names      nlp.NameRecognizer
	Extractors map[Format]TextExtractor
}

type parser struct {
	strict     bool
	extractors map[Format]TextExtractor
	contacts   *ContactExtractor
	skills     *nlp.SkillExtractor
}

// NewParser creates the default implementation.
func NewParser(opts ParserOptions) ParserUseCase {
	extractors := opts.Extractors
	if extractors == nil {
		extractors = DefaultExtractors()
	}
	return &parser{
		strict:     opts.Strict,
		extractors: extractors,
		contacts:   NewContactExtractor(opts.Names),
		skills:     nlp.NewSkillExtractor(opts.SkillMode),
	}
}

func (p *parser) ParseFile(ctx context.Context, path string) (ParsedResume, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return ParsedResume{}, err
	}
	ex, ok := p.extractors[format]
	if !ok {
		return ParsedResume{}, ErrUnsupportedFormat
	}
	if err := ctx.Err(); err != nil {
		return ParsedResume{}, err
	}

	res := ex.Extract(path)
	if !res.OK() {
		if p.strict {
			return ParsedResume{}, &ExtractionError{Path: path, Err: res.Err}
		}
		log.Printf("resume: text extraction failed, continuing with empty text: %v", res.Err)
		res.Text = ""
	}
	return p.ParseText(res.Text), nil
}

func (p *parser) ParseText(text string) ParsedResume {
	return ParsedResume{
		Contact:    p.contacts.Extract(text),
		Skills:     p.skills.Extract(text),
		Education:  ExtractEducation(text),
		Experience: ExtractExperience(text),
		RawText:    text,
	}
}
