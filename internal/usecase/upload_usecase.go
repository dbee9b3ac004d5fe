package usecase

import (
	"context"
	"errors"
	"strings"

	"resume-forge/internal/domain/resume"
	"resume-forge/internal/extractor"
	"resume-forge/internal/parser"
)

var (
	ErrUnsupportedFileFormat = errors.New("unsupported file format, upload pdf, docx or txt")
	ErrUnreadableFile        = errors.New("file could not be read")
	ErrScannedDocument       = errors.New("not enough readable text, the file may be a scanned document")
)

type UploadInput struct {
	Data        []byte
	ContentType string
	Filename    string
}

type UploadResult struct {
	Text   string          `json:"text"`
	Resume resume.Document `json:"resume"`
}

type UploadUsecase interface {
	ExtractResume(ctx context.Context, in UploadInput) (UploadResult, error)
}

type Upload struct{}

func NewUploadUsecase() *Upload {
	return &Upload{}
}

func (u *Upload) ExtractResume(_ context.Context, in UploadInput) (UploadResult, error) {
	if len(in.Data) == 0 {
		return UploadResult{}, ErrUnreadableFile
	}

	text, err := extractor.Extract(in.Data, in.ContentType, in.Filename)
	if err != nil {
		switch {
		case errors.Is(err, extractor.ErrUnsupportedFormat):
			return UploadResult{}, ErrUnsupportedFileFormat
		case errors.Is(err, extractor.ErrInsufficientText):
			return UploadResult{}, ErrScannedDocument
		default:
			return UploadResult{}, ErrUnreadableFile
		}
	}

	text = strings.TrimSpace(text)
	return UploadResult{
		Text:   text,
		Resume: parser.Parse(text),
	}, nil
}
