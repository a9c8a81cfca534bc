package invoicegen

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyTemplate   = errors.New("template content cannot be empty")
	ErrEmptyOutputPath = errors.New("output path cannot be empty")
	ErrUnsupportedData = errors.New("unsupported data file extension")
	ErrReadData        = errors.New("failed to read data file")
	ErrParseCSV        = errors.New("failed to parse CSV data")
	ErrParseJSON       = errors.New("failed to parse JSON data")
	ErrMarkdownConvert = errors.New("markdown template conversion failed")
	ErrPDFGeneration   = errors.New("PDF generation failed")
	ErrBrowserConnect  = errors.New("failed to connect to browser")
	ErrPageCreate      = errors.New("failed to create browser page")
	ErrPageLoad        = errors.New("failed to load page")
	ErrOutputLocked    = errors.New("cannot replace existing output file")
	ErrWritePDF        = errors.New("failed to write PDF file")
)
