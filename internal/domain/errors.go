package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrJobNotFound         = errors.New("parse job not found")
	ErrResultNotFound      = errors.New("parse result not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrNoFilesProvided     = errors.New("no files provided")
	ErrBatchTooLarge       = errors.New("too many files in batch")
	ErrUploadFailed        = errors.New("file upload to storage failed")

	// ErrDocumentUnreadable is the only fatal parse outcome: the bytes could
	// not be opened as a PDF and no engine produced any text.
	ErrDocumentUnreadable = errors.New("document unreadable: not a parseable PDF")
)
