package services

import "errors"

// ErrUnsupportedContentType is returned before any extraction or model call
// when an upload is neither PDF nor plain text.
var ErrUnsupportedContentType = errors.New("unsupported resume file type, please upload a PDF or plain text resume")
