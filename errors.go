package simplifiedsearch

import searchErrors "github.com/gcbaptista/go-simplified-search/internal/errors"

// ErrInvalidInput is matched (with errors.Is) by every argument error returned by Search.
var ErrInvalidInput = searchErrors.ErrInvalidInput
