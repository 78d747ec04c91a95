package questions

import "errors"

// ErrNoResumeDocuments indicates the user has no documents classified as a
// résumé, so interview questions cannot be generated.
var ErrNoResumeDocuments = errors.New("no resume documents found")
