// Package sources provides node sequences backed by external resources.
//
// Every sequence implements stream.Producer[statement.Node],
// so it can feed a stream directly or be handed to nodestream.New.
package sources

import "github.com/adamluzsi/rdfstream/internal/errorkit"

const ErrBucketNotFound errorkit.Error = "sources: bucket not found"
