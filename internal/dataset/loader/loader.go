package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-quizgen/pkg/dataset"
)

// Loader implements dataset.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level quizgen package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ dataset.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options dataset.LoaderOptions) dataset.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src dataset.Source) (dataset.Document, error) {
	if src == nil {
		return dataset.Document{}, errors.New("dataset loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case dataset.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case dataset.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case dataset.SourceKindURL:
		if !l.allowHTTP {
			return dataset.Document{}, errors.New("dataset loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("dataset loader: unsupported source kind")
	}
	if err != nil {
		return dataset.Document{}, err
	}

	return dataset.NewDocument(src, data)
}
