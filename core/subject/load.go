package subject

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// StdinSource selects standard input.
	StdinSource = "-"

	// DefaultFetchTimeout bounds a URL fetch.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultMaxBytes caps how much of a subject is read.
	DefaultMaxBytes = 1 << 20

	defaultUserAgent = "essaygrader/1.0"
	maxRedirects     = 10
)

// ErrTooLarge is returned when a subject exceeds the loader's byte limit.
var ErrTooLarge = errors.New("subject exceeds size limit")

// Loader reads subjects from files, stdin or URLs. The zero value is usable.
type Loader struct {
	// Stdin is read for StdinSource. Defaults to os.Stdin.
	Stdin io.Reader
	// HTTPClient fetches URLs. Defaults to a client with dial, TLS and
	// header timeouts and a redirect limit.
	HTTPClient *http.Client
	// FetchTimeout bounds a URL fetch. Defaults to DefaultFetchTimeout.
	FetchTimeout time.Duration
	// MaxBytes caps the subject size. Defaults to DefaultMaxBytes.
	MaxBytes int64
}

// Load reads source with a zero Loader.
func Load(ctx context.Context, source string) (string, error) {
	return (&Loader{}).Load(ctx, source)
}

// Load reads source and normalizes it. Files named *.html or *.htm and URLs
// served as text/html are always converted from HTML.
func (l *Loader) Load(ctx context.Context, source string) (string, error) {
	source = strings.TrimSpace(source)

	switch {
	case source == "":
		return "", fmt.Errorf("load subject: %w", ErrEmptySubject)

	case source == StdinSource:
		stdin := l.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := l.readLimited(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return normalizeLoaded(string(data), false, "stdin")

	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		return l.fetch(ctx, source)

	default:
		f, err := os.Open(source) // #nosec G304 -- path is chosen by the operator
		if err != nil {
			return "", fmt.Errorf("open subject: %w", err)
		}
		defer f.Close()

		data, err := l.readLimited(f)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", source, err)
		}
		ext := strings.ToLower(filepath.Ext(source))
		return normalizeLoaded(string(data), ext == ".html" || ext == ".htm", source)
	}
}

func (l *Loader) fetch(ctx context.Context, url string) (string, error) {
	timeout := l.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	client := l.HTTPClient
	if client == nil {
		client = newHTTPClient(timeout)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	data, err := l.readLimited(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	return normalizeLoaded(string(data), mediaType == "text/html", url)
}

func (l *Loader) readLimited(r io.Reader) ([]byte, error) {
	limit := l.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w of %d bytes", ErrTooLarge, limit)
	}
	return data, nil
}

func normalizeLoaded(raw string, isHTML bool, origin string) (string, error) {
	var (
		text string
		err  error
	)
	if isHTML {
		text, err = FromHTML(raw)
	} else {
		text, err = Normalize(raw)
	}
	if err != nil {
		return "", fmt.Errorf("load %s: %w", origin, err)
	}
	return text, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			IdleConnTimeout:       90 * time.Second,
			ForceAttemptHTTP2:     true,
		},
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("too many redirects (>%d)", maxRedirects)
			}
			return nil
		},
	}
}
