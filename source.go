package vselect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/cybergodev/vselect/internal"
)

// OptionsKey is the key holding the option list when a document is a table
const OptionsKey = "options"

// maxSourceSize bounds the bytes read from any option source
const maxSourceSize = 16 * 1024 * 1024

// OptionSource supplies the items of a Select
type OptionSource interface {
	Load(ctx context.Context) ([]any, error)
}

// StaticSource serves a fixed list
type StaticSource []any

// Load returns a copy of the list
func (s StaticSource) Load(context.Context) ([]any, error) {
	return append([]any(nil), s...), nil
}

// HTTPSource fetches a JSON document with a GET request
type HTTPSource struct {
	URL    string
	Client *http.Client // http.DefaultClient when nil
}

// Load fetches and decodes the document. Non-2xx responses fail with a
// *StatusError matching ErrFetchFailed.
func (s HTTPSource) Load(ctx context.Context) ([]any, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, newOperationError("fetch_options", err.Error(), ErrFetchFailed)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, newOperationError("fetch_options", err.Error(), fmt.Errorf("%w: %w", ErrFetchFailed, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: s.URL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceSize+1))
	if err != nil {
		return nil, newOperationError("fetch_options", err.Error(), fmt.Errorf("%w: %w", ErrFetchFailed, err))
	}
	if len(data) > maxSourceSize {
		return nil, newOperationError("fetch_options",
			fmt.Sprintf("%s: body exceeds %d bytes", s.URL, maxSourceSize), ErrSourceTooLarge)
	}
	return DecodeOptions(data, "json")
}

// FileSource reads options from a .json, .yaml, .yml or .toml file
type FileSource struct {
	Path string
}

// Load reads and decodes the file
func (s FileSource) Load(ctx context.Context) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, newOperationError("load_options", err.Error(), err)
	}
	if len(data) > maxSourceSize {
		return nil, newOperationError("load_options",
			fmt.Sprintf("%s exceeds %d bytes", s.Path, maxSourceSize), ErrSourceTooLarge)
	}
	return DecodeOptions(data, filepath.Ext(s.Path))
}

// DecodeOptions decodes a document holding either a list of options or a
// table with the list under OptionsKey. TOML documents are always tables.
// Decoded trees are normalized to map[string]any and []any.
func DecodeOptions(data []byte, format string) ([]any, error) {
	var doc any

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, newOperationError("decode_options", fmt.Sprintf("json: %v", err), ErrUnsupportedFormat)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, newOperationError("decode_options", fmt.Sprintf("yaml: %v", err), ErrUnsupportedFormat)
		}
	case "toml":
		table := map[string]any{}
		if _, err := toml.Decode(string(data), &table); err != nil {
			return nil, newOperationError("decode_options", fmt.Sprintf("toml: %v", err), ErrUnsupportedFormat)
		}
		doc = table
	default:
		return nil, newOperationError("decode_options",
			fmt.Sprintf("unsupported options format %q", format), ErrUnsupportedFormat)
	}

	return optionList(internal.NormalizeTree(doc))
}

func optionList(doc any) ([]any, error) {
	if list, ok := doc.([]any); ok {
		return list, nil
	}
	if doc == nil {
		return []any{}, nil
	}

	value, kind, err := Lookup(OptionsKey, doc)
	if err != nil {
		return nil, err
	}
	if kind == KindMissing {
		return nil, newPathError("decode_options", OptionsKey, "document has no option list", ErrInvalidPath)
	}
	list, ok := value.([]any)
	if !ok {
		return nil, newPathError("decode_options", OptionsKey,
			fmt.Sprintf("expected a list, got %T", value), ErrTypeMismatch)
	}
	return list, nil
}
