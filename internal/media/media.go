// Package media recognizes uploaded vehicle pictures by their leading bytes
// and cleans SVG documents before they are served back to browsers.
package media

import (
	"bytes"
	"errors"
	"net/textproto"
	"regexp"
	"strings"
)

type Kind string

const (
	KindJPEG Kind = "jpeg"
	KindPNG  Kind = "png"
	KindGIF  Kind = "gif"
	KindWEBP Kind = "webp"
	KindAVIF Kind = "avif"
	KindSVG  Kind = "svg"
)

// SniffLen is the number of leading bytes Sniff looks at.
const SniffLen = 512

var (
	ErrUnknownType = errors.New("unknown media type")
	ErrNotSVG      = errors.New("not an svg document")
)

type Format struct {
	Kind Kind
	MIME string
}

type signature struct {
	format Format
	match  func(head []byte) bool
}

var signatures = []signature{
	{Format{KindJPEG, "image/jpeg"}, func(h []byte) bool {
		return len(h) > 3 && h[0] == 0xff && h[1] == 0xd8 && h[2] == 0xff
	}},
	{Format{KindPNG, "image/png"}, func(h []byte) bool {
		return bytes.HasPrefix(h, []byte("\x89PNG\r\n\x1a\n"))
	}},
	{Format{KindGIF, "image/gif"}, func(h []byte) bool {
		return bytes.HasPrefix(h, []byte("GIF87a")) || bytes.HasPrefix(h, []byte("GIF89a"))
	}},
	{Format{KindWEBP, "image/webp"}, func(h []byte) bool {
		return len(h) >= 12 && bytes.Equal(h[:4], []byte("RIFF")) && bytes.Equal(h[8:12], []byte("WEBP"))
	}},
	{Format{KindAVIF, "image/avif"}, func(h []byte) bool {
		return len(h) >= 12 && bytes.Equal(h[4:8], []byte("ftyp")) && bytes.Contains(h[8:], []byte("avif"))
	}},
	{Format{KindSVG, "image/svg+xml"}, func(h []byte) bool {
		trimmed := bytes.TrimSpace(h)
		return bytes.HasPrefix(trimmed, []byte("<svg")) || bytes.HasPrefix(trimmed, []byte("<?xml"))
	}},
}

// Sniff identifies the image format from at most SniffLen leading bytes.
func Sniff(data []byte) (Format, error) {
	head := data[:min(len(data), SniffLen)]
	for _, sig := range signatures {
		if sig.match(head) {
			return sig.format, nil
		}
	}
	return Format{}, ErrUnknownType
}

// DeclaredType extracts the media type from a multipart part header, without
// parameters. Generic binary types make no claim and yield "".
func DeclaredType(header textproto.MIMEHeader) string {
	ct := header.Get("Content-Type")
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = ct[:idx]
	}
	ct = strings.ToLower(strings.TrimSpace(ct))
	if ct == "application/octet-stream" {
		return ""
	}
	return ct
}

var (
	scriptElement  = regexp.MustCompile(`(?is)<\s*script[\s>].*?<\s*/\s*script\s*>`)
	foreignObject  = regexp.MustCompile(`(?is)<\s*foreignObject[\s>].*?<\s*/\s*foreignObject\s*>`)
	eventAttribute = regexp.MustCompile(`(?is)\son[a-z]+\s*=\s*("[^"]*"|'[^']*')`)
	scriptHref     = regexp.MustCompile(`(?is)\s(xlink:)?href\s*=\s*("\s*javascript:[^"]*"|'\s*javascript:[^']*')`)
)

// SanitizeSVG strips scripts, embedded HTML, event handlers and javascript: links.
func SanitizeSVG(input []byte) ([]byte, error) {
	if !bytes.Contains(bytes.ToLower(input), []byte("<svg")) {
		return nil, ErrNotSVG
	}

	clean := scriptElement.ReplaceAll(input, nil)
	clean = foreignObject.ReplaceAll(clean, nil)
	clean = eventAttribute.ReplaceAll(clean, nil)
	clean = scriptHref.ReplaceAll(clean, nil)
	return clean, nil
}
