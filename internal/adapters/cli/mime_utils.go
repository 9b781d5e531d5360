package cli

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ErrNoTextContent is returned when a message has no text/plain part
var ErrNoTextContent = errors.New("no text content found in message")

// maxMultipartDepth bounds recursion into nested multipart bodies
const maxMultipartDepth = 5

type headerGetter interface {
	Get(key string) string
}

// extractTextFromMessage extracts the text content from an email message.
// For multipart messages the text/plain parts are collected, nested multiparts included.
// A single-part message of any other text type is returned with its markup intact.
func extractTextFromMessage(msg *mail.Message) (string, error) {
	return extractText(msg.Header, msg.Body, 0)
}

func extractText(header headerGetter, body io.Reader, depth int) (string, error) {
	mediaType, params, err := mime.ParseMediaType(header.Get("Content-Type"))
	if err != nil {
		// Missing or unparsable Content-Type means plain text per RFC 2045
		mediaType = "text/plain"
		params = map[string]string{}
	}

	if !strings.HasPrefix(mediaType, "multipart/") {
		// A single-part message is used as is for any text type, inside
		// a multipart only text/plain parts are kept
		if !strings.HasPrefix(mediaType, "text/plain") && (depth > 0 || !strings.HasPrefix(mediaType, "text/")) {
			return "", ErrNoTextContent
		}
		return decodePart(header, params["charset"], body)
	}

	boundary, ok := params["boundary"]
	if !ok || depth >= maxMultipartDepth {
		return "", ErrNoTextContent
	}

	mr := multipart.NewReader(body, boundary)
	var textContent bytes.Buffer
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Return what was collected before the broken part
			if textContent.Len() > 0 {
				return textContent.String(), nil
			}
			return "", fmt.Errorf("failed to read multipart message: %w", err)
		}

		text, err := extractText(part.Header, part, depth+1)
		if err != nil {
			continue
		}
		textContent.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			textContent.WriteString("\n")
		}
	}

	if textContent.Len() == 0 {
		return "", ErrNoTextContent
	}
	return textContent.String(), nil
}

// decodePart undoes the transfer encoding and converts the charset to UTF-8
func decodePart(header headerGetter, charset string, body io.Reader) (string, error) {
	switch strings.ToLower(strings.TrimSpace(header.Get("Content-Transfer-Encoding"))) {
	case "quoted-printable":
		body = quotedprintable.NewReader(body)
	case "base64":
		body = base64.NewDecoder(base64.StdEncoding, body)
	}

	charset = strings.ToLower(strings.TrimSpace(charset))
	if charset != "" && charset != "utf-8" && charset != "us-ascii" {
		if enc, err := htmlindex.Get(charset); err == nil {
			body = transform.NewReader(body, enc.NewDecoder())
		}
	}

	text, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("failed to decode message part: %w", err)
	}
	return string(text), nil
}
