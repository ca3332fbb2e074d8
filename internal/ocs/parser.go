package ocs

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/Norgate-AV/ocsview/internal/logger"
)

var (
	sectionPattern = regexp.MustCompile(`^\[(.+)\]$`)
	valuePattern   = regexp.MustCompile(`^([^=]+)=([a-z]{2}):(.*)$`)
)

// Parser reads OCS text into a section tree. Line-level problems (unknown
// type tags, values outside any section, unparseable lines) are diagnostics,
// not errors: the offending line is logged and skipped.
type Parser struct {
	log logger.LoggerInterface
}

// NewParser creates a parser that reports diagnostics to log.
func NewParser(log logger.LoggerInterface) *Parser {
	return &Parser{log: log}
}

// Parse reads the complete document text and returns the root section.
// CRLF and LF line endings are both accepted.
func (p *Parser) Parse(text string) *Section {
	root := NewSection()

	// A value line is only meaningful while a section is active, i.e. after
	// a [...] header has been seen.
	var active *Section

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if m := sectionPattern.FindStringSubmatch(line); m != nil {
			active = p.openSection(root, m[1])
			continue
		}

		if m := valuePattern.FindStringSubmatch(line); m != nil {
			if active == nil {
				p.log.Warn("Value line outside any section",
					slog.Int("line", i+1),
					slog.String("key", m[1]),
				)
				continue
			}

			p.setValue(active, m[1], m[2], m[3], i+1)
			continue
		}

		p.log.Warn("Unparseable line", slog.Int("line", i+1), slog.String("text", line))
	}

	return root
}

// openSection walks the backslash-separated path from the root, creating
// intermediate sections as needed, and installs a fresh section at the final
// component, overwriting whatever was there.
func (p *Parser) openSection(root *Section, path string) *Section {
	parts := strings.Split(path, `\`)

	cur := root
	for _, part := range parts[:len(parts)-1] {
		child, ok := cur.Child(part)
		if !ok {
			child = NewSection()
			cur.Set(part, child)
		}
		cur = child
	}

	fresh := NewSection()
	cur.Set(parts[len(parts)-1], fresh)

	p.log.Trace("Opened section", slog.String("path", path))

	return fresh
}

// setValue interprets a key=tt:value line by its two-letter type tag.
func (p *Parser) setValue(sec *Section, key, tag, raw string, line int) {
	switch tag {
	case "dw":
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			p.log.Warn("Invalid dw value",
				slog.Int("line", line),
				slog.String("key", key),
				slog.String("value", raw),
			)
			return
		}
		sec.Set(key, Int(n))

	case "ws":
		units, ok := parseDecimalList16(raw)
		if !ok {
			p.log.Warn("Invalid ws value", slog.Int("line", line), slog.String("key", key))
			return
		}
		sec.Set(key, String(utf16.Decode(units)))

	case "bn":
		data, ok := parseDecimalBytes(raw)
		if !ok {
			p.log.Warn("Invalid bn value", slog.Int("line", line), slog.String("key", key))
			return
		}
		sec.Set(key, Bytes(data))

	default:
		p.log.Warn("Unknown type tag",
			slog.Int("line", line),
			slog.String("key", key),
			slog.String("tag", tag),
		)
	}
}

// parseDecimalList16 decodes a comma-separated list of decimal UTF-16 code
// units. An empty value is an empty list.
func parseDecimalList16(raw string) ([]uint16, bool) {
	if raw == "" {
		return nil, true
	}

	parts := strings.Split(raw, ",")
	units := make([]uint16, 0, len(parts))

	for _, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 16)
		if err != nil {
			return nil, false
		}
		units = append(units, uint16(n))
	}

	return units, true
}

// parseDecimalBytes decodes a comma-separated list of decimal byte values.
// An empty value is an empty sequence.
func parseDecimalBytes(raw string) ([]byte, bool) {
	if raw == "" {
		return nil, true
	}

	parts := strings.Split(raw, ",")
	data := make([]byte, 0, len(parts))

	for _, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, false
		}
		data = append(data, byte(n))
	}

	return data, true
}
