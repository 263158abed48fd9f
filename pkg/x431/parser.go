/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parser.go
Description: Parser orchestration for LAUNCH X431 diagnostic log files. Sequences
channel count extraction, point value table construction, header resolution, and
data record decoding into the final (headers, rows) result.
*/

package x431

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Result holds the decoded output of a single X431 file
type Result struct {
	Headers      []string        // channel_count + 1 column headers
	Rows         [][]string      // data rows, each channel_count + 1 cells
	ChannelCount int             // decoded channel count
	PointValues  PointValueTable // the string table the indices resolved into
}

// Parser decodes one X431 file buffer. Each parse is independent and fully
// synchronous; batch callers may run one parser per file concurrently.
type Parser struct {
	reader *Reader
	policy HeaderPolicy
	logger *logrus.Logger
}

// NewParser creates a parser over a fully-loaded file buffer. A nil policy
// defaults to verbose output.
func NewParser(data []byte, policy HeaderPolicy) *Parser {
	if policy == nil {
		policy = NewVerbosePolicy()
	}
	return &Parser{
		reader: NewReader(data),
		policy: policy,
	}
}

// SetLogger attaches a logger for debug-level decode tracing
func (p *Parser) SetLogger(logger *logrus.Logger) {
	p.logger = logger
}

// Parse runs the full decode sequence and returns headers and data rows.
// Only structural problems (reads outside the buffer, zero channels) return
// an error; unresolved indices and truncated rows degrade to placeholders.
func (p *Parser) Parse() (*Result, error) {
	channels, err := channelCount(p.reader)
	if err != nil {
		return nil, fmt.Errorf("failed to extract channel count: %w", err)
	}

	table, err := extractPointValues(p.reader)
	if err != nil {
		return nil, fmt.Errorf("failed to extract point values: %w", err)
	}

	descriptors, err := extractChannels(p.reader, table, channels)
	if err != nil {
		return nil, fmt.Errorf("failed to extract column headers: %w", err)
	}
	headers := buildHeaders(descriptors, p.policy)

	rows, err := extractRows(p.reader, table, channels)
	if err != nil {
		return nil, fmt.Errorf("failed to extract data rows: %w", err)
	}

	if p.logger != nil {
		p.logger.WithFields(logrus.Fields{
			"channels":     channels,
			"point_values": len(table),
			"rows":         len(rows),
			"policy":       p.policy.Name(),
		}).Debug("X431 decode complete")
	}

	return &Result{
		Headers:      headers,
		Rows:         rows,
		ChannelCount: channels,
		PointValues:  table,
	}, nil
}

// ParseFile loads a file from disk and decodes it
func ParseFile(path string, policy HeaderPolicy) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return NewParser(data, policy).Parse()
}
