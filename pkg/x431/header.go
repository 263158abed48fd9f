/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: header.go
Description: Column header extraction for X431 logs. Decodes the two per-channel
index passes into neutral channel descriptors, then renders them through a
pluggable header policy (verbose or clean/Excel-friendly formatting).
*/

package x431

import (
	"fmt"
	"strings"
)

// ChannelDescriptor is the neutral per-channel result of the two header index
// passes. Formatting is deferred to a HeaderPolicy so the decode pipeline
// exists only once.
type ChannelDescriptor struct {
	Number       int    // 1-based channel number
	Name         string // primary parameter name, UnknownName when unresolved
	NameResolved bool
	Unit         string // secondary label (unit/qualifier), empty when unresolved
	UnitResolved bool
}

// extractChannels decodes both header index passes into channel descriptors.
// Each pass covers count slots of slotSize bytes starting at offHeaderIndices;
// only the low 16 bits of a slot carry the index.
func extractChannels(r *Reader, table PointValueTable, count int) ([]ChannelDescriptor, error) {
	channels := make([]ChannelDescriptor, count)
	offset := offHeaderIndices

	for i := 0; i < count; i++ {
		index, err := r.Uint16("header names", offset)
		if err != nil {
			return nil, err
		}
		offset += slotSize

		channels[i].Number = i + 1
		if name, ok := table.Resolve(index); ok {
			channels[i].Name = name
			channels[i].NameResolved = true
		} else {
			channels[i].Name = UnknownName
		}
	}

	for i := 0; i < count; i++ {
		index, err := r.Uint16("header units", offset)
		if err != nil {
			return nil, err
		}
		offset += slotSize

		if unit, ok := table.Resolve(index); ok {
			channels[i].Unit = unit
			channels[i].UnitResolved = true
		}
	}

	return channels, nil
}

// HeaderPolicy renders channel descriptors into column header strings.
// Policies own the synthetic leading label for the row-ordinal column.
type HeaderPolicy interface {
	// Name identifies the policy (used for output path selection and logging)
	Name() string

	// OrdinalLabel is the header of the synthetic leading column
	OrdinalLabel() string

	// FormatHeader renders one channel descriptor into a header cell
	FormatHeader(ch ChannelDescriptor) string
}

// buildHeaders renders the full header row: the ordinal label followed by
// one formatted cell per channel.
func buildHeaders(channels []ChannelDescriptor, policy HeaderPolicy) []string {
	headers := make([]string, 0, len(channels)+1)
	headers = append(headers, policy.OrdinalLabel())
	for _, ch := range channels {
		headers = append(headers, policy.FormatHeader(ch))
	}
	return headers
}

// VerbosePolicy produces numbered headers with the unit in parentheses,
// matching the classic converter output.
type VerbosePolicy struct{}

// NewVerbosePolicy creates the verbose header policy
func NewVerbosePolicy() *VerbosePolicy {
	return &VerbosePolicy{}
}

// Name identifies the policy
func (p *VerbosePolicy) Name() string { return "verbose" }

// OrdinalLabel returns the leading column label
func (p *VerbosePolicy) OrdinalLabel() string { return "Num" }

// FormatHeader renders "{n}. {name}" and appends " ({unit})" only when the
// unit index actually resolved. An unresolved name keeps the Unknown
// placeholder so downstream tooling can rely on it verbatim.
func (p *VerbosePolicy) FormatHeader(ch ChannelDescriptor) string {
	header := fmt.Sprintf("%d. %s", ch.Number, ch.Name)
	if ch.UnitResolved {
		header = fmt.Sprintf("%s (%s)", header, ch.Unit)
	}
	return header
}

// cleanReplacements expands abbreviation tokens for Excel-friendly headers.
// Order matters: longer tokens must be replaced before their substrings.
var cleanReplacements = []struct {
	abbrev   string
	expanded string
}{
	{"B1S1", "(Bank1 Sensor1)"},
	{"B2S1", "(Bank2 Sensor1)"},
	{"A/F", "Air/Fuel"},
	{"A/C", "AC"},
	{"Cat OT MF F/C", "Catalyst Misfire"},
	{"#", "Count"},
}

// CleanPolicy produces simplified, Excel-friendly headers: abbreviation
// tokens are expanded and the unit is appended in brackets only when it adds
// information.
type CleanPolicy struct{}

// NewCleanPolicy creates the clean header policy
func NewCleanPolicy() *CleanPolicy {
	return &CleanPolicy{}
}

// Name identifies the policy
func (p *CleanPolicy) Name() string { return "clean" }

// OrdinalLabel returns the leading column label
func (p *CleanPolicy) OrdinalLabel() string { return "Row" }

// FormatHeader renders "{name} [{unit}]" with normalized tokens. The unit is
// dropped when empty, identical to the name, or unresolved. Channels whose
// primary index never resolved are labeled Channel_N instead of Unknown.
func (p *CleanPolicy) FormatHeader(ch ChannelDescriptor) string {
	var name string
	if ch.NameResolved {
		name = normalizeParameter(ch.Name)
	} else {
		name = fmt.Sprintf("Channel_%d", ch.Number)
	}

	unit := ""
	if ch.UnitResolved {
		unit = ch.Unit
	}
	unitClean := normalizeParameter(unit)

	if unitClean != "" && unitClean != name && unitClean != UnknownName {
		return fmt.Sprintf("%s [%s]", name, unitClean)
	}
	return name
}

// normalizeParameter applies the abbreviation expansion map to a raw
// parameter name. Empty input normalizes to the Unknown placeholder.
func normalizeParameter(name string) string {
	if name == "" {
		return UnknownName
	}
	name = strings.TrimSpace(name)
	for _, rep := range cleanReplacements {
		name = strings.ReplaceAll(name, rep.abbrev, rep.expanded)
	}
	return name
}

// PolicyByName returns the header policy for a configuration value.
// Unrecognized names fall back to verbose.
func PolicyByName(name string) HeaderPolicy {
	if name == "clean" {
		return NewCleanPolicy()
	}
	return NewVerbosePolicy()
}
