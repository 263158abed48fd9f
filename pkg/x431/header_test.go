/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: header_test.go
Description: Tests for header policies. Covers verbose and clean formatting rules,
abbreviation normalization, unit suppression, and policy selection by name.
*/

package x431

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVerbosePolicyFormatting covers the numbered name/unit format
func TestVerbosePolicyFormatting(t *testing.T) {
	policy := NewVerbosePolicy()

	assert.Equal(t, "Num", policy.OrdinalLabel())

	withUnit := ChannelDescriptor{Number: 1, Name: "Speed", NameResolved: true, Unit: "km/h", UnitResolved: true}
	assert.Equal(t, "1. Speed (km/h)", policy.FormatHeader(withUnit))

	noUnit := ChannelDescriptor{Number: 2, Name: "RPM", NameResolved: true}
	assert.Equal(t, "2. RPM", policy.FormatHeader(noUnit))

	// A secondary index that resolves to an empty table entry keeps its
	// parentheses; only an unresolved index suppresses them
	emptyUnit := ChannelDescriptor{Number: 1, Name: "Speed", NameResolved: true, Unit: "", UnitResolved: true}
	assert.Equal(t, "1. Speed ()", policy.FormatHeader(emptyUnit))

	unresolved := ChannelDescriptor{Number: 3, Name: UnknownName}
	assert.Equal(t, "3. Unknown", policy.FormatHeader(unresolved))
}

// TestCleanPolicyFormatting covers normalization and unit suppression
func TestCleanPolicyFormatting(t *testing.T) {
	policy := NewCleanPolicy()

	assert.Equal(t, "Row", policy.OrdinalLabel())

	tests := []struct {
		name string
		ch   ChannelDescriptor
		want string
	}{
		{
			name: "bank sensor abbreviation expands",
			ch:   ChannelDescriptor{Number: 1, Name: "O2 Sensor B1S1", NameResolved: true, Unit: "V", UnitResolved: true},
			want: "O2 Sensor (Bank1 Sensor1) [V]",
		},
		{
			name: "second bank expands",
			ch:   ChannelDescriptor{Number: 1, Name: "O2 Sensor B2S1", NameResolved: true},
			want: "O2 Sensor (Bank2 Sensor1)",
		},
		{
			name: "air fuel and hash expand",
			ch:   ChannelDescriptor{Number: 2, Name: "A/F Correction #1", NameResolved: true},
			want: "Air/Fuel Correction Count1",
		},
		{
			name: "catalyst token expands",
			ch:   ChannelDescriptor{Number: 3, Name: "Cat OT MF F/C Active", NameResolved: true},
			want: "Catalyst Misfire Active",
		},
		{
			name: "unit identical to name is dropped",
			ch:   ChannelDescriptor{Number: 4, Name: "Status", NameResolved: true, Unit: "Status", UnitResolved: true},
			want: "Status",
		},
		{
			name: "unresolved unit is dropped",
			ch:   ChannelDescriptor{Number: 5, Name: "Load", NameResolved: true},
			want: "Load",
		},
		{
			name: "unresolved name becomes channel label",
			ch:   ChannelDescriptor{Number: 6, Name: UnknownName},
			want: "Channel_6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.FormatHeader(tt.ch))
		})
	}
}

// TestPolicyByName checks selection and the verbose fallback
func TestPolicyByName(t *testing.T) {
	assert.Equal(t, "clean", PolicyByName("clean").Name())
	assert.Equal(t, "verbose", PolicyByName("verbose").Name())
	assert.Equal(t, "verbose", PolicyByName("").Name())
	assert.Equal(t, "verbose", PolicyByName("nonsense").Name())
}
