package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindowMatcher(t *testing.T) {
	cases := []struct {
		in   string
		want WindowMatcher
	}{
		{"class:kitty", WindowMatcher{Kind: MatchClass, Pattern: "kitty"}},
		{"title:Mozilla Firefox", WindowMatcher{Kind: MatchTitle, Pattern: "Mozilla Firefox"}},
		{"pid:4242", WindowMatcher{Kind: MatchPID, PID: 4242}},
		{"address:0x55aa00", WindowMatcher{Kind: MatchAddress, Address: "0x55aa00"}},
		{"kitty", WindowMatcher{Kind: MatchClass, Pattern: "kitty"}},
	}
	for _, tc := range cases {
		m, err := ParseWindowMatcher(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, m, tc.in)

		back, err := ParseWindowMatcher(m.String())
		require.NoError(t, err, tc.in)
		assert.Equal(t, m, back, "String must round-trip for %s", tc.in)
	}
}

func TestParseWindowMatcherBadPid(t *testing.T) {
	_, err := ParseWindowMatcher("pid:not-a-number")
	var invalid *InvalidPidError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "not-a-number", invalid.Value)
}

func TestParseWorkspace(t *testing.T) {
	cases := []struct {
		in   string
		want Workspace
	}{
		{"5", Workspace{Kind: WorkspaceID, ID: 5}},
		{"-3", Workspace{Kind: WorkspaceID, ID: -3}},
		{"0", Workspace{Kind: WorkspaceSpecial}},
		{"right:2", Workspace{Kind: WorkspaceRelative, Offset: 2}},
		{"left:3", Workspace{Kind: WorkspaceRelative, Offset: -3}},
		{"previous", Workspace{Kind: WorkspacePrevious}},
		{"empty", Workspace{Kind: WorkspaceEmpty}},
		{"name:work", Workspace{Kind: WorkspaceNamed, Name: "work"}},
	}
	for _, tc := range cases {
		ws, err := ParseWorkspace(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, ws, tc.in)

		back, err := ParseWorkspace(ws.String())
		require.NoError(t, err, tc.in)
		assert.Equal(t, ws, back, "String must round-trip for %s", tc.in)
	}
}

func TestParseWorkspaceRejectsGarbage(t *testing.T) {
	for _, in := range []string{"right:", "left:soon", "upstairs", "name"} {
		_, err := ParseWorkspace(in)
		var unknown *UnknownWorkspaceError
		require.ErrorAs(t, err, &unknown, in)
	}
}

func TestWorkspaceWireForms(t *testing.T) {
	cases := []struct {
		in   string
		wire string
	}{
		{"5", "5"},
		{"0", "special"},
		{"right:2", "+2"},
		{"left:3", "-3"},
		{"previous", "previous"},
		{"empty", "empty"},
		{"name:work", "name:work"},
	}
	for _, tc := range cases {
		ws, err := ParseWorkspace(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.wire, ws.wire(), tc.in)
	}
}

func TestParseCornerOrderMatchesProtocol(t *testing.T) {
	order := []string{"bottomleft", "bottomright", "topright", "topleft"}
	for i, name := range order {
		c, err := ParseCorner(name)
		require.NoError(t, err, name)
		assert.Equal(t, i, int(c), name)
	}
	_, err := ParseCorner("center")
	var unknown *UnknownCornerError
	require.ErrorAs(t, err, &unknown)
}

func TestParseMoveTarget(t *testing.T) {
	cases := []struct {
		in   string
		want MoveTarget
		wire string
	}{
		{"mon:DP-1", MoveTarget{Kind: MoveToMonitorName, Monitor: "DP-1"}, "mon:DP-1"},
		{"1", MoveTarget{Kind: MoveToMonitorID, ID: 1}, "mon:1"},
		{"current", MoveTarget{Kind: MoveToMonitorCurrent}, "mon:current"},
		{"+1", MoveTarget{Kind: MoveToMonitorRelative, Offset: 1}, "mon:+1"},
		{"-2", MoveTarget{Kind: MoveToMonitorRelative, Offset: -2}, "mon:-2"},
		{"dir:left", MoveTarget{Kind: MoveInDirection, Direction: DirLeft}, "l"},
	}
	for _, tc := range cases {
		target, err := ParseMoveTarget(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, target, tc.in)
		assert.Equal(t, tc.wire, target.wire(), tc.in)

		back, err := ParseMoveTarget(target.String())
		require.NoError(t, err, tc.in)
		assert.Equal(t, target, back, "String must round-trip for %s", tc.in)
	}
}
