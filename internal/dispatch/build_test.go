package dispatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"exec", []string{"notify-send", "hello"}},
		{"kill-active-window", nil},
		{"toggle-floating", nil},
		{"toggle-floating", []string{"class:kitty"}},
		{"toggle-split", nil},
		{"toggle-opaque", nil},
		{"move-cursor-to-corner", []string{"topleft"}},
		{"move-cursor", []string{"100", "-200"}},
		{"toggle-fullscreen", []string{"real"}},
		{"toggle-fullscreen", []string{"maximize"}},
		{"move-to-workspace", []string{"3"}},
		{"move-to-workspace-silent", []string{"name:mail", "title:Thunderbird"}},
		{"workspace", []string{"right:2"}},
		{"cycle-window", []string{"previous"}},
		{"move-focus", []string{"left"}},
		{"swap-window", []string{"up"}},
		{"focus-window", []string{"address:0x55aa"}},
		{"focus-window", []string{"pid:4242"}},
		{"move-window", []string{"mon:DP-1"}},
		{"move-window", []string{"dir:right"}},
		{"toggle-fake-fullscreen", nil},
		{"toggle-pseudo", nil},
		{"toggle-pin", nil},
		{"center-window", nil},
		{"bring-active-to-top", nil},
		{"focus-urgent-or-last", nil},
		{"focus-current-or-last", nil},
		{"force-renderer-reload", nil},
		{"exit", nil},
		{"resize-active", []string{"exact", "800", "600"}},
		{"resize-active", []string{"-10", "20"}},
		{"resize-window-pixel", []string{"exact", "800", "600", "class:mpv"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := Build(tc.name, tc.args)
			require.NoError(t, err)
			again, err := Build(cmd.Name(), cmd.Args())
			require.NoError(t, err)
			assert.Equal(t, cmd, again, "canonical form must rebuild the same command")
		})
	}
}

func TestBuildNameNormalization(t *testing.T) {
	for _, name := range []string{"killactivewindow", "kill-active-window", "kill_active_window", "Kill-Active-Window"} {
		cmd, err := Build(name, nil)
		require.NoError(t, err, name)
		assert.Equal(t, []string{"killactive"}, cmd.Words())
	}
}

func TestBuildUnknownDispatcher(t *testing.T) {
	_, err := Build("warp-drive", nil)
	var unknown *UnknownDispatcherError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "warp-drive", unknown.Name)
}

func TestBuildWireWords(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		words []string
	}{
		{"exec", []string{"notify-send", "hi there"}, []string{"exec", "notify-send hi there"}},
		{"toggle-fullscreen", nil, []string{"fullscreen"}},
		{"toggle-fullscreen", []string{"real"}, []string{"fullscreen", "0"}},
		{"toggle-fullscreen", []string{"maximize"}, []string{"fullscreen", "1"}},
		{"move-cursor-to-corner", []string{"bottomleft"}, []string{"movecursortocorner", "0"}},
		{"move-cursor-to-corner", []string{"TopLeft"}, []string{"movecursortocorner", "3"}},
		{"workspace", []string{"right:2"}, []string{"workspace", "+2"}},
		{"workspace", []string{"left:3"}, []string{"workspace", "-3"}},
		{"workspace", []string{"0"}, []string{"workspace", "special"}},
		{"move-focus", []string{"left"}, []string{"movefocus", "l"}},
		{"cycle-window", nil, []string{"cyclenext"}},
		{"cycle-window", []string{"previous"}, []string{"cyclenext", "prev"}},
		{"move-window", []string{"current"}, []string{"movewindow", "mon:current"}},
		{"move-window", []string{"+1"}, []string{"movewindow", "mon:+1"}},
		{"move-window", []string{"dir:up"}, []string{"movewindow", "u"}},
		{"move-to-workspace-silent", []string{"5", "class:mpv"}, []string{"movetoworkspacesilent", "5,class:mpv"}},
		{"resize-window-pixel", []string{"exact", "800", "600", "class:mpv"}, []string{"resizewindowpixel", "exact 800 600,class:mpv"}},
		{"resize-active", []string{"delta", "-10", "20"}, []string{"resizeactive", "-10 20"}},
	}
	for _, tc := range cases {
		cmd, err := Build(tc.name, tc.args)
		require.NoError(t, err, "%s %v", tc.name, tc.args)
		assert.Equal(t, tc.words, cmd.Words(), "%s %v", tc.name, tc.args)
	}
}

func TestBuildResizeActiveScenarios(t *testing.T) {
	t.Run("exact dimensions", func(t *testing.T) {
		cmd, err := Build("resize-active", []string{"exact", "1024", "768"})
		require.NoError(t, err)
		resize, ok := cmd.(ResizeActive)
		require.True(t, ok)
		assert.Equal(t, ResizeMode{Exact: true, W: 1024, H: 768}, resize.Mode)
	})
	t.Run("exact rejects negative dimensions", func(t *testing.T) {
		_, err := Build("resize-active", []string{"exact", "-1024", "768"})
		var invalid *InvalidArgumentError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, 1, invalid.Index)
	})
	t.Run("bare delta pair", func(t *testing.T) {
		cmd, err := Build("resize-active", []string{"-10", "20"})
		require.NoError(t, err)
		assert.Equal(t, ResizeActive{Mode: ResizeMode{DX: -10, DY: 20}}, cmd)
	})
	t.Run("delta keyword", func(t *testing.T) {
		cmd, err := Build("resize-active", []string{"delta", "-10", "20"})
		require.NoError(t, err)
		assert.Equal(t, ResizeActive{Mode: ResizeMode{DX: -10, DY: 20}}, cmd)
	})
	t.Run("missing parameters", func(t *testing.T) {
		_, err := Build("resize-active", nil)
		var missing *MissingArgumentError
		require.ErrorAs(t, err, &missing)
	})
	t.Run("trailing junk rejected", func(t *testing.T) {
		_, err := Build("resize-active", []string{"exact", "10", "20", "30"})
		var invalid *InvalidArgumentError
		require.ErrorAs(t, err, &invalid)
	})
}

func TestBuildArgumentValidation(t *testing.T) {
	asMissing := func(err error) bool { var e *MissingArgumentError; return errors.As(err, &e) }
	asInvalid := func(err error) bool { var e *InvalidArgumentError; return errors.As(err, &e) }
	cases := []struct {
		name string
		args []string
		as   func(error) bool
	}{
		{"exec", nil, asMissing},
		{"move-cursor", []string{"10"}, asMissing},
		{"move-cursor", []string{"ten", "20"}, asInvalid},
		{"move-cursor-to-corner", []string{"middle"}, func(err error) bool { var e *UnknownCornerError; return errors.As(err, &e) }},
		{"toggle-fullscreen", []string{"huge"}, func(err error) bool { var e *UnknownFullscreenTypeError; return errors.As(err, &e) }},
		{"move-focus", []string{"sideways"}, func(err error) bool { var e *UnknownDirectionError; return errors.As(err, &e) }},
		{"cycle-window", []string{"backwards"}, func(err error) bool { var e *UnknownCycleDirectionError; return errors.As(err, &e) }},
		{"workspace", []string{"right:soon"}, func(err error) bool { var e *UnknownWorkspaceError; return errors.As(err, &e) }},
		{"move-window", []string{"elsewhere"}, func(err error) bool { var e *UnknownMoveTargetError; return errors.As(err, &e) }},
		{"focus-window", []string{"pid:abc"}, func(err error) bool { var e *InvalidPidError; return errors.As(err, &e) }},
		{"toggle-pin", []string{"extra"}, asInvalid},
		{"resize-window-pixel", []string{"exact", "10", "20"}, asMissing},
	}
	for _, tc := range cases {
		_, err := Build(tc.name, tc.args)
		require.Error(t, err, "%s %v", tc.name, tc.args)
		assert.True(t, tc.as(err), "%s %v: got %T", tc.name, tc.args, err)
	}
}

func TestCycleWindowEmptyStringDefaultsNext(t *testing.T) {
	cmd, err := Build("cycle-window", []string{""})
	require.NoError(t, err)
	assert.Equal(t, CycleWindow{Direction: CycleNext}, cmd)
}
