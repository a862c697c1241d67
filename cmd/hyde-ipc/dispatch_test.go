package main

import (
	"reflect"
	"testing"
)

func TestSplitChains(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want [][]string
	}{
		{"single", []string{"workspace", "3"}, [][]string{{"workspace", "3"}}},
		{
			"two commands",
			[]string{"workspace", "3", ";", "toggle-floating"},
			[][]string{{"workspace", "3"}, {"toggle-floating"}},
		},
		{
			"empty segments dropped",
			[]string{";", "killactive", ";", ";", "exit", ";"},
			[][]string{{"killactive"}, {"exit"}},
		},
		{"only separators", []string{";", ";"}, nil},
		{"empty", nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := splitChains(tc.args)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("splitChains(%v) = %#v, want %#v", tc.args, got, tc.want)
			}
		})
	}
}
