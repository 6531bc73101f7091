package main

import "testing"

func TestPickAction(t *testing.T) {
	cases := []struct {
		name     string
		applyID  string
		top      int
		rejectID string
		list     bool
		stats    bool
		want     action
	}{
		{name: "no flags defaults to list", want: actionList},
		{name: "explicit list", list: true, want: actionList},
		{name: "list beats stats", list: true, stats: true, want: actionList},
		{name: "stats", stats: true, want: actionStats},
		{name: "apply one", applyID: "job-1", want: actionApplyOne},
		{name: "apply top", top: 3, want: actionApplyTop},
		{name: "reject", rejectID: "job-1", want: actionReject},
		{name: "apply beats list", applyID: "job-1", list: true, want: actionApplyOne},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pickAction(tc.applyID, tc.top, tc.rejectID, tc.list, tc.stats)
			if got != tc.want {
				t.Fatalf("pickAction = %d, want %d", got, tc.want)
			}
		})
	}
}
