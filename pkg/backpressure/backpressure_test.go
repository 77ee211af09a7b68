package backpressure

import (
	"strconv"
	"testing"
	"time"
)

func Test_Backpressure(t *testing.T) {
	testCases := []struct {
		name        string
		modifyFunc  func(g *Backpressure)
		expectation func(g *Backpressure) bool
	}{
		{
			name:        "case 0: zero value lets requests through",
			modifyFunc:  func(g *Backpressure) {},
			expectation: func(g *Backpressure) bool { return g.CanProceed() },
		},
		{
			name:        "case 1: gate in the future blocks requests",
			modifyFunc:  func(g *Backpressure) { g.NotBefore(time.Now().Add(100 * time.Second)) },
			expectation: func(g *Backpressure) bool { return !g.CanProceed() },
		},
		{
			name:        "case 2: expired gate lets requests through",
			modifyFunc:  func(g *Backpressure) { g.NotBefore(time.Now().Add(-1 * time.Second)) },
			expectation: func(g *Backpressure) bool { return g.CanProceed() },
		},
		{
			name:        "case 3: RetryAfter() returns the gate",
			modifyFunc:  func(g *Backpressure) { g.NotBefore(time.Unix(100, 0)) },
			expectation: func(g *Backpressure) bool { return g.RetryAfter().Equal(time.Unix(100, 0)) },
		},
		{
			name: "case 4: an earlier time does not move the gate backwards",
			modifyFunc: func(g *Backpressure) {
				g.NotBefore(time.Unix(200, 0))
				g.NotBefore(time.Unix(100, 0))
			},
			expectation: func(g *Backpressure) bool { return g.RetryAfter().Equal(time.Unix(200, 0)) },
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			g := &Backpressure{}
			tc.modifyFunc(g)

			if !tc.expectation(g) {
				t.Fatalf("expectation failed; retry after %s", g.RetryAfter())
			}
		})
	}
}
