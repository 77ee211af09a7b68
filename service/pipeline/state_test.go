package pipeline

import (
	"strconv"
	"testing"
)

func Test_State_Transitions(t *testing.T) {
	testCases := []struct {
		name     string
		from     State
		to       State
		expected bool
	}{
		{
			name:     "case 0: start authenticating",
			from:     NotStarted,
			to:       Authenticating,
			expected: true,
		},
		{
			name:     "case 1: steps cannot be skipped",
			from:     CreatingGroup,
			to:       CreatingPlan,
			expected: false,
		},
		{
			name:     "case 2: fail while creating the plan",
			from:     CreatingPlan,
			to:       Failed,
			expected: true,
		},
		{
			name:     "case 3: completed is terminal",
			from:     Completed,
			to:       Failed,
			expected: false,
		},
		{
			name:     "case 4: failed is terminal",
			from:     Failed,
			to:       Authenticating,
			expected: false,
		},
		{
			name:     "case 5: attach extension then complete",
			from:     AttachingExtension,
			to:       Completed,
			expected: true,
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			if tc.from.canTransitionTo(tc.to) != tc.expected {
				t.Fatalf("expected %s -> %s to be %t", tc.from, tc.to, tc.expected)
			}
		})
	}

	for _, s := range []State{Completed, Failed} {
		if !s.Terminal() {
			t.Fatalf("expected %s to be terminal", s)
		}
	}
	if NotStarted.Terminal() {
		t.Fatalf("expected %s not to be terminal", NotStarted)
	}
}
