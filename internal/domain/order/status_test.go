package order

import "testing"

func TestValidateTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    Status
		to      Status
		wantErr bool
	}{
		{"waiting to in-progress", StatusWaiting, StatusInProgress, false},
		{"in-progress to ready", StatusInProgress, StatusReady, false},
		{"ready to delivered", StatusReady, StatusDelivered, false},
		{"no skipping waiting to ready", StatusWaiting, StatusReady, true},
		{"no skipping waiting to delivered", StatusWaiting, StatusDelivered, true},
		{"no reverting ready to in-progress", StatusReady, StatusInProgress, true},
		{"delivered is terminal", StatusDelivered, StatusWaiting, true},
		{"same status is invalid", StatusInProgress, StatusInProgress, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTransition(tc.from, tc.to)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateTransition(%s, %s) err = %v, wantErr %v", tc.from, tc.to, err, tc.wantErr)
			}
		})
	}
}

func TestAllowedNext(t *testing.T) {
	if next, ok := AllowedNext(StatusWaiting); !ok || next != StatusInProgress {
		t.Errorf("AllowedNext(WAITING) = %s, %v", next, ok)
	}
	if _, ok := AllowedNext(StatusDelivered); ok {
		t.Error("AllowedNext(DELIVERED) should report no successor")
	}
}

func TestTerminal(t *testing.T) {
	if !Terminal(StatusDelivered) {
		t.Error("DELIVERED should be terminal")
	}
	for _, s := range []Status{StatusWaiting, StatusInProgress, StatusReady} {
		if Terminal(s) {
			t.Errorf("Terminal(%s) = true, want false", s)
		}
	}
}
