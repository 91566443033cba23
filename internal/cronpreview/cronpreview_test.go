package cronpreview

import (
	"errors"
	"testing"
	"time"
)

func TestNext(t *testing.T) {
	from := time.Date(2024, 3, 1, 10, 0, 30, 0, time.UTC)
	tests := []struct {
		name string
		expr string
		tz   string
		n    int
		want []string
	}{
		{
			name: "every minute at second zero",
			expr: "0 * * * * *",
			n:    2,
			want: []string{"2024-03-01T10:01:00Z", "2024-03-01T10:02:00Z"},
		},
		{
			name: "daily at nine in Paris",
			expr: "0 0 9 * * *",
			tz:   "Europe/Paris",
			n:    1,
			want: []string{"2024-03-02T09:00:00+01:00"},
		},
		{
			name: "descriptor",
			expr: "@hourly",
			n:    1,
			want: []string{"2024-03-01T11:00:00Z"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Next(tc.expr, tc.tz, from, tc.n)
			if err != nil {
				t.Fatalf("Next returned error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tc.want))
			}
			for i, w := range tc.want {
				if s := got[i].Format(time.RFC3339); s != w {
					t.Errorf("tick %d = %s, want %s", i, s, w)
				}
			}
		})
	}
}

func TestNext_Errors(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if _, err := Next("* * * * *", "", from, 1); err == nil {
		t.Error("five-field expression should be rejected")
	}
	if _, err := Next("0 0 * * * *", "Mars/Olympus", from, 1); err == nil {
		t.Error("unknown timezone should be rejected")
	}
	if _, err := Next("0 0 0 30 2 *", "", from, 1); !errors.Is(err, ErrNoTicks) {
		t.Errorf("error = %v, want ErrNoTicks", err)
	}
	got, err := Next("0 0 * * * *", "", from, 0)
	if err != nil || got != nil {
		t.Errorf("Next(n=0) = %v, %v, want nil, nil", got, err)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("0 */5 * * * *", "UTC"); err != nil {
		t.Errorf("Validate returned error: %v", err)
	}
	if err := Validate("not a cron", ""); err == nil {
		t.Error("Validate should reject garbage")
	}
}
