package convert

import "testing"

func TestParseUnixMillis(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "1970-01-01T00:00:01Z", want: 1000},
		{input: "2024-01-01T10:00:00Z", want: 1704103200000},
		{input: "2024-01-01T10:00:00.000Z", want: 1704103200000},
		{input: "2024-01-01T10:00:00.098751Z", want: 1704103200098},
		// Offsets are honored: 10:00+02:00 is 08:00 UTC.
		{input: "2024-01-01T10:00:00+02:00", want: 1704096000000},
		// A bare date is midnight UTC.
		{input: "2024-01-05", want: 1704412800000},
		{input: "not-a-date", wantErr: true},
		{input: "", wantErr: true},
		{input: "2024-13-40T00:00:00Z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseUnixMillis(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err: got %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseCalendarDay(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "2024-01-05T00:00:00.000Z", want: "2024-01-05"},
		{input: "2024-01-05T23:30:00-08:00", want: "2024-01-05"},
		{input: "2024-01-05", want: "2024-01-05"},
		{input: "garbage", wantErr: true},
		{input: "2024-13-01", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseCalendarDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err: got %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
