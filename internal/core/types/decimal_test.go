package types

import (
	"testing"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already 2dp", "10.25", "10.25"},
		{"half rounds away from zero", "10.255", "10.26"},
		{"negative half rounds away from zero", "-10.255", "-10.26"},
		{"truncates drift", "42.749999", "42.75"},
		{"zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round2(MustMoney(tt.in))
			if !got.Equal(MustMoney(tt.want)) {
				t.Errorf("Round2(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundUnit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"below half rounds down", "1180.49", "1180"},
		{"exact half rounds up", "1180.50", "1181"},
		{"above half rounds up", "1180.51", "1181"},
		{"negative half rounds away from zero", "-10.5", "-11"},
		{"integer unchanged", "1062", "1062"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundUnit(MustMoney(tt.in))
			if !got.Equal(MustMoney(tt.want)) {
				t.Errorf("RoundUnit(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestPercentHelpers(t *testing.T) {
	base := MustMoney("900")
	rate := MustMoney("18")

	if got := PercentOf(base, rate); !got.Equal(MustMoney("162")) {
		t.Errorf("PercentOf(900, 18) = %s, want 162", got)
	}
	if got := HalfPercentOf(base, rate); !got.Equal(MustMoney("81")) {
		t.Errorf("HalfPercentOf(900, 18) = %s, want 81", got)
	}

	// Rounding happens inside the helper, at the step boundary.
	if got := HalfPercentOf(MustMoney("475"), rate); !got.Equal(MustMoney("42.75")) {
		t.Errorf("HalfPercentOf(475, 18) = %s, want 42.75", got)
	}
}
