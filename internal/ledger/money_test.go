package ledger

import (
	"errors"
	"testing"
)

// TestParseAmountCents проверяет разбор корректных сумм.
func TestParseAmountCents(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
	}{
		{"15", 1500},
		{"12.34", 1234},
		{"12,34", 1234},
		{"0.01", 1},
		{"12.345", 1234},
		{"12.346", 1235},
		{" 4000 ", 400000},
	}

	for _, tc := range cases {
		got, err := ParseAmountCents(tc.raw)
		if err != nil {
			t.Fatalf("ParseAmountCents(%q): expected no error, got %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseAmountCents(%q): expected %d, got %d", tc.raw, tc.want, got)
		}
	}
}

// TestParseAmountCentsRejectsInvalid проверяет отклонение нечисловых и
// неположительных сумм на границе валидации.
func TestParseAmountCentsRejectsInvalid(t *testing.T) {
	for _, raw := range []string{"abc", "12.3.4", "-5", "+5", "0", "0.00", "12.", "NaN", "1e3"} {
		if _, err := ParseAmountCents(raw); err == nil {
			t.Fatalf("ParseAmountCents(%q): expected error, got nil", raw)
		}
	}
}

// TestParseAmountCentsEmpty проверяет, что пустой ввод дает ErrEmptyField.
func TestParseAmountCentsEmpty(t *testing.T) {
	if _, err := ParseAmountCents("   "); !errors.Is(err, ErrEmptyField) {
		t.Fatalf("expected ErrEmptyField, got %v", err)
	}
}

// TestFormatCents проверяет форматирование центов в десятичную строку.
func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{150000, "1500.00"},
		{1234, "12.34"},
		{5, "0.05"},
		{-250, "-2.50"},
	}

	for _, tc := range cases {
		if got := FormatCents(tc.cents); got != tc.want {
			t.Fatalf("FormatCents(%d): expected %s, got %s", tc.cents, tc.want, got)
		}
	}
}
