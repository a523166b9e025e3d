package normalize

import "testing"

func TestDate_Conversions(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"03/04/2024", "2024-03-04"},
		{"03/04/24", "2024-03-04"},
		{"2024-03-04", "2024-03-04"},
		{"12/31/1999", "1999-12-31"},
		{"not a date", "not a date"},
		{"", ""},
		{"  03/04/2024  ", "2024-03-04"},
	}
	for _, c := range cases {
		if got := Date(c.in); got != c.want {
			t.Fatalf("Date(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDate_Idempotent(t *testing.T) {
	for _, in := range []string{"03/04/2024", "2024-03-04", "garbage", ""} {
		once := Date(in)
		if twice := Date(once); twice != once {
			t.Fatalf("Date not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestAmount(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"$1,234.50", "1234.50"},
		{"$0.00", "0.00"},
		{"", ""},
		{"100.00", "100.00"},
		{"$ 12,345,678.90", "12345678.90"},
		{"$abc", "abc"}, // malformed passes through minus stripped chars
		{"-$56.91", "-56.91"},
	}
	for _, c := range cases {
		if got := Amount(c.in); got != c.want {
			t.Fatalf("Amount(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAmount_Idempotent(t *testing.T) {
	for _, in := range []string{"$1,234.50", "1234.50", "", "junk"} {
		once := Amount(in)
		if twice := Amount(once); twice != once {
			t.Fatalf("Amount not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestProviderDisplay(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"ACME CLINIC", "ACME CLINIC"},
		{"ACME CLINIC<br>123 Main St", "ACME CLINIC"},
		{"ACME Physicians & Facilities", "ACME"},
		{"ACME Physician & Facility", "ACME"},
		{"ST MARY Hospital", "ST MARY"},
		{"  padded  ", "padded"},
		{"", ""},
	}
	for _, c := range cases {
		if got := ProviderDisplay(c.in); got != c.want {
			t.Fatalf("ProviderDisplay(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestProviderMatchKey(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Athletico Ltd", "ATHLETICO"},
		{"TEXAS ANESTHESIA PARTNERS PLLC", "TEXAS ANESTHESIA PARTNERS"},
		{"TEXAS ONCOLOGY PA", "TEXAS ONCOLOGY"},
		{"Quest Diagnostic Clinical Lab I.", "QUEST DIAGNOSTIC CLINICAL LAB I"},
		{"JOHN  E.  MCGARRY", "JOHN E MCGARRY"},
		{"", ""},
	}
	for _, c := range cases {
		if got := ProviderMatchKey(c.in); got != c.want {
			t.Fatalf("ProviderMatchKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestProviderMatchKey_RecognizesSameEntity(t *testing.T) {
	// The whole point of the match-key form: two spellings of one legal
	// entity reduce to the same key.
	a := ProviderMatchKey("Athletico Ltd")
	b := ProviderMatchKey("ATHLETICO")
	if a != b {
		t.Fatalf("expected same key, got %q and %q", a, b)
	}
}

func TestMemberName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"JOHN DOE", "John Doe"},
		{"DOE, JANE", "Doe, Jane"},
		{"already Cased", "Already Cased"},
		{"", ""},
	}
	for _, c := range cases {
		if got := MemberName(c.in); got != c.want {
			t.Fatalf("MemberName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWhitespace(t *testing.T) {
	if got := Whitespace("  a \n\t b  "); got != "a b" {
		t.Fatalf("Whitespace = %q, want %q", got, "a b")
	}
}
