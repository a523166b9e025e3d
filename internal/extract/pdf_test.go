package extract

import "testing"

const elevenAmounts = " $100.00 $0.00 $0.00 $0.00 $80.00 $0.00 $0.00 $0.00 $0.00 $0.00 $20.00"

func TestClaimsFromPDFText_ClaimTotalTier(t *testing.T) {
	text := "Patient: DOE, JOHN P\n1234 Statement Period\n" +
		"CLAIM # AB12345\n" +
		"Service Dates: 03/01/2024\n" +
		"Provider: ACME IMAGING CENTER Processed\n" +
		"Processed As: In-Network\n" +
		"IMAGING 70553" + elevenAmounts + "\n" +
		"CLAIM TOTAL" + elevenAmounts + "\n"

	claims := ClaimsFromPDFText([]string{text}, DefaultProviderTable())
	if len(claims) != 1 {
		t.Fatalf("expected 1 claim, got %d: %+v", len(claims), claims)
	}
	c := claims[0]
	if c.Date != "2024-03-01" {
		t.Fatalf("date = %q", c.Date)
	}
	if c.Member != "Doe, John" {
		t.Fatalf("member = %q, want middle-initial artifact removed and display-cased", c.Member)
	}
	if c.Provider != "ACME IMAGING CENTER" {
		t.Fatalf("provider = %q", c.Provider)
	}
	if c.Billed != "100.00" || c.PlanPayment != "80.00" || c.YouOwe != "20.00" {
		t.Fatalf("amounts = %q/%q/%q, want columns 1/5/11", c.Billed, c.PlanPayment, c.YouOwe)
	}
	if c.Status != "In-Network" {
		t.Fatalf("status = %q", c.Status)
	}
	if c.Service != "IMAGING" {
		t.Fatalf("service = %q", c.Service)
	}
}

func TestClaimsFromPDFText_DetailLineFallback(t *testing.T) {
	text := "CLAIM # CD67890\n" +
		"Service Dates: 02/15/2024\n" +
		"Provider: RIVERSIDE PHYSICAL THERAPY Processed\n" +
		"PHYSICAL THERAPY 97110" + elevenAmounts + "\n"

	claims := ClaimsFromPDFText([]string{text}, DefaultProviderTable())
	if len(claims) != 1 {
		t.Fatalf("expected 1 claim via detail line, got %d", len(claims))
	}
	if claims[0].Billed != "100.00" || claims[0].YouOwe != "20.00" {
		t.Fatalf("amounts = %q/%q", claims[0].Billed, claims[0].YouOwe)
	}
	if claims[0].Service != "PHYSICAL THERAPY" {
		t.Fatalf("service = %q", claims[0].Service)
	}
}

func TestClaimsFromPDFText_GrandTotalLastResort(t *testing.T) {
	text := "CLAIM # EF11111\n" +
		"Service Dates: 01/05/2024\n" +
		"Provider: ACME CLINIC Processed\n" +
		"GRAND TOTAL" + elevenAmounts + "\n"

	claims := ClaimsFromPDFText([]string{text}, DefaultProviderTable())
	if len(claims) != 1 {
		t.Fatalf("expected 1 claim via grand total, got %d", len(claims))
	}
}

func TestClaimsFromPDFText_SectionWithoutTotalsSkipped(t *testing.T) {
	text := "CLAIM # AA00001\n" +
		"Service Dates: 03/01/2024\n" +
		"Provider: ACME CLINIC Processed\n" +
		"no amounts here\n" +
		"CLAIM # BB00002\n" +
		"Service Dates: 03/02/2024\n" +
		"Provider: ACME CLINIC Processed\n" +
		"CLAIM TOTAL" + elevenAmounts + "\n"

	claims := ClaimsFromPDFText([]string{text}, DefaultProviderTable())
	if len(claims) != 1 {
		t.Fatalf("section without totals must be dropped silently, got %d claims", len(claims))
	}
	if claims[0].Date != "2024-03-02" {
		t.Fatalf("surviving claim date = %q", claims[0].Date)
	}
}

func TestClaimsFromPDFText_SectionsSpanPages(t *testing.T) {
	// A claim section straddling a page break must be read whole: page
	// boundaries are not claim boundaries.
	page1 := "CLAIM # GH22222\nService Dates: 03/10/2024\nProvider: ACME CLINIC Processed\n"
	page2 := "CLAIM TOTAL" + elevenAmounts + "\n"
	claims := ClaimsFromPDFText([]string{page1, page2}, DefaultProviderTable())
	if len(claims) != 1 {
		t.Fatalf("expected 1 claim across pages, got %d", len(claims))
	}
}

func TestClaimsFromPDFText_TwoDigitYearFallback(t *testing.T) {
	text := "CLAIM # IJ33333\n" +
		"Service Dates: 03/15/24\n" +
		"Provider: ACME CLINIC Processed\n" +
		"CLAIM TOTAL" + elevenAmounts + "\n"
	claims := ClaimsFromPDFText([]string{text}, DefaultProviderTable())
	if len(claims) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(claims))
	}
	if claims[0].Date != "2024-03-15" {
		t.Fatalf("date = %q, want two-digit year normalized", claims[0].Date)
	}
}

func TestClaimsFromPDFText_ProviderFallbackTable(t *testing.T) {
	text := "CLAIM # KL44444\n" +
		"Service Dates: 03/20/2024\n" +
		"Rendered at QUEST DIAGNOSTIC facility\n" +
		"CLAIM TOTAL" + elevenAmounts + "\n"
	claims := ClaimsFromPDFText([]string{text}, DefaultProviderTable())
	if len(claims) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(claims))
	}
	if claims[0].Provider != "QUEST DIAGNOSTIC CLINICAL LAB I." {
		t.Fatalf("provider = %q, want fallback table canonical name", claims[0].Provider)
	}
}

func TestClaimsFromPDFText_UnknownProviderAndDefaultStatus(t *testing.T) {
	text := "CLAIM # MN55555\n" +
		"Service Dates: 03/25/2024\n" +
		"CLAIM TOTAL" + elevenAmounts + "\n"
	claims := ClaimsFromPDFText([]string{text}, DefaultProviderTable())
	if len(claims) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(claims))
	}
	if claims[0].Provider != "Unknown" {
		t.Fatalf("provider = %q, want Unknown", claims[0].Provider)
	}
	if claims[0].Status != "In-Network" {
		t.Fatalf("status = %q, want default In-Network", claims[0].Status)
	}
}

func TestClaimsFromPDFText_ProcessedAsStatus(t *testing.T) {
	text := "CLAIM # OP66666\n" +
		"Service Dates: 03/26/2024\n" +
		"Processed As: Out-of-Network\n" +
		"CLAIM TOTAL" + elevenAmounts + "\n"
	claims := ClaimsFromPDFText([]string{text}, DefaultProviderTable())
	if len(claims) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(claims))
	}
	if claims[0].Status != "Out-of-Network" {
		t.Fatalf("status = %q", claims[0].Status)
	}
}

func TestClaimsFromPDFText_SectionWithoutDateSkipped(t *testing.T) {
	text := "CLAIM # QR77777\n" +
		"Provider: ACME CLINIC Processed\n" +
		"CLAIM TOTAL" + elevenAmounts + "\n"
	claims := ClaimsFromPDFText([]string{text}, DefaultProviderTable())
	if len(claims) != 0 {
		t.Fatalf("a claim without a service date must not be retained, got %+v", claims)
	}
}

func TestClaimsFromPDFText_NoMarkersNoClaims(t *testing.T) {
	claims := ClaimsFromPDFText([]string{"nothing resembling a statement"}, DefaultProviderTable())
	if len(claims) != 0 {
		t.Fatalf("expected no claims, got %+v", claims)
	}
}
