package quill

import (
	"encoding/json"
	"strings"
	"testing"
)

func valueOf(t *testing.T, literal string) *Value {
	t.Helper()
	var v Value
	if err := json.Unmarshal([]byte(literal), &v); err != nil {
		t.Fatalf("unmarshal %q: %v", literal, err)
	}
	return &v
}

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{`"999"`, "$999.00"},
		{`999`, "$999.00"},
		{`"1500"`, "$1.50K"},
		{`"2500000"`, "$2.50M"},
		{`1000`, "$1.00K"},
		{`1000000`, "$1.00M"},
		{`0`, "$0.00"},
		{`"abc"`, "N/A"},
		{`true`, "N/A"},
		{`[1,2]`, "N/A"},
	}
	for _, tc := range cases {
		if got := formatUSD(valueOf(t, tc.input)); got != tc.want {
			t.Errorf("formatUSD(%s) = %q, want %q", tc.input, got, tc.want)
		}
	}
	if got := formatUSD(nil); got != "N/A" {
		t.Errorf("formatUSD(nil) = %q, want N/A", got)
	}
}

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{`12.3456`, "12.35%"},
		{`"12.3456"`, "12.35%"},
		{`0`, "0.00%"},
		{`"abc"`, "N/A"},
		{`null`, "N/A"},
	}
	for _, tc := range cases {
		if got := formatPercent(valueOf(t, tc.input)); got != tc.want {
			t.Errorf("formatPercent(%s) = %q, want %q", tc.input, got, tc.want)
		}
	}
	if got := formatPercent(nil); got != "N/A" {
		t.Errorf("formatPercent(nil) = %q, want N/A", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{`"1000000"`, "1,000,000.00"},
		{`1234567.891`, "1,234,567.89"},
		{`"42"`, "42.00"},
		{`"-1234.5"`, "-1,234.50"},
		{`"totally not a number"`, "N/A"},
	}
	for _, tc := range cases {
		if got := formatNumber(valueOf(t, tc.input)); got != tc.want {
			t.Errorf("formatNumber(%s) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate(valueOf(t, `"2023-06-01T12:34:56Z"`)); got != "2023-06-01" {
		t.Errorf("formatDate = %q, want 2023-06-01", got)
	}
	// A missing date becomes the placeholder before truncation; cutting
	// "N/A" at 'T' must stay a no-op.
	if got := formatDate(nil); got != "N/A" {
		t.Errorf("formatDate(nil) = %q, want N/A", got)
	}
	if got := formatDate(valueOf(t, `12345`)); got != "12345" {
		t.Errorf("formatDate(number) = %q, want verbatim", got)
	}
}

func TestFormatReportEmptyDocument(t *testing.T) {
	report := FormatReport(DecodeDocument([]byte(`{}`)))

	if report == "" {
		t.Fatal("expected non-empty report for empty document")
	}
	if !strings.Contains(report, "N/A") {
		t.Error("expected placeholders in report for empty document")
	}
	for _, line := range []string{
		"Name: N/A",
		"Symbol: N/A",
		"Creation Date: N/A",
		"Total Supply: N/A",
		"Overall Score: N/A",
		"Code Score: N/A",
		"Market Score: N/A",
		"Total Holders: N/A",
		"Top 3 Holders: N/A",
		"Top 10 Holders: N/A",
		"Total Liquidity: N/A",
		"LP Holders: N/A",
		"Trading Pairs: N/A",
		"No trading pairs found",
		"⚠️ Potential honeypot detected",
	} {
		if !strings.Contains(report, line) {
			t.Errorf("report missing %q", line)
		}
	}
}

func TestFormatReportNilAndGarbage(t *testing.T) {
	// The formatter is total: nil documents and arbitrary JSON shapes all
	// produce a full report.
	for _, raw := range []string{
		``,
		`null`,
		`[]`,
		`"hello"`,
		`{"tokenInformation": 7, "marketChecks": "x", "codeChecks": [], "tokenScore": false, "honeypotDetails": "y"}`,
	} {
		report := FormatReport(DecodeDocument([]byte(raw)))
		if !strings.Contains(report, "TOKEN ANALYSIS REPORT") {
			t.Errorf("input %q: report lost its header", raw)
		}
	}
	if got := FormatReport(nil); !strings.Contains(got, "TOKEN ANALYSIS REPORT") {
		t.Error("nil document: report lost its header")
	}
}

func TestFormatReportIdempotent(t *testing.T) {
	doc := DecodeDocument([]byte(fullDocumentJSON))
	first := FormatReport(doc)
	second := FormatReport(doc)
	if first != second {
		t.Error("formatting the same document twice produced different reports")
	}
}

func TestHoneypotVerdict(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		safe bool
	}{
		{"zero flag", `{"honeypotDetails": {"isTokenHoneypot": 0}}`, true},
		{"zero float flag", `{"honeypotDetails": {"isTokenHoneypot": 0.0}}`, true},
		{"one flag", `{"honeypotDetails": {"isTokenHoneypot": 1}}`, false},
		{"two flag", `{"honeypotDetails": {"isTokenHoneypot": 2}}`, false},
		{"absent flag", `{"honeypotDetails": {}}`, false},
		{"absent section", `{}`, false},
		{"string flag", `{"honeypotDetails": {"isTokenHoneypot": "0"}}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := FormatReport(DecodeDocument([]byte(tc.raw)))
			if tc.safe {
				if !strings.Contains(report, "✅ Not a honeypot") {
					t.Error("expected safe verdict")
				}
			} else {
				if !strings.Contains(report, "⚠️ Potential honeypot detected") {
					t.Error("expected potential-honeypot verdict")
				}
			}
		})
	}
}

func TestTradingPairsTruncation(t *testing.T) {
	raw := `{"marketChecks": {"pairByPairInformation": [
		{"token0Symbol": "AAA", "token1Symbol": "WETH", "dexName": "Uniswap", "lpSupplyInUsd": "$1.00K", "pairAddress": "0xp1"},
		{"token0Symbol": "BBB", "token1Symbol": "WETH", "dexName": "Uniswap", "lpSupplyInUsd": "$2.00K", "pairAddress": "0xp2"},
		{"token0Symbol": "CCC", "token1Symbol": "WETH", "dexName": "Sushi", "lpSupplyInUsd": "$3.00K", "pairAddress": "0xp3"},
		{"token0Symbol": "DDD", "token1Symbol": "WETH", "dexName": "Sushi", "lpSupplyInUsd": "$4.00K", "pairAddress": "0xp4"},
		{"token0Symbol": "EEE", "token1Symbol": "WETH", "dexName": "Sushi", "lpSupplyInUsd": "$5.00K", "pairAddress": "0xp5"}
	]}}`

	report := FormatReport(DecodeDocument([]byte(raw)))

	for _, sym := range []string{"AAA", "BBB", "CCC"} {
		if !strings.Contains(report, sym) {
			t.Errorf("expected pair %s in report", sym)
		}
	}
	for _, sym := range []string{"DDD", "EEE"} {
		if strings.Contains(report, sym) {
			t.Errorf("pair %s should be truncated from report", sym)
		}
	}

	// Order is preserved.
	if strings.Index(report, "AAA") > strings.Index(report, "BBB") ||
		strings.Index(report, "BBB") > strings.Index(report, "CCC") {
		t.Error("pairs rendered out of order")
	}
	if strings.Contains(report, "No trading pairs found") {
		t.Error("no-pairs notice should not appear when pairs exist")
	}
	if !strings.Contains(report, "Liquidity: $1.00K") {
		t.Error("lpSupplyInUsd should pass through verbatim")
	}
}

func TestTradingPairsEmpty(t *testing.T) {
	for _, raw := range []string{
		`{"marketChecks": {"pairByPairInformation": []}}`,
		`{"marketChecks": {}}`,
		`{}`,
	} {
		report := FormatReport(DecodeDocument([]byte(raw)))
		if !strings.Contains(report, "No trading pairs found") {
			t.Errorf("input %s: expected no-pairs notice", raw)
		}
		if strings.Contains(report, "TOP TRADING PAIRS") {
			t.Errorf("input %s: pair section heading should not render", raw)
		}
		if strings.Contains(report, "Pair Address:") {
			t.Errorf("input %s: per-pair fields should not render", raw)
		}
	}
}

func TestExternalLinksFiltering(t *testing.T) {
	raw := `{"tokenInformation": {"externalLinks": {
		"twitter": "",
		"website": "https://x.com",
		"discord": null,
		"github": 42
	}}}`

	report := FormatReport(DecodeDocument([]byte(raw)))

	if !strings.Contains(report, "• website: https://x.com") {
		t.Error("expected website link in report")
	}
	for _, name := range []string{"twitter", "discord", "github"} {
		if strings.Contains(report, "• "+name+":") {
			t.Errorf("link %s with empty URL should be skipped", name)
		}
	}
}

func TestSecurityChecksRendering(t *testing.T) {
	raw := `{"codeChecks": {"ownershipChecks": {
		"ownership_renounced": {"description": "Ownership is renounced", "status": true},
		"can_mint": {"description": "Contract cannot mint new tokens", "status": false},
		"no_description": {"status": true},
		"no_status": {"description": "Dangling check"},
		"not_an_object": "huh"
	}}}`

	report := FormatReport(DecodeDocument([]byte(raw)))

	if !strings.Contains(report, "✅ Ownership is renounced") {
		t.Error("expected passing check with checkmark")
	}
	if !strings.Contains(report, "❌ Contract cannot mint new tokens") {
		t.Error("expected failing check with cross")
	}
	if strings.Contains(report, "Dangling check") {
		t.Error("check without status should be skipped")
	}

	// Wire order survives.
	if strings.Index(report, "Ownership is renounced") > strings.Index(report, "Contract cannot mint") {
		t.Error("checks rendered out of wire order")
	}
}

const fullDocumentJSON = `{
	"tokenInformation": {
		"tokenName": "Pepe",
		"tokenSymbol": "PEPE",
		"tokenAddress": "0x6982508145454ce325ddbe47a25d4ec3d2311933",
		"tokenCreationDate": "2023-04-14T10:21:35.000Z",
		"totalSupply": "420690000000000",
		"externalLinks": {"website": "https://pepe.vip", "twitter": ""}
	},
	"marketChecks": {
		"holdersChecks": {
			"holdersCount": {"number": 123456},
			"percentDistributed": {
				"topThree": {"percent": 12.3456},
				"topTen": {"percent": 34.5}
			}
		},
		"liquidityChecks": {
			"aggregatedInformation": {
				"totalLpSupplyInUsd": {"number": "2500000"},
				"lpHolderCount": {"number": 15},
				"tradingPairCount": {"number": 4}
			}
		},
		"pairByPairInformation": [
			{"token0Symbol": "PEPE", "token1Symbol": "WETH", "dexName": "UniswapV2", "lpSupplyInUsd": "$2.10M", "pairAddress": "0xa43fe16908251ee70ef74718545e4fe6c5ccec9f"}
		]
	},
	"codeChecks": {
		"ownershipChecks": {
			"renounced": {"description": "Ownership is renounced", "status": true}
		}
	},
	"tokenScore": {
		"totalScore": {"percent": 85.5},
		"codeScore": {"percent": 90},
		"marketScore": {"percent": 80.123}
	},
	"honeypotDetails": {"isTokenHoneypot": 0}
}`

func TestFormatReportFullDocument(t *testing.T) {
	report := FormatReport(DecodeDocument([]byte(fullDocumentJSON)))

	for _, line := range []string{
		"🔎 TOKEN ANALYSIS REPORT",
		"Name: Pepe",
		"Symbol: PEPE",
		"Address: 0x6982508145454ce325ddbe47a25d4ec3d2311933",
		"Creation Date: 2023-04-14",
		"Total Supply: 420,690,000,000,000.00",
		"Overall Score: 85.50%",
		"Code Score: 90.00%",
		"Market Score: 80.12%",
		"Total Holders: 123,456.00",
		"Top 3 Holders: 12.35%",
		"Top 10 Holders: 34.50%",
		"Total Liquidity: $2.50M",
		"LP Holders: 15",
		"Trading Pairs: 4",
		"✅ Ownership is renounced",
		"• PEPE/WETH on UniswapV2",
		"  Liquidity: $2.10M",
		"  Pair Address: 0xa43fe16908251ee70ef74718545e4fe6c5ccec9f",
		"• website: https://pepe.vip",
		"✅ Not a honeypot",
	} {
		if !strings.Contains(report, line) {
			t.Errorf("report missing %q\nreport:\n%s", line, report)
		}
	}

	// Section order is fixed.
	sections := []string{
		"📊 BASIC INFORMATION",
		"💯 SECURITY SCORE",
		"👥 HOLDER STATISTICS",
		"💧 LIQUIDITY INFORMATION",
		"🔒 SECURITY CHECKS",
		"🔄 TOP TRADING PAIRS",
		"🔗 EXTERNAL LINKS",
		"🍯 HONEYPOT CHECK",
	}
	last := -1
	for _, sec := range sections {
		idx := strings.Index(report, sec)
		if idx < 0 {
			t.Fatalf("report missing section %q", sec)
		}
		if idx < last {
			t.Errorf("section %q out of order", sec)
		}
		last = idx
	}
}

func TestGroupThousands(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"0.00", "0.00"},
		{"999.99", "999.99"},
		{"1000.00", "1,000.00"},
		{"123456.78", "123,456.78"},
		{"1234567.89", "1,234,567.89"},
		{"-1234.50", "-1,234.50"},
	}
	for _, tc := range cases {
		if got := groupThousands(tc.input); got != tc.want {
			t.Errorf("groupThousands(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
