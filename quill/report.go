package quill

import (
	"fmt"
	"strings"
)

// notAvailable substitutes for any field that is missing or unparsable. The
// formatter never fails: bad input degrades field by field, never the report.
const notAvailable = "N/A"

// FormatReport renders a token analysis document as a human-readable report.
// It is a pure function over the document and total over arbitrary input: an
// empty document yields a full report of placeholders.
func FormatReport(doc *Document) string {
	if doc == nil {
		doc = &Document{}
	}

	var b strings.Builder

	b.WriteString("\n🔎 TOKEN ANALYSIS REPORT\n")
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n")

	info := doc.TokenInformation
	b.WriteString("\n📊 BASIC INFORMATION\n")
	b.WriteString("-------------------\n")
	fmt.Fprintf(&b, "Name: %s\n", formatText(tokenField(info, func(t *TokenInformation) *Value { return t.TokenName })))
	fmt.Fprintf(&b, "Symbol: %s\n", formatText(tokenField(info, func(t *TokenInformation) *Value { return t.TokenSymbol })))
	fmt.Fprintf(&b, "Address: %s\n", formatText(tokenField(info, func(t *TokenInformation) *Value { return t.TokenAddress })))
	fmt.Fprintf(&b, "Creation Date: %s\n", formatDate(tokenField(info, func(t *TokenInformation) *Value { return t.TokenCreationDate })))
	fmt.Fprintf(&b, "Total Supply: %s\n", formatNumber(tokenField(info, func(t *TokenInformation) *Value { return t.TotalSupply })))

	score := doc.TokenScore
	b.WriteString("\n💯 SECURITY SCORE\n")
	b.WriteString("----------------\n")
	fmt.Fprintf(&b, "Overall Score: %s\n", formatPercent(scorePercent(scoreField(score, func(s *TokenScore) *Score { return s.TotalScore }))))
	fmt.Fprintf(&b, "Code Score: %s\n", formatPercent(scorePercent(scoreField(score, func(s *TokenScore) *Score { return s.CodeScore }))))
	fmt.Fprintf(&b, "Market Score: %s\n", formatPercent(scorePercent(scoreField(score, func(s *TokenScore) *Score { return s.MarketScore }))))

	holders := holdersChecks(doc)
	b.WriteString("\n👥 HOLDER STATISTICS\n")
	b.WriteString("------------------\n")
	fmt.Fprintf(&b, "Total Holders: %s\n", formatNumber(metricNumber(holdersCount(holders))))
	fmt.Fprintf(&b, "Top 3 Holders: %s\n", formatPercent(scorePercent(topConcentration(holders, func(p *PercentDistributed) *Score { return p.TopThree }))))
	fmt.Fprintf(&b, "Top 10 Holders: %s\n", formatPercent(scorePercent(topConcentration(holders, func(p *PercentDistributed) *Score { return p.TopTen }))))

	liquidity := aggregatedLiquidity(doc)
	b.WriteString("\n💧 LIQUIDITY INFORMATION\n")
	b.WriteString("----------------------\n")
	fmt.Fprintf(&b, "Total Liquidity: %s\n", formatUSD(metricNumber(liquidityMetric(liquidity, func(a *AggregatedLiquidity) *Metric { return a.TotalLpSupplyInUsd }))))
	fmt.Fprintf(&b, "LP Holders: %s\n", formatText(metricNumber(liquidityMetric(liquidity, func(a *AggregatedLiquidity) *Metric { return a.LpHolderCount }))))
	fmt.Fprintf(&b, "Trading Pairs: %s\n", formatText(metricNumber(liquidityMetric(liquidity, func(a *AggregatedLiquidity) *Metric { return a.TradingPairCount }))))

	b.WriteString("\n🔒 SECURITY CHECKS\n")
	b.WriteString("----------------")
	writeOwnershipChecks(&b, doc)

	b.WriteString("\n\n")
	writeTradingPairs(&b, doc)

	b.WriteString("\n🔗 EXTERNAL LINKS\n----------------")
	writeExternalLinks(&b, doc)

	b.WriteString("\n\n🍯 HONEYPOT CHECK\n----------------\n")
	b.WriteString(honeypotVerdict(doc))

	return b.String()
}

// writeOwnershipChecks renders the named security checks in the order they
// appeared on the wire. Entries missing a description or status are skipped.
func writeOwnershipChecks(b *strings.Builder, doc *Document) {
	if doc.CodeChecks == nil {
		return
	}
	for _, check := range doc.CodeChecks.OwnershipChecks {
		if check.Description == nil || check.Status == nil {
			continue
		}
		glyph := "❌"
		if *check.Status {
			glyph = "✅"
		}
		fmt.Fprintf(b, "\n%s %s", glyph, *check.Description)
	}
}

// writeTradingPairs renders at most the first three trading pairs, or a
// notice when there are none.
func writeTradingPairs(b *strings.Builder, doc *Document) {
	var pairs []Pair
	if doc.MarketChecks != nil {
		pairs = doc.MarketChecks.PairByPairInformation
	}
	if len(pairs) == 0 {
		b.WriteString("No trading pairs found")
		return
	}
	b.WriteString("\n🔄 TOP TRADING PAIRS\n")
	b.WriteString(strings.Repeat("=", 20))
	b.WriteString("\n")
	if len(pairs) > 3 {
		pairs = pairs[:3]
	}
	for _, pair := range pairs {
		fmt.Fprintf(b, "• %s/%s on %s\n", formatText(pair.Token0Symbol), formatText(pair.Token1Symbol), formatText(pair.DexName))
		fmt.Fprintf(b, "  Liquidity: %s\n", formatText(pair.LpSupplyInUsd))
		fmt.Fprintf(b, "  Pair Address: %s\n", formatText(pair.PairAddress))
	}
}

// writeExternalLinks renders links in wire order, skipping empty URLs.
func writeExternalLinks(b *strings.Builder, doc *Document) {
	if doc.TokenInformation == nil {
		return
	}
	for _, link := range doc.TokenInformation.ExternalLinks {
		if link.URL == "" {
			continue
		}
		fmt.Fprintf(b, "\n• %s: %s", link.Name, link.URL)
	}
}

// honeypotVerdict fails closed: only an explicit zero flag counts as safe.
func honeypotVerdict(doc *Document) string {
	if doc.HoneypotDetails != nil {
		if flag, ok := doc.HoneypotDetails.IsTokenHoneypot.Int(); ok && flag == 0 {
			return "✅ Not a honeypot"
		}
	}
	return "⚠️ Potential honeypot detected"
}

// formatText passes a displayable value through verbatim.
func formatText(v *Value) string {
	if s, ok := v.Text(); ok {
		return s
	}
	return notAvailable
}

// formatNumber renders a count with thousands separators and two decimals.
func formatNumber(v *Value) string {
	f, ok := v.Float()
	if !ok {
		return notAvailable
	}
	return groupThousands(fmt.Sprintf("%.2f", f))
}

// formatPercent renders a percentage with two decimals.
func formatPercent(v *Value) string {
	f, ok := v.Float()
	if !ok {
		return notAvailable
	}
	return fmt.Sprintf("%.2f%%", f)
}

// formatUSD renders a monetary value scaled to K/M units.
func formatUSD(v *Value) string {
	f, ok := v.Float()
	if !ok {
		return notAvailable
	}
	switch {
	case f >= 1_000_000:
		return fmt.Sprintf("$%.2fM", f/1_000_000)
	case f >= 1_000:
		return fmt.Sprintf("$%.2fK", f/1_000)
	default:
		return fmt.Sprintf("$%.2f", f)
	}
}

// formatDate truncates an ISO-8601 timestamp to its date. The placeholder is
// substituted before truncation, so a missing field cannot fail: cutting
// "N/A" at a 'T' is a no-op.
func formatDate(v *Value) string {
	s, ok := v.Text()
	if !ok {
		s = notAvailable
	}
	date, _, _ := strings.Cut(s, "T")
	return date
}

// groupThousands inserts comma separators into the integer part of a fixed
// decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return sign + b.String() + "." + frac
}

// Nil-safe navigation helpers. Each missing link in the chain yields a nil
// Value, which the format helpers render as the placeholder.

func tokenField(info *TokenInformation, pick func(*TokenInformation) *Value) *Value {
	if info == nil {
		return nil
	}
	return pick(info)
}

func scoreField(score *TokenScore, pick func(*TokenScore) *Score) *Score {
	if score == nil {
		return nil
	}
	return pick(score)
}

func scorePercent(s *Score) *Value {
	if s == nil {
		return nil
	}
	return s.Percent
}

func metricNumber(m *Metric) *Value {
	if m == nil {
		return nil
	}
	return m.Number
}

func holdersChecks(doc *Document) *HoldersChecks {
	if doc.MarketChecks == nil {
		return nil
	}
	return doc.MarketChecks.HoldersChecks
}

func holdersCount(h *HoldersChecks) *Metric {
	if h == nil {
		return nil
	}
	return h.HoldersCount
}

func topConcentration(h *HoldersChecks, pick func(*PercentDistributed) *Score) *Score {
	if h == nil || h.PercentDistributed == nil {
		return nil
	}
	return pick(h.PercentDistributed)
}

func aggregatedLiquidity(doc *Document) *AggregatedLiquidity {
	if doc.MarketChecks == nil || doc.MarketChecks.LiquidityChecks == nil {
		return nil
	}
	return doc.MarketChecks.LiquidityChecks.AggregatedInformation
}

func liquidityMetric(a *AggregatedLiquidity, pick func(*AggregatedLiquidity) *Metric) *Metric {
	if a == nil {
		return nil
	}
	return pick(a)
}
