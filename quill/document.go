package quill

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Document is the analysis payload returned by the Quill API. Every field is
// optional: a section that is missing, null, or of the wrong shape decodes to
// nil instead of failing the whole document.
type Document struct {
	TokenInformation *TokenInformation `json:"tokenInformation"`
	MarketChecks     *MarketChecks     `json:"marketChecks"`
	CodeChecks       *CodeChecks       `json:"codeChecks"`
	TokenScore       *TokenScore       `json:"tokenScore"`
	HoneypotDetails  *HoneypotDetails  `json:"honeypotDetails"`
}

// TokenInformation holds the token's identity and metadata.
type TokenInformation struct {
	TokenName         *Value        `json:"tokenName"`
	TokenSymbol       *Value        `json:"tokenSymbol"`
	TokenAddress      *Value        `json:"tokenAddress"`
	TokenCreationDate *Value        `json:"tokenCreationDate"`
	TotalSupply       *Value        `json:"totalSupply"`
	ExternalLinks     ExternalLinks `json:"externalLinks"`
}

// MarketChecks groups holder, liquidity, and trading-pair analysis.
type MarketChecks struct {
	HoldersChecks         *HoldersChecks   `json:"holdersChecks"`
	LiquidityChecks       *LiquidityChecks `json:"liquidityChecks"`
	PairByPairInformation []Pair           `json:"pairByPairInformation"`
}

// HoldersChecks describes holder counts and concentration.
type HoldersChecks struct {
	HoldersCount       *Metric             `json:"holdersCount"`
	PercentDistributed *PercentDistributed `json:"percentDistributed"`
}

// Metric wraps a numeric check value.
type Metric struct {
	Number *Value `json:"number"`
}

// PercentDistributed holds top-holder concentration percentages.
type PercentDistributed struct {
	TopThree *Score `json:"topThree"`
	TopTen   *Score `json:"topTen"`
}

// Score wraps a percentage value.
type Score struct {
	Percent *Value `json:"percent"`
}

// LiquidityChecks describes DEX liquidity for the token.
type LiquidityChecks struct {
	AggregatedInformation *AggregatedLiquidity `json:"aggregatedInformation"`
}

// AggregatedLiquidity sums liquidity across all trading pairs.
type AggregatedLiquidity struct {
	TotalLpSupplyInUsd *Metric `json:"totalLpSupplyInUsd"`
	LpHolderCount      *Metric `json:"lpHolderCount"`
	TradingPairCount   *Metric `json:"tradingPairCount"`
}

// Pair is a single DEX trading pair for the token. LpSupplyInUsd arrives
// pre-formatted and is passed through verbatim.
type Pair struct {
	Token0Symbol  *Value `json:"token0Symbol"`
	Token1Symbol  *Value `json:"token1Symbol"`
	DexName       *Value `json:"dexName"`
	LpSupplyInUsd *Value `json:"lpSupplyInUsd"`
	PairAddress   *Value `json:"pairAddress"`
}

// CodeChecks holds contract-level security analysis.
type CodeChecks struct {
	OwnershipChecks OwnershipChecks `json:"ownershipChecks"`
}

// TokenScore holds the overall, code, and market scores.
type TokenScore struct {
	TotalScore  *Score `json:"totalScore"`
	CodeScore   *Score `json:"codeScore"`
	MarketScore *Score `json:"marketScore"`
}

// HoneypotDetails carries the honeypot verdict flag. Zero means safe;
// anything else, including absence, is treated as a potential honeypot.
type HoneypotDetails struct {
	IsTokenHoneypot *Value `json:"isTokenHoneypot"`
}

// DecodeDocument decodes a raw API response into a Document. It never fails:
// sections that do not match the expected shape are simply left nil.
func DecodeDocument(data []byte) *Document {
	var doc Document
	// encoding/json keeps filling sibling fields after a type mismatch, so a
	// malformed section costs only itself.
	_ = json.Unmarshal(data, &doc)
	return &doc
}

// Value is a scalar whose wire type the API does not guarantee: numeric
// fields show up as numbers or strings depending on the endpoint version.
type Value struct {
	raw any
}

// UnmarshalJSON accepts any JSON scalar or composite without error.
func (v *Value) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil
	}
	v.raw = raw
	return nil
}

// Float reports the value as a float64 if it is a number or a numeric string.
func (v *Value) Float() (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch raw := v.raw.(type) {
	case json.Number:
		f, err := raw.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		return f, err == nil
	}
	return 0, false
}

// Int reports the value as an int64 if it is a number with an integral
// value. Flags arrive as 0 or 0.0 depending on the endpoint version, so
// float notation is accepted when it carries a whole number exactly.
func (v *Value) Int() (int64, bool) {
	if v == nil {
		return 0, false
	}
	raw, ok := v.raw.(json.Number)
	if !ok {
		return 0, false
	}
	if n, err := raw.Int64(); err == nil {
		return n, true
	}
	f, err := raw.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) >= 1<<53 {
		return 0, false
	}
	return int64(f), true
}

// Text reports the value's literal display form: strings as-is, numbers in
// their wire notation. Composites and booleans are not displayable.
func (v *Value) Text() (string, bool) {
	if v == nil {
		return "", false
	}
	switch raw := v.raw.(type) {
	case string:
		return raw, true
	case json.Number:
		return raw.String(), true
	}
	return "", false
}

// ExternalLink is one named link from the token's metadata.
type ExternalLink struct {
	Name string
	URL  string
}

// ExternalLinks preserves the insertion order of the externalLinks object.
// Entries whose value is not a string decode with an empty URL.
type ExternalLinks []ExternalLink

func (l *ExternalLinks) UnmarshalJSON(b []byte) error {
	entries, ok := objectEntries(b)
	if !ok {
		return nil
	}
	links := make(ExternalLinks, 0, len(entries))
	for _, e := range entries {
		var url string
		_ = json.Unmarshal(e.value, &url)
		links = append(links, ExternalLink{Name: e.key, URL: url})
	}
	*l = links
	return nil
}

// OwnershipCheck is one named contract security check.
type OwnershipCheck struct {
	Name        string
	Description *string
	Status      *bool
}

// OwnershipChecks preserves the insertion order of the ownershipChecks
// object.
type OwnershipChecks []OwnershipCheck

func (c *OwnershipChecks) UnmarshalJSON(b []byte) error {
	entries, ok := objectEntries(b)
	if !ok {
		return nil
	}
	checks := make(OwnershipChecks, 0, len(entries))
	for _, e := range entries {
		var detail struct {
			Description *string `json:"description"`
			Status      *bool   `json:"status"`
		}
		_ = json.Unmarshal(e.value, &detail)
		checks = append(checks, OwnershipCheck{
			Name:        e.key,
			Description: detail.Description,
			Status:      detail.Status,
		})
	}
	*c = checks
	return nil
}

type rawEntry struct {
	key   string
	value json.RawMessage
}

// objectEntries walks a JSON object with a token decoder so key order
// survives, which a map decode would lose.
func objectEntries(b []byte) ([]rawEntry, bool) {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false
	}
	var entries []rawEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return entries, true
		}
		key, ok := keyTok.(string)
		if !ok {
			return entries, true
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return entries, true
		}
		entries = append(entries, rawEntry{key: key, value: value})
	}
	return entries, true
}
